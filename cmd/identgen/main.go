// Package main provides the CLI entrypoint for identgen.
//
// identgen prints fresh identifier names, one per line, using the generation
// policy of a rewriting session:
//
//	identgen -config identgen.yaml -n 20
//	identgen -policy mangled -lang go -n 100
//	IDENTGEN_POLICY=dictionary IDENTGEN_DICTIONARY=red,green identgen -n 5
//
// Names go to stdout, logs go to stderr.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"identgen/internal/config"
	"identgen/internal/logging"
	"identgen/internal/namegen"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type cliFlags struct {
	configPath  string
	envFile     string
	policy      string
	language    string
	count       int
	logLevel    string
	logFormat   string
	printConfig bool
}

func parseFlags(args []string, stderr io.Writer) (*cliFlags, error) {
	fl := &cliFlags{}

	set := flag.NewFlagSet("identgen", flag.ContinueOnError)
	set.SetOutput(stderr)
	set.StringVar(&fl.configPath, "config", "", "path to a YAML config file")
	set.StringVar(&fl.envFile, "env-file", ".env", "dotenv file with IDENTGEN_* variables (skipped when missing)")
	set.StringVar(&fl.policy, "policy", "", "generation policy: dictionary, hexadecimal or mangled")
	set.StringVar(&fl.language, "lang", "", "target language: javascript or go")
	set.IntVar(&fl.count, "n", 10, "number of names to print")
	set.StringVar(&fl.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	set.StringVar(&fl.logFormat, "log-format", "text", "log format: text or json")
	set.BoolVar(&fl.printConfig, "print-config", false, "print the effective config as YAML and exit")

	if err := set.Parse(args); err != nil {
		return nil, err
	}

	if fl.count < 0 {
		return nil, fmt.Errorf("-n must not be negative, got %d", fl.count)
	}

	return fl, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	fl, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}

		fmt.Fprintln(stderr, err)

		return exitUsage
	}

	log, err := newLogger(fl, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	cfg, err := loadConfig(fl)
	if err != nil {
		log.Error("loading config", slog.Any("error", err))
		return exitError
	}

	if fl.printConfig {
		data, err := config.Marshal(cfg)
		if err != nil {
			log.Error("marshaling config", slog.Any("error", err))
			return exitError
		}

		_, _ = stdout.Write(data)

		return exitOK
	}

	res := config.Validate(cfg)
	for _, w := range res.Warnings {
		log.Warn(w.Message, slog.String("code", w.Code), slog.String("field", w.Field))
	}

	for _, i := range res.Infos {
		log.Debug(i.Message, slog.String("code", i.Code), slog.String("field", i.Field))
	}

	if err := res.Error(); err != nil {
		log.Error("invalid config", slog.Any("error", err))
		return exitError
	}

	opts, err := cfg.SelectorOptions()
	if err != nil {
		log.Error("building generator options", slog.Any("error", err))
		return exitError
	}

	sel := namegen.NewSelector(append(opts, namegen.WithLogger(log))...)

	gen, err := sel.Resolve(cfg.GenerationPolicy())
	if err != nil {
		log.Error("resolving generator", slog.Any("error", err))
		return exitError
	}

	out := bufio.NewWriter(stdout)
	for range fl.count {
		fmt.Fprintln(out, gen.Next())
	}

	if err := out.Flush(); err != nil {
		log.Error("writing names", slog.Any("error", err))
		return exitError
	}

	return exitOK
}

func newLogger(fl *cliFlags, stderr io.Writer) (*slog.Logger, error) {
	level, err := logging.ParseLevel(fl.logLevel)
	if err != nil {
		return nil, err
	}

	format, err := logging.ParseFormat(fl.logFormat)
	if err != nil {
		return nil, err
	}

	return logging.New(
		logging.WithOutput(stderr),
		logging.WithLevel(level),
		logging.WithFormat(format),
	), nil
}

// loadConfig layers defaults, the config file, the dotenv file, the process
// environment and finally the command-line flags.
func loadConfig(fl *cliFlags) (*config.File, error) {
	cfg := config.Default()

	if fl.configPath != "" {
		loaded, err := config.LoadFile(fl.configPath)
		if err != nil {
			return nil, err
		}

		cfg = loaded
	}

	if fl.envFile != "" {
		if err := godotenv.Load(fl.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", fl.envFile, err)
		}
	}

	if err := config.ApplyEnv(cfg, nil); err != nil {
		return nil, err
	}

	if fl.policy != "" {
		cfg.Policy = fl.policy
	}

	if fl.language != "" {
		cfg.Language = fl.language
	}

	return cfg, nil
}
