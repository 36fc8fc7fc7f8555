// Package config loads the identifier generation configuration of a
// rewriting session.
//
// Values are layered in this order, later layers winning:
//  1. Built-in defaults (JavaScript, hexadecimal policy, "_0x" prefix)
//  2. A YAML file
//  3. IDENTGEN_* environment variables
//
// # Schema
//
//	version: "1"
//	language: javascript        # javascript | go
//	policy: mangled             # dictionary | hexadecimal | mangled
//	dictionary: [alpha, beta]   # required by the dictionary policy
//	hexadecimal:
//	  prefix: _0x
//	  base: 0
//	reserved: [jQuery, $]       # names the host environment already uses
//	preserved: [main]           # names already present in the source
//
// # Environment
//
//	IDENTGEN_LANGUAGE    language
//	IDENTGEN_POLICY      policy
//	IDENTGEN_DICTIONARY  dictionary, comma separated
//	IDENTGEN_HEX_PREFIX  hexadecimal.prefix
//	IDENTGEN_HEX_BASE    hexadecimal.base
//	IDENTGEN_RESERVED    reserved, comma separated
//	IDENTGEN_PRESERVED   preserved, comma separated
//
// Validate reports problems as diagnostics. An unknown policy is only a
// warning because the generator falls back to the hexadecimal strategy.
package config
