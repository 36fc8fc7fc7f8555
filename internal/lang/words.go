package lang

// javaScriptReserved lists ECMAScript keywords, future reserved words, words
// restricted in strict mode, literal names and host globals that renamed code
// commonly reaches without declaring.
var javaScriptReserved = []string{
	// keywords
	"await", "break", "case", "catch", "class", "const", "continue", "debugger",
	"default", "delete", "do", "else", "export", "extends", "finally", "for",
	"function", "if", "import", "in", "instanceof", "new", "return", "super",
	"switch", "this", "throw", "try", "typeof", "var", "void", "while", "with",
	"yield",
	// future reserved and strict mode
	"enum", "implements", "interface", "let", "package", "private", "protected",
	"public", "static", "arguments", "eval",
	// literals
	"null", "true", "false", "undefined", "NaN", "Infinity",
	// host globals
	"globalThis", "window", "self", "document", "console", "require", "module",
	"exports", "Object", "Array", "Function", "String", "Number", "Boolean",
	"Symbol", "BigInt", "Math", "JSON", "Date", "RegExp", "Error", "Promise",
	"Map", "Set", "WeakMap", "WeakSet", "Proxy", "Reflect", "Intl",
}

// goKeywords lists the Go keywords. Predeclared identifiers are taken from
// the go/types universe scope.
var goKeywords = []string{
	"break", "case", "chan", "const", "continue", "default", "defer", "else",
	"fallthrough", "for", "func", "go", "goto", "if", "import", "interface",
	"map", "package", "range", "return", "select", "struct", "switch", "type",
	"var",
}
