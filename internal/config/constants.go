package config

// Version is the current Nala version.
// Set at build time via -ldflags or by writing to this file.
var Version = "0.3.0"

const SourceFileExt = ".nala"

// SourceFileExtensions are all recognized source file extensions
var SourceFileExtensions = []string{".nala", ".nl"}

// TrimSourceExt removes any recognized source extension from a filename.
// Returns the original string if no extension matches.
func TrimSourceExt(name string) string {
	for _, ext := range SourceFileExtensions {
		if len(name) >= len(ext) && name[len(name)-len(ext):] == ext {
			return name[:len(name)-len(ext)]
		}
	}
	return name
}

// HasSourceExt returns true if the path ends with any recognized source extension.
func HasSourceExt(path string) bool {
	for _, ext := range SourceFileExtensions {
		if len(path) >= len(ext) && path[len(path)-len(ext):] == ext {
			return true
		}
	}
	return false
}

// Built-in function names
const (
	PrintFuncName   = "print"
	ReadFuncName    = "read"
	ReadNumFuncName = "readnum"
	LenFuncName     = "len"
	SliceFuncName   = "slice"
	FloorFuncName   = "floor"
	NumFuncName     = "num"
	StrFuncName     = "str"
)

// Built-in type names
const (
	NumberTypeName = "Number"
	BoolTypeName   = "Bool"
	StringTypeName = "String"
	VoidTypeName   = "Void"
	BreakTypeName  = "Break"
	ArrayTypeName  = "Array"
	FuncTypeName   = "Func"
	AnyTypeName    = "Any"
)

// Exit codes used by the CLI.
const (
	ExitOK           = 0
	ExitRuntimeError = 1
	ExitParseError   = 2
	ExitUsageError   = 64
)
