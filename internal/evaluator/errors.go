package evaluator

import "fmt"

// ErrorKind classifies a runtime failure.
type ErrorKind string

const (
	UnknownIdent         ErrorKind = "UnknownIdent"
	AlreadyBound         ErrorKind = "AlreadyBound"
	Immutable            ErrorKind = "Immutable"
	TypeMismatch         ErrorKind = "TypeMismatch"
	ArityMismatch        ErrorKind = "ArityMismatch"
	ReturnTypeMismatch   ErrorKind = "ReturnTypeMismatch"
	IndexOutOfRange      ErrorKind = "IndexOutOfRange"
	UnknownMember        ErrorKind = "UnknownMember"
	DivideByZero         ErrorKind = "DivideByZero"
	OperationUnsupported ErrorKind = "OperationUnsupported"
	MatchNoArm           ErrorKind = "MatchNoArm"
	VoidAssignment       ErrorKind = "VoidAssignment"
	NotCallable          ErrorKind = "NotCallable"
	NotIndexable         ErrorKind = "NotIndexable"
	NotAnEnum            ErrorKind = "NotAnEnum"
	TypeUnknown          ErrorKind = "TypeUnknown"
)

// RuntimeError is a structured evaluation failure. It implements Value so
// it propagates through the evaluator like any other result; the first
// error aborts the current expression, block and program.
type RuntimeError struct {
	ErrKind ErrorKind
	Message string
	Line    int
	Column  int
}

func (e *RuntimeError) Kind() ValueKind { return ERROR_VALUE }
func (e *RuntimeError) Inspect() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s at %d:%d: %s", e.ErrKind, e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.ErrKind, e.Message)
}

// Error implements the error interface for embedders.
func (e *RuntimeError) Error() string { return e.Inspect() }

func newError(kind ErrorKind, format string, a ...interface{}) *RuntimeError {
	return &RuntimeError{ErrKind: kind, Message: fmt.Sprintf(format, a...)}
}

func isError(v Value) bool {
	if v == nil {
		return false
	}
	return v.Kind() == ERROR_VALUE
}
