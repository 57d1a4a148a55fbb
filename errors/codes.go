package errors

// Code is a machine-readable error code.
type Code string

const (
	CodeRadix           Code = "RADIX"
	CodeParse           Code = "PARSE"
	CodeWrongType       Code = "WRONGTYPE"
	CodeMissingKey      Code = "MISSING_KEY"
	CodeSelfOperation   Code = "SELF_OPERATION"
	CodeArgumentParse   Code = "ARGUMENT_PARSE"
	CodeWrongArity      Code = "WRONG_ARITY"
	CodeUnknownCommand  Code = "UNKNOWN_COMMAND"
	CodeTypeRegistry    Code = "TYPE_REGISTRY"
	CodeHandleClosed    Code = "HANDLE_CLOSED"
	CodeReadOnlyHandle  Code = "READONLY_HANDLE"
	CodeStorage         Code = "STORAGE"
	CodeCorruptedRecord Code = "CORRUPTED_RECORD"
)

// Prefix is the reply prefix sent to clients for errors of this code.
func (c Code) Prefix() string {
	if c == CodeWrongType {
		return "WRONGTYPE"
	}
	return "ERR"
}

// Sentinels for errors.Is checks.
var (
	ErrRadix           = NewError(CodeRadix, "invalid radix provided")
	ErrParse           = NewError(CodeParse, "error while parsing input")
	ErrWrongType       = NewError(CodeWrongType, "Operation against a key holding the wrong kind of value")
	ErrMissingKey      = NewError(CodeMissingKey, "target key does not exist")
	ErrSelfOperation   = NewError(CodeSelfOperation, "adding a value to itself is not allowed")
	ErrArgumentParse   = NewError(CodeArgumentParse, "value is not an integer or out of range")
	ErrWrongArity      = NewError(CodeWrongArity, "wrong number of arguments")
	ErrUnknownCommand  = NewError(CodeUnknownCommand, "unknown command")
	ErrTypeRegistry    = NewError(CodeTypeRegistry, "data type registration failed")
	ErrHandleClosed    = NewError(CodeHandleClosed, "key handle used after release")
	ErrReadOnlyHandle  = NewError(CodeReadOnlyHandle, "key opened read-only")
	ErrStorage         = NewError(CodeStorage, "storage failure")
	ErrCorruptedRecord = NewError(CodeCorruptedRecord, "corrupted record")
)
