package errors

// Code represents an error code
type Code string

// Error codes
const (
	CodeOK                Code = "OK"
	CodeCanceled          Code = "CANCELED"
	CodeInvalidArgument   Code = "INVALID_ARGUMENT"
	CodeNotFound          Code = "NOT_FOUND"
	CodeAlreadyExists     Code = "ALREADY_EXISTS"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeInternal          Code = "INTERNAL"
	CodeUnavailable       Code = "UNAVAILABLE"
	CodeUnauthenticated   Code = "UNAUTHENTICATED"

	// CodeMissingDefinition marks a source record whose mandatory identity
	// fields (id or name) are absent. Fatal to that single item only.
	CodeMissingDefinition Code = "MISSING_DEFINITION"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}
