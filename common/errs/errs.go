package errs

// ErrorKind identifies a kind of internal error.
// fully support for errors.Is and errors.As.
type ErrorKind string

const (
	// NotFound is returned when a requested item is not found.
	NotFound = ErrorKind("Not Found")

	// InvalidArgument is returned when an argument or configuration value is invalid.
	InvalidArgument = ErrorKind("Invalid Argument")

	// Unsupported is returned when a feature, module or database driver is not supported.
	Unsupported = ErrorKind("Unsupported")

	// Duplicate is returned when a record with the same key already exists.
	Duplicate = ErrorKind("Duplicate")

	// Timeout is returned when an operation didn't finish in time.
	Timeout = ErrorKind("Timeout")

	// InternalError is returned when something went wrong that the caller can't fix.
	InternalError = ErrorKind("Internal Error")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}
