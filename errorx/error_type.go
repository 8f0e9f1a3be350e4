package errorx

type ErrorType string

// Error types mirror the gRPC status code vocabulary:
// https://chromium.googlesource.com/external/github.com/grpc/grpc/+/refs/tags/v1.21.4-pre1/doc/statuscodes.md

const (
	// The Unspecified type should not be used, only useful to assert whether or not an error is a VespryError during cast
	ErrorTypeUnspecified        = ErrorType("")
	ErrorTypeCancelled          = ErrorType("CANCELLED")
	ErrorTypeFailedPrecondition = ErrorType("FAILED_PRECONDITION")
	ErrorTypeInternal           = ErrorType("INTERNAL")
	ErrorTypeInvalidArgument    = ErrorType("INVALID_ARGUMENT")
	ErrorTypeNotFound           = ErrorType("NOT_FOUND")
	ErrorTypeUnavailable        = ErrorType("UNAVAILABLE")
)

func ParseErrorType(s string) (ErrorType, error) {
	e := ErrorType(s)
	if err := e.Validate(); err != nil {
		return ErrorTypeUnspecified, err
	}

	return e, nil
}

func (e ErrorType) String() string {
	return string(e)
}

func (e ErrorType) Validate() error {
	switch e {
	case ErrorTypeCancelled,
		ErrorTypeFailedPrecondition,
		ErrorTypeInternal,
		ErrorTypeInvalidArgument,
		ErrorTypeNotFound,
		ErrorTypeUnavailable:
		return nil
	default:
		return InvalidArgumentErrorf("invalid error type: %s", e)
	}
}
