package errorx

import "fmt"

// FailedPreconditionErrorf creates a VespryError with type ErrorTypeFailedPrecondition and a formatted message
func FailedPreconditionErrorf(format string, args ...any) *VespryError {
	return newWithStack(
		ErrorTypeFailedPrecondition,
		fmt.Sprintf(format, args...),
	)
}

func IsFailedPreconditionError(e error) bool {
	mE, ok := IsVespryError(e)
	if !ok {
		return false
	}

	return mE.Type == ErrorTypeFailedPrecondition
}
