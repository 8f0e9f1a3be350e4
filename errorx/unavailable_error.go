package errorx

import "fmt"

// UnavailableErrorf creates a VespryError with type ErrorTypeUnavailable and a formatted message
func UnavailableErrorf(format string, args ...any) *VespryError {
	return newWithStack(
		ErrorTypeUnavailable,
		fmt.Sprintf(format, args...),
	)
}

func IsUnavailableError(e error) bool {
	mE, ok := IsVespryError(e)
	if !ok {
		return false
	}

	return mE.Type == ErrorTypeUnavailable
}
