package errorx

import "fmt"

// CancelledErrorf creates a VespryError with type ErrorTypeCancelled and a formatted message
func CancelledErrorf(format string, args ...any) *VespryError {
	return newWithStack(
		ErrorTypeCancelled,
		fmt.Sprintf(format, args...),
	)
}

func IsCancelledError(e error) bool {
	mE, ok := IsVespryError(e)
	if !ok {
		return false
	}

	return mE.Type == ErrorTypeCancelled
}
