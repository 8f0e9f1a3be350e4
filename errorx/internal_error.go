package errorx

import "fmt"

// InternalErrorf creates a VespryError with type ErrorTypeInternal and a formatted message
func InternalErrorf(format string, args ...any) *VespryError {
	return newWithStack(
		ErrorTypeInternal,
		fmt.Sprintf(format, args...),
	)
}

func IsInternalError(e error) bool {
	mE, ok := IsVespryError(e)
	if !ok {
		return false
	}

	return mE.Type == ErrorTypeInternal
}
