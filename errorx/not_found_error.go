package errorx

import "fmt"

// NotFoundErrorf creates a VespryError with type ErrorTypeNotFound and a formatted message
func NotFoundErrorf(format string, args ...any) *VespryError {
	return newWithStack(
		ErrorTypeNotFound,
		fmt.Sprintf(format, args...),
	)
}

func IsNotFoundError(e error) bool {
	mE, ok := IsVespryError(e)
	if !ok {
		return false
	}

	return mE.Type == ErrorTypeNotFound
}
