package errorx

import "fmt"

// InvalidArgumentErrorf creates a VespryError with type ErrorTypeInvalidArgument and a formatted message
func InvalidArgumentErrorf(format string, args ...any) *VespryError {
	return newWithStack(
		ErrorTypeInvalidArgument,
		fmt.Sprintf(format, args...),
	)
}

func IsInvalidArgumentError(e error) bool {
	mE, ok := IsVespryError(e)
	if !ok {
		return false
	}

	return mE.Type == ErrorTypeInvalidArgument
}
