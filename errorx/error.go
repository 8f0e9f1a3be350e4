package errorx

import (
	"fmt"
	"regexp"

	"github.com/pkg/errors"
)

// VespryError is the structured error returned by every package in this
// repository. Expected failure classes are tagged with an ErrorType so that
// callers can branch on kind without string matching.
type VespryError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`

	OriginalError error `json:"-"` // Not returned to clients
	stack         Callers
}

var _ error = (*VespryError)(nil)

func (e VespryError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Type.String(), e.Message)
}

// Unwrap exposes the wrapped cause, if any.
func (e VespryError) Unwrap() error {
	return e.OriginalError
}

// StackTrace returns the call stack captured at construction, if any.
func (e VespryError) StackTrace() Callers {
	return e.stack
}

// WithCause returns a copy of the error carrying the given underlying cause.
func (e VespryError) WithCause(cause error) *VespryError {
	e.OriginalError = cause
	return &e
}

func newWithStack(t ErrorType, msg string) *VespryError {
	return &VespryError{
		Type:    t,
		Message: msg,
		stack:   callers(2),
	}
}

// NewVespryErrorFromMessage parses a "[TYPE] message" string back into a
// typed error. It is the inverse of VespryError.Error.
func NewVespryErrorFromMessage(msg string) (*VespryError, error) {
	r, _ := regexp.Compile(`\[(.*?)\] (.*)`)
	m := r.FindStringSubmatch(msg)
	if m == nil || len(m) < 2 {
		return nil, fmt.Errorf("%q is not a valid error message", msg)
	}

	eT, err := ParseErrorType(m[1])
	if err != nil {
		return nil, err
	}

	if len(m) >= 3 {
		msg = m[2]
	}

	return &VespryError{
		Type:    eT,
		Message: msg,
	}, nil
}

// IsVespryError unwraps e down to its cause and reports whether it is a typed
// error. Both value and pointer forms are recognized.
func IsVespryError(e error) (*VespryError, bool) {
	e = errors.Cause(e)

	var mE VespryError
	switch t := e.(type) {
	case VespryError:
		mE = t
	case *VespryError:
		if t == nil {
			return nil, false
		}
		mE = *t
	default:
		return nil, false
	}

	if mE.Type == ErrorTypeUnspecified {
		return nil, false
	}

	return &mE, true
}
