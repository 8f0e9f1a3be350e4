package errorx

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError(t *testing.T) {
	t.Run("should return vespry error from stack", func(t *testing.T) {
		err := NotFoundErrorf("test")
		serr := errors.WithStack(err)

		_, ok := IsVespryError(serr)
		assert.True(t, ok)
	})

	t.Run("should return a vespry error without stack", func(t *testing.T) {
		err := NotFoundErrorf("test")

		_, ok := IsVespryError(err)
		assert.True(t, ok)
	})

	t.Run("should return is not found from stack", func(t *testing.T) {
		err := errors.WithStack(NotFoundErrorf("test"))
		assert.True(t, IsNotFoundError(err))
	})

	t.Run("should format with the type tag", func(t *testing.T) {
		err := FailedPreconditionErrorf("delete index is not activated")
		assert.EqualError(t, err, "[FAILED_PRECONDITION] delete index is not activated")
	})

	t.Run("should preserve the wrapped cause", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := InternalErrorf("bulk request failed").WithCause(cause)

		assert.Equal(t, cause, err.Unwrap())
		assert.True(t, IsInternalError(err))
	})

	t.Run("should not recognize untyped errors", func(t *testing.T) {
		_, ok := IsVespryError(errors.New("plain"))
		assert.False(t, ok)
	})
}

func TestNewVespryErrorFromMessage(t *testing.T) {
	t.Run("should roundtrip an error message", func(t *testing.T) {
		in := CancelledErrorf("save aborted")

		out, err := NewVespryErrorFromMessage(in.Error())
		require.NoError(t, err)
		assert.Equal(t, ErrorTypeCancelled, out.Type)
		assert.Equal(t, "save aborted", out.Message)
	})

	t.Run("should reject unknown types", func(t *testing.T) {
		_, err := NewVespryErrorFromMessage("[BOGUS] nope")
		assert.Error(t, err)
	})

	t.Run("should reject untagged messages", func(t *testing.T) {
		_, err := NewVespryErrorFromMessage("no tag here")
		assert.Error(t, err)
	})
}

func TestErrorType(t *testing.T) {
	for _, et := range []ErrorType{
		ErrorTypeCancelled,
		ErrorTypeFailedPrecondition,
		ErrorTypeInternal,
		ErrorTypeInvalidArgument,
		ErrorTypeNotFound,
		ErrorTypeUnavailable,
	} {
		assert.NoError(t, et.Validate())
	}

	assert.Error(t, ErrorType("NOPE").Validate())
}
