package elasticx

import (
	"net/http"

	"github.com/vespry/x/errorx"
)

// StatusClientClosedRequest reports a dispatch aborted by the caller's
// context. The store never produces this code itself.
const StatusClientClosedRequest = 499

// ResultDetails is the outcome envelope for every store operation. The
// envelope API never fails with a raw error: expected failure classes are
// reported through Status and Description, and the synchronous facades turn
// them back into typed errors for callers that prefer fault-based signaling.
type ResultDetails[T any] struct {
	// Status is the transport-level status code, or one of the synthesized
	// codes for outcomes that never reached the store (499 for cancellation,
	// 412 for configuration errors, 503 for unreachable transport).
	Status int

	// Description carries the raw response body on success and on bad
	// request, or a human-readable failure note otherwise.
	Description string

	// PayloadResult is the typed operation value: the exact payload sent for
	// a save, the parsed entity for a get. Zero on failure.
	PayloadResult T

	err error
}

// newResultDetails constructs the envelope at its server-error sentinel. A
// definitive outcome always overwrites Status before the envelope is
// returned to a caller.
func newResultDetails[T any]() ResultDetails[T] {
	return ResultDetails[T]{Status: http.StatusInternalServerError}
}

// Succeeded reports whether the operation fully succeeded, including at the
// per-item level for bulk saves.
func (r ResultDetails[T]) Succeeded() bool {
	return r.err == nil
}

// unwrap converts an envelope into the synchronous facade's return shape,
// preserving typed errors and normalizing anything unexpected.
func unwrap[T any](r ResultDetails[T]) (T, error) {
	if r.err == nil {
		return r.PayloadResult, nil
	}

	var zero T
	if _, ok := errorx.IsVespryError(r.err); ok {
		return zero, r.err
	}

	return zero, errorx.InternalErrorf("store operation failed: %s", r.err).WithCause(r.err)
}

func (r ResultDetails[T]) fail(status int, description string, err error) ResultDetails[T] {
	r.Status = status
	r.Description = description
	r.err = err
	return r
}
