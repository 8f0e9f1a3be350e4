package elasticx

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/vespry/x/errorx"
	"go.opentelemetry.io/otel/attribute"
)

// NoChangesMessage is the description returned by a save with an empty
// change set.
const NoChangesMessage = "nothing to save"

// SaveChangesResult drains the pending change set, commits it with a single
// bulk request and reconciles the store's per-item outcomes into one
// envelope. The change set is cleared on every exit path, success or
// failure; a failed save is never retried implicitly.
//
// A transport-level 200 does not imply success: a delete item reported as
// not found downgrades the whole save to a not-found failure carrying every
// failing item's location.
func (c *Context) SaveChangesResult(ctx context.Context) ResultDetails[string] {
	ctx = withOperation(ctx, operationBulk)
	result := newResultDetails[string]()

	defer c.changes.clear()

	if c.changes.len() == 0 {
		result.Status = http.StatusOK
		result.Description = NoChangesMessage
		return result
	}

	payload, n, err := c.encoder.Encode(c.changes.all())
	if err != nil {
		return result.fail(http.StatusBadRequest, err.Error(), err)
	}

	if err := c.lifetime.Err(); err != nil {
		return dispatchFailure(ctx, result, err)
	}

	ctx, cancel := c.scoped(ctx)
	defer cancel()

	c.logger.Debug(ctx, "dispatching bulk request",
		attribute.Int("changes", n),
		attribute.Int("payload_bytes", len(payload)),
	)

	// esapi stamps Content-Type: application/json on the request.
	res, err := esapi.BulkRequest{
		Body: bytes.NewReader(payload),
	}.Do(ctx, c.es)
	if err != nil {
		return dispatchFailure(ctx, result, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return statusFailure(result, res)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return result.fail(http.StatusInternalServerError, err.Error(),
			errorx.InternalErrorf("failed to read bulk response: %s", err).WithCause(err))
	}

	var bulkRes bulkResponse
	if err := json.Unmarshal(body, &bulkRes); err != nil {
		return result.fail(http.StatusInternalServerError, err.Error(),
			errorx.InternalErrorf("failed to decode bulk response: %s", err).WithCause(err))
	}

	failed := lo.FilterMap(bulkRes.Items, func(item map[string]bulkResultItem, _ int) (string, bool) {
		info, ok := item[string(ActionDelete)]
		if !ok || info.Status != http.StatusNotFound {
			return "", false
		}
		return fmt.Sprintf("delete failed for %s", info.path()), true
	})

	if len(failed) > 0 {
		description := strings.Join(failed, "; ")
		err := errorx.NotFoundErrorf("bulk save partially failed: %s", description)
		c.logger.WithError(err).Error(ctx, "bulk save partially failed",
			attribute.Int("failed_items", len(failed)),
		)
		return result.fail(http.StatusNotFound, description, err)
	}

	result.Status = res.StatusCode
	result.Description = string(body)
	result.PayloadResult = string(payload)
	return result
}

// SaveChanges is the synchronous facade over SaveChangesResult. It returns
// the committed payload, or a typed error for any failure class.
func (c *Context) SaveChanges(ctx context.Context) (string, error) {
	return unwrap(c.SaveChangesResult(ctx))
}

// dispatchFailure shapes a failed round trip into an envelope. Cancellation
// is a distinguished, non-fault outcome; everything else is a transport
// failure.
func dispatchFailure[T any](ctx context.Context, result ResultDetails[T], err error) ResultDetails[T] {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil {
		return result.fail(StatusClientClosedRequest, "operation cancelled by caller",
			errorx.CancelledErrorf("store operation cancelled").WithCause(err))
	}

	return result.fail(http.StatusServiceUnavailable, err.Error(),
		errorx.UnavailableErrorf("store unreachable: %s", err).WithCause(err))
}

// statusFailure shapes a non-2xx response into an envelope. Bad request
// echoes the store's diagnostic body; any other failure class has an
// undefined body shape and is reported as a bare status.
func statusFailure[T any](result ResultDetails[T], res *esapi.Response) ResultDetails[T] {
	if res.StatusCode == http.StatusBadRequest {
		body, _ := io.ReadAll(res.Body)
		return result.fail(res.StatusCode, string(body),
			errorx.InvalidArgumentErrorf("request rejected by store: %s", string(body)))
	}

	if res.StatusCode == http.StatusNotFound {
		return result.fail(res.StatusCode, res.Status(),
			errorx.NotFoundErrorf("resource not found"))
	}

	return result.fail(res.StatusCode, res.Status(),
		errorx.InternalErrorf("store request failed with status %d", res.StatusCode))
}
