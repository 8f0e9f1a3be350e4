package elasticx

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/vespry/x/errorx"
	"go.opentelemetry.io/otel/attribute"
)

// GetDocumentResult reads the document of type T with the given id. The
// response's _source field, when present, is parsed into the entity through
// the mapping resolver; an absent _source is not an error and yields an
// empty payload with the transport's status.
func GetDocumentResult[T any](ctx context.Context, c *Context, id string) ResultDetails[*T] {
	ctx = withOperation(ctx, operationGet)
	result := newResultDetails[*T]()

	entityType := typeOf[T]()
	mapping, err := c.resolver.Resolve(entityType)
	if err != nil {
		return result.fail(http.StatusBadRequest, err.Error(), err)
	}

	if err := c.lifetime.Err(); err != nil {
		return dispatchFailure(ctx, result, err)
	}

	ctx, cancel := c.scoped(ctx)
	defer cancel()

	res, err := esapi.GetRequest{
		Index:      mapping.Index,
		DocumentID: id,
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
			errorx.InternalErrorf("failed to read document response: %s", err).WithCause(err))
	}

	var gr getDocumentResponse
	if err := json.Unmarshal(body, &gr); err != nil {
		return result.fail(http.StatusInternalServerError, err.Error(),
			errorx.InternalErrorf("failed to decode document response: %s", err).WithCause(err))
	}

	result.Status = res.StatusCode
	result.Description = string(body)

	if len(gr.Source) == 0 {
		return result
	}

	entity, err := c.resolver.Parse(gr.Source, entityType)
	if err != nil {
		return result.fail(http.StatusInternalServerError, err.Error(), err)
	}

	typed, ok := entity.(*T)
	if !ok {
		return result.fail(http.StatusInternalServerError, "resolver returned an unexpected type",
			errorx.InternalErrorf("resolver returned %T instead of %s", entity, entityType.String()))
	}

	result.PayloadResult = typed
	return result
}

// GetDocument is the synchronous facade over GetDocumentResult.
func GetDocument[T any](ctx context.Context, c *Context, id string) (*T, error) {
	return unwrap(GetDocumentResult[T](ctx, c, id))
}

// DeleteIndexResult removes the entire index holding documents of type T.
// The operation is gated by the AllowDeleteIndex config flag; without the
// opt-in it fails before any network attempt.
func DeleteIndexResult[T any](ctx context.Context, c *Context) ResultDetails[string] {
	ctx = withOperation(ctx, operationDeleteIndex)
	result := newResultDetails[string]()

	if !c.cfg.AllowDeleteIndex {
		return result.fail(http.StatusPreconditionFailed, "delete index is not activated for this context",
			errorx.FailedPreconditionErrorf("delete index is not activated for this context"))
	}

	entityType := typeOf[T]()
	mapping, err := c.resolver.Resolve(entityType)
	if err != nil {
		return result.fail(http.StatusBadRequest, err.Error(), err)
	}

	if err := c.lifetime.Err(); err != nil {
		return dispatchFailure(ctx, result, err)
	}

	ctx, cancel := c.scoped(ctx)
	defer cancel()

	c.logger.Warn(ctx, "deleting index", attribute.String("index", mapping.Index))

	res, err := esapi.IndicesDeleteRequest{
		Index: []string{mapping.Index},
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
			errorx.InternalErrorf("failed to read delete index response: %s", err).WithCause(err))
	}

	result.Status = res.StatusCode
	result.Description = string(body)
	result.PayloadResult = mapping.Index
	return result
}

// DeleteIndex is the synchronous facade over DeleteIndexResult.
func DeleteIndex[T any](ctx context.Context, c *Context) (string, error) {
	return unwrap(DeleteIndexResult[T](ctx, c))
}
