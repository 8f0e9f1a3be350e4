// Package elasticx implements a unit-of-work layer over an
// Elasticsearch-compatible document store. Mutations accumulate in an
// ordered, process-local change set and are committed with a single bulk
// request per save; the store's item-level outcomes are reconciled into one
// structured result, so a transport-level 200 with failed items still
// surfaces as a failure.
package elasticx

import (
	"context"
	"log/slog"
	"net/http"
	"reflect"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/segmentio/ksuid"
	slogctx "github.com/veqryn/slog-context"
	"github.com/vespry/x/errorx"
	"github.com/vespry/x/loggerx"
	"github.com/vespry/x/retryx"
	"github.com/vespry/x/slogx"
)

// Context is the unit of work. It owns the pending change set and the store
// transport for its lifetime.
//
// A Context expects one logical caller at a time: concurrent saves on the
// same instance race on the shared change buffer and are not supported.
type Context struct {
	cfg      Config
	es       *elasticsearch.Client
	resolver MappingResolver
	encoder  BulkPayloadEncoder
	logger   *loggerx.Logger
	changes  changeSet

	lifetime context.Context
	cancel   context.CancelFunc
}

type Option func(*contextOptions)

type contextOptions struct {
	transport http.RoundTripper
	logger    *loggerx.Logger
	encoder   BulkPayloadEncoder
}

// WithTransport overrides the HTTP transport used by the store client.
func WithTransport(rt http.RoundTripper) Option {
	return func(o *contextOptions) {
		o.transport = rt
	}
}

func WithLogger(l *loggerx.Logger) Option {
	return func(o *contextOptions) {
		o.logger = l
	}
}

func WithEncoder(e BulkPayloadEncoder) Option {
	return func(o *contextOptions) {
		o.encoder = e
	}
}

// NewContext creates a unit-of-work context against the store described by
// cfg, resolving document mappings through the given resolver.
func NewContext(cfg Config, resolver MappingResolver, opts ...Option) (*Context, error) {
	if resolver == nil {
		return nil, errorx.InvalidArgumentErrorf("mapping resolver is nil")
	}

	options := &contextOptions{}
	for _, opt := range opts {
		opt(options)
	}

	es, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: cfg.Addresses,
		Username:  cfg.Username,
		Password:  cfg.Password,
		Transport: options.transport,
		// Retrying writes is the caller's decision, never this layer's.
		DisableRetry: true,
	})
	if err != nil {
		return nil, errorx.InvalidArgumentErrorf("failed to create store client: %s", err)
	}

	encoder := options.encoder
	if encoder == nil {
		encoder = NewNDJSONEncoder(resolver)
	}

	logger := options.logger
	if logger == nil {
		logger = loggerx.NewLogger(slog.Default().Handler(), OperationExtractor())
	}

	lifetime, cancel := context.WithCancel(context.Background())

	return &Context{
		cfg:      cfg,
		es:       es,
		resolver: resolver,
		encoder:  encoder,
		logger:   logger,
		lifetime: lifetime,
		cancel:   cancel,
	}, nil
}

// Init verifies connectivity to the store, retrying with exponential backoff
// while the cluster comes up.
func (c *Context) Init(ctx context.Context) error {
	return retryx.ExponentialRetry(func() error {
		res, err := esapi.PingRequest{}.Do(ctx, c.es)
		if err != nil {
			return err
		}
		defer res.Body.Close()

		if res.IsError() {
			return errorx.UnavailableErrorf("store ping failed with status %d", res.StatusCode)
		}

		return nil
	})
}

// Close cancels the context's lifetime scope. In-flight requests are aborted
// and operations invoked afterwards report cancellation instead of reaching
// the store.
func (c *Context) Close() {
	c.cancel()
}

// scoped derives a request context cancelled by either the caller's ctx or
// the context's lifetime, so Close aborts requests already on the wire.
func (c *Context) scoped(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(c.lifetime, cancel)
	return ctx, func() {
		stop()
		cancel()
	}
}

// AddUpdateDocument buffers an add-or-update for the given document. No I/O
// happens and the mapping is not validated until save time. When id is empty
// a new identifier is generated. Returns the document id.
func (c *Context) AddUpdateDocument(document any, id string) string {
	if id == "" {
		id = ksuid.New().String()
	}

	c.changes.add(PendingChange{
		EntityType: reflect.TypeOf(document),
		ID:         id,
		Document:   document,
	})

	return id
}

// DeleteDocument buffers a delete for the document of type T with the given
// id. No I/O happens until save time.
func DeleteDocument[T any](c *Context, id string) {
	c.changes.add(PendingChange{
		EntityType: typeOf[T](),
		ID:         id,
		Delete:     true,
	})
}

// PendingChangeCount returns the number of buffered, uncommitted mutations.
func (c *Context) PendingChangeCount() int {
	return c.changes.len()
}

const (
	operationBulk        = "bulk"
	operationGet         = "get"
	operationDeleteIndex = "delete-index"
)

type operationCtxKey struct{}

func withOperation(ctx context.Context, op string) context.Context {
	return context.WithValue(ctx, operationCtxKey{}, op)
}

// OperationExtractor returns a log extractor that stamps the store operation
// (bulk, get, delete-index) onto every record emitted during a dispatch.
func OperationExtractor() slogctx.AttrExtractor {
	return slogx.NewValueExtractor(operationCtxKey{}, "operation")
}
