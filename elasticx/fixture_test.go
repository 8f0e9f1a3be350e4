package elasticx

import (
	"context"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vespry/x/loggerx"
	"github.com/vespry/x/testx"
)

type animal struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type plant struct {
	ID string `json:"id"`
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

type testFixture struct {
	ctx      context.Context
	rt       *testx.RecordingTransport
	registry *MappingRegistry
	store    *Context
	logs     *testx.ConcurrentBuffer
}

func newTestFixture(t *testing.T, cfg Config) *testFixture {
	t.Helper()

	rt := testx.NewRecordingTransport()

	registry := NewMappingRegistry(cfg.IndexPrefix)
	registry.Register(animal{}, DocumentMapping{Index: "animals", DocumentType: "animal"})
	registry.Register(plant{}, DocumentMapping{Index: "plants"})

	logs := testx.NewConcurrentBuffer(t)
	logger := loggerx.NewLogger(
		slog.NewJSONHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}),
		OperationExtractor(),
	)

	store, err := NewContext(cfg, registry, WithTransport(rt), WithLogger(logger))
	require.NoError(t, err)
	t.Cleanup(store.Close)

	return &testFixture{
		ctx:      context.Background(),
		rt:       rt,
		registry: registry,
		store:    store,
		logs:     logs,
	}
}
