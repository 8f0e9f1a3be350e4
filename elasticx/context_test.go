package elasticx

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vespry/x/errorx"
	loggerxtest "github.com/vespry/x/loggerx/test"
	"github.com/vespry/x/testx"
)

func TestNewContext(t *testing.T) {
	t.Run("should refuse a nil resolver", func(t *testing.T) {
		_, err := NewContext(DefaultConfig(), nil)
		require.Error(t, err)
		assert.True(t, errorx.IsInvalidArgumentError(err))
	})
}

func TestContextInit(t *testing.T) {
	t.Run("should ping the store", func(t *testing.T) {
		rt := testx.NewRecordingTransport()
		rt.Respond(http.StatusOK, "")

		registry := NewMappingRegistry("")
		store, err := NewContext(DefaultConfig(), registry,
			WithTransport(rt),
			WithLogger(loggerxtest.NewTestLogger(t)),
		)
		require.NoError(t, err)
		t.Cleanup(store.Close)

		require.NoError(t, store.Init(context.Background()))

		require.Equal(t, 1, rt.Calls())
		req := rt.Request(0)
		assert.Equal(t, http.MethodHead, req.Method)
		assert.Equal(t, "/", req.URL.Path)
	})
}
