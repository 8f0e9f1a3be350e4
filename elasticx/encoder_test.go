package elasticx

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"github.com/vespry/x/errorx"
)

func newTestEncoder() *NDJSONEncoder {
	registry := NewMappingRegistry("")
	registry.Register(animal{}, DocumentMapping{Index: "animals", DocumentType: "animal"})
	registry.Register(plant{}, DocumentMapping{Index: "plants"})
	return NewNDJSONEncoder(registry)
}

func TestNDJSONEncoder(t *testing.T) {
	t.Run("should emit records in strict input order", func(t *testing.T) {
		encoder := newTestEncoder()

		payload, n, err := encoder.Encode([]PendingChange{
			{EntityType: reflect.TypeOf(animal{}), ID: "a-1", Document: animal{ID: "a-1", Name: "maya"}},
			{EntityType: reflect.TypeOf(animal{}), ID: "a-2", Delete: true},
			{EntityType: reflect.TypeOf(animal{}), ID: "a-3", Document: animal{ID: "a-3", Name: "rex"}},
		})
		require.NoError(t, err)
		assert.Equal(t, 3, n)

		// Two physical records per add, one per delete, trailing newline.
		require.True(t, strings.HasSuffix(string(payload), "\n"))
		lines := strings.Split(strings.TrimSuffix(string(payload), "\n"), "\n")
		require.Len(t, lines, 5)

		assert.Equal(t, "animals", gjson.Get(lines[0], "index._index").String())
		assert.Equal(t, "animal", gjson.Get(lines[0], "index._type").String())
		assert.Equal(t, "a-1", gjson.Get(lines[0], "index._id").String())
		assert.Equal(t, "maya", gjson.Get(lines[1], "name").String())

		assert.Equal(t, "a-2", gjson.Get(lines[2], "delete._id").String())
		assert.Equal(t, "animals", gjson.Get(lines[2], "delete._index").String())

		assert.Equal(t, "a-3", gjson.Get(lines[3], "index._id").String())
		assert.Equal(t, "rex", gjson.Get(lines[4], "name").String())
	})

	t.Run("should omit the document type when the mapping has none", func(t *testing.T) {
		encoder := newTestEncoder()

		payload, n, err := encoder.Encode([]PendingChange{
			{EntityType: reflect.TypeOf(plant{}), ID: "p-1", Document: plant{ID: "p-1"}},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		meta := strings.Split(string(payload), "\n")[0]
		assert.Equal(t, "plants", gjson.Get(meta, "index._index").String())
		assert.False(t, gjson.Get(meta, "index._type").Exists())
	})

	t.Run("should fail before any network effect on an unresolvable type", func(t *testing.T) {
		encoder := newTestEncoder()

		_, _, err := encoder.Encode([]PendingChange{
			{EntityType: nil, ID: "x", Delete: true},
		})
		require.Error(t, err)
		assert.True(t, errorx.IsInvalidArgumentError(err))
	})

	t.Run("should fail on an unmarshalable document", func(t *testing.T) {
		encoder := newTestEncoder()

		type unmarshalable struct {
			C chan int `json:"c"`
		}

		_, _, err := encoder.Encode([]PendingChange{
			{EntityType: reflect.TypeOf(unmarshalable{}), ID: "u-1", Document: unmarshalable{C: make(chan int)}},
		})
		require.Error(t, err)
		assert.True(t, errorx.IsInvalidArgumentError(err))
	})
}
