package jsonx

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRawMessage(t *testing.T) {
	t.Run("should normalize an indented json string", func(t *testing.T) {
		raw := RawMessage(`{
			"foo": "bar"
		}`)

		assert.Equal(t, json.RawMessage(`{"foo":"bar"}`), raw)
	})

	t.Run("should panic on invalid json", func(t *testing.T) {
		assert.Panics(t, func() {
			RawMessage(`{`)
		})
	})
}

func TestMustMarshal(t *testing.T) {
	raw := MustMarshal(map[string]int{"n": 1})
	assert.Equal(t, json.RawMessage(`{"n":1}`), raw)
}
