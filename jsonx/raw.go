package jsonx

import "encoding/json"

// RawMessage returns a normalized json.RawMessage.
// This is useful for comparing json payloads in tests regardless of
// indentation. The function panics if the input is not valid json.
func RawMessage(in string) json.RawMessage {
	var v any
	if err := json.Unmarshal([]byte(in), &v); err != nil {
		panic(err)
	}

	out, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}

	return out
}

// MustMarshal marshals v and panics on failure. Reserved for tests and
// static payloads known to be marshalable.
func MustMarshal(v any) json.RawMessage {
	out, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}

	return out
}
