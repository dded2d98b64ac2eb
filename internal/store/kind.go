package store

import (
	"encoding/json"
)

// Kind describes how one entity type is persisted: the name that scopes its
// records, how to read its id and owner, and how to encode it into a record
// payload. Owner may be nil for types that do not carry an owner id.
type Kind[T any] struct {
	Name   string
	ID     func(T) string
	Owner  func(T) string
	Encode func(T) ([]byte, error)
	Decode func([]byte) (T, error)
}

// JSONKind builds a Kind whose payloads are JSON documents. Unknown fields
// are ignored when decoding, so payloads written by a newer schema still
// decode.
func JSONKind[T any](name string, id, owner func(T) string) Kind[T] {
	return Kind[T]{
		Name:  name,
		ID:    id,
		Owner: owner,
		Encode: func(v T) ([]byte, error) {
			return json.Marshal(v)
		},
		Decode: func(data []byte) (T, error) {
			var v T
			err := json.Unmarshal(data, &v)
			return v, err
		},
	}
}
