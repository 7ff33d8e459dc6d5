package compare

import (
	"encoding/json"

	goccyjson "github.com/goccy/go-json"
	jsoniter "github.com/json-iterator/go"
)

type JSON[V any] struct{}

func (JSON[V]) Encode(v V) ([]byte, error) { return json.Marshal(v) }
func (JSON[V]) Decode(b []byte) (V, error) {
	var v V
	err := json.Unmarshal(b, &v)
	return v, err
}

// GoJSON is encoding/json compatible output produced by goccy/go-json.
type GoJSON[V any] struct{}

func (GoJSON[V]) Encode(v V) ([]byte, error) { return goccyjson.Marshal(v) }
func (GoJSON[V]) Decode(b []byte) (V, error) {
	var v V
	err := goccyjson.Unmarshal(b, &v)
	return v, err
}

var jsonIter = jsoniter.ConfigCompatibleWithStandardLibrary

type JSONIter[V any] struct{}

func (JSONIter[V]) Encode(v V) ([]byte, error) { return jsonIter.Marshal(v) }
func (JSONIter[V]) Decode(b []byte) (V, error) {
	var v V
	err := jsonIter.Unmarshal(b, &v)
	return v, err
}
