// Package codec turns index values into bytes for the snapshot store.
package codec

import (
	"encoding/json"
	"fmt"

	"gopkg.in/mgo.v2/bson"
)

type (
	Encode[T any] func(value T) ([]byte, error)
	Decode[T any] func(data []byte) (T, error)
)

type Codec[T any] struct {
	encode Encode[T]
	decode Decode[T]
	tag    string
}

func (c Codec[T]) Encode(value T) ([]byte, error) {
	return c.encode(value)
}

func (c Codec[T]) Decode(data []byte) (T, error) {
	return c.decode(data)
}

// Tag is the struct tag name the codec honours.
func (c Codec[T]) Tag() string {
	return c.tag
}

func NewJsonCodec[T any]() Codec[T] {
	return Codec[T]{encode: JsonEncode[T], decode: JsonDecode[T], tag: "json"}
}

func JsonEncode[T any](value T) ([]byte, error) {
	return json.Marshal(value)
}

func JsonDecode[T any](data []byte) (T, error) {
	var v T
	err := json.Unmarshal(data, &v)
	return v, err
}

// NewBsonCodec only works for document-shaped values (structs and maps).
func NewBsonCodec[T any]() Codec[T] {
	return Codec[T]{encode: BsonEncode[T], decode: BsonDecode[T], tag: "bson"}
}

func BsonEncode[T any](value T) ([]byte, error) {
	return bson.Marshal(value)
}

func BsonDecode[T any](data []byte) (T, error) {
	var v T
	err := bson.Unmarshal(data, &v)
	return v, err
}

// ByName picks a codec from its config name.
func ByName[T any](name string) (Codec[T], error) {
	switch name {
	case "json", "":
		return NewJsonCodec[T](), nil
	case "bson":
		return NewBsonCodec[T](), nil
	default:
		return Codec[T]{}, fmt.Errorf("codec: unknown codec %q", name)
	}
}
