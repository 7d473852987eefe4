package store

import (
	"github.com/vmihailenco/msgpack/v5"
)

// The stored record is the msgpack encoding of the whole mapping. The codec
// is deliberately schema-free: session values are arbitrary
// msgpack-representable data, so there is no field layout to version.

func encodeValues(values map[string]any) ([]byte, error) {
	return msgpack.Marshal(values)
}

func decodeValues(data []byte) (map[string]any, error) {
	var values map[string]any
	if err := msgpack.Unmarshal(data, &values); err != nil {
		return nil, err
	}
	if values == nil {
		values = map[string]any{}
	}
	return values, nil
}
