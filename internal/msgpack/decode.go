// Package msgpack reads and writes search payloads as MessagePack.
// Clients that cannot build bracketed query strings send the f/c/v maps
// as one document.
package msgpack

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// ErrEmpty is returned when a payload has no bytes.
var ErrEmpty = errors.New("empty payload")

// Decode reads one payload into v. Struct fields are matched by their
// msgpack tags, falling back to json tags, so a Params value decodes from
// the same short keys it is sent with.
//
// Example:
//
//	var p searchfilter.Params
//	err := msgpack.Decode(data, &p)
func Decode(data []byte, v any) error {
	if len(data) == 0 {
		return ErrEmpty
	}
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	dec.SetCustomStructTag("json")
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}
	return nil
}

// Encode writes v as a payload, mirroring Decode's tag handling.
func Encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetCustomStructTag("json")
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}
	return buf.Bytes(), nil
}
