package grpcclient

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// codecName is the content subtype announced for the calls, so that the
// server looks up the same codec for the responses.
const codecName = "json"

// jsonCodec is the codec used on the wire. The service contract is a set of
// plain messages, therefore no schema compiler is involved.
//
// - implements encoding.Codec
type jsonCodec struct{}

// Marshal implements encoding.Codec.
func (jsonCodec) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal implements encoding.Codec.
func (jsonCodec) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

// Name implements encoding.Codec.
func (jsonCodec) Name() string {
	return codecName
}

func init() {
	encoding.RegisterCodec(jsonCodec{})
}
