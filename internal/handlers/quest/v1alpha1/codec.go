package v1alpha1

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// CodecName is the content subtype quest clients must call with
const CodecName = "json"

// Codec carries quest messages as JSON over gRPC
type Codec struct{}

func init() {
	encoding.RegisterCodec(Codec{})
}

// Marshal encodes v as JSON
func (Codec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal decodes JSON data into v
func (Codec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// Name returns the registered codec name
func (Codec) Name() string {
	return CodecName
}
