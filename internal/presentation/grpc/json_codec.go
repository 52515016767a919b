package grpc

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// The LoanService wire messages in proto.go are plain structs with json
// tags, so the service runs on grpc's "json" codec instead of protobuf. The
// codec registers itself on package import; clients must dial with the
// matching content-subtype.

type jsonCodec struct{}

var _ encoding.Codec = jsonCodec{}

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

func (jsonCodec) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string { return "json" }
