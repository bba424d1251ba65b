// Package rpc declares the Bookshelf gRPC service shared by server and client.
//
// Messages are plain structs. On the wire each one travels as a protobuf
// google.protobuf.Struct built from the struct's json tags, so no generated
// code is needed.
package rpc

import (
	"encoding/json"
	"fmt"

	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// CodecName is the gRPC content-subtype of the Struct codec.
const CodecName = "structpb"

type structCodec struct{}

func (structCodec) Marshal(v any) ([]byte, error) {
	j, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode %T: %w", v, err)
	}
	s := &structpb.Struct{}
	if err := protojson.Unmarshal(j, s); err != nil {
		return nil, fmt.Errorf("encode %T: %w", v, err)
	}
	return proto.Marshal(s)
}

func (structCodec) Unmarshal(data []byte, v any) error {
	s := &structpb.Struct{}
	if err := proto.Unmarshal(data, s); err != nil {
		return fmt.Errorf("decode %T: %w", v, err)
	}
	j, err := protojson.Marshal(s)
	if err != nil {
		return fmt.Errorf("decode %T: %w", v, err)
	}
	return json.Unmarshal(j, v)
}

func (structCodec) Name() string { return CodecName }

func init() {
	encoding.RegisterCodec(structCodec{})
}
