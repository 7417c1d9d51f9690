package server

import (
	"encoding/json"
	"mime"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// Codec encodes API responses.
type Codec interface {
	Encode(v any) ([]byte, error)
	Name() string
	ContentType() string
}

// JSONCodec encodes with encoding/json.
type JSONCodec struct{}

func (JSONCodec) Encode(v any) ([]byte, error) { return json.Marshal(v) }
func (JSONCodec) Name() string                 { return "json" }
func (JSONCodec) ContentType() string          { return "application/json" }

// MsgPackCodec encodes with MessagePack.
type MsgPackCodec struct{}

func (MsgPackCodec) Encode(v any) ([]byte, error) { return msgpack.Marshal(v) }
func (MsgPackCodec) Name() string                 { return "msgpack" }
func (MsgPackCodec) ContentType() string          { return "application/msgpack" }

// Negotiate picks a codec from an Accept header. JSON is the fallback.
func Negotiate(accept string) Codec {
	for _, part := range strings.Split(accept, ",") {
		mt, _, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		switch mt {
		case "application/msgpack", "application/x-msgpack", "application/vnd.msgpack":
			return MsgPackCodec{}
		case "application/json":
			return JSONCodec{}
		}
	}
	return JSONCodec{}
}
