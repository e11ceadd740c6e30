package serializer

import (
	"github.com/vmihailenco/msgpack/v5"
)

// NewMsgpackSerializer creates a new serializer using the MessagePack format.
// It produces smaller payloads than json and, unlike gob, can be read outside of Go
func NewMsgpackSerializer() ISerializer {
	return &msgpackSerializerImpl{}
}

// msgpackSerializerImpl implements the ISerializer interface using msgpack encoding
type msgpackSerializerImpl struct {
}

// --------------------------------------------------------------------------
// Interface Methods (docu see serializer.ISerializer)
// --------------------------------------------------------------------------

func (m msgpackSerializerImpl) Serialize(v any) ([]byte, error) {
	return msgpack.Marshal(v)
}

func (m msgpackSerializerImpl) Deserialize(b []byte, v any) error {
	return msgpack.Unmarshal(b, v)
}
