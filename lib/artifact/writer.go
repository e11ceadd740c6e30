package artifact

import (
	"encoding/binary"
	"github.com/ValentinKolb/mlio/lib/serializer"
	"io"
)

// Write compresses the serialized payload and writes it together with the artifact
// header to w. It returns the number of bytes written
func Write(w io.Writer, codec serializer.Codec, c Compression, payload []byte) (int64, error) {
	body, err := compress(c, payload)
	if err != nil {
		return 0, err
	}

	header := Header{
		Version:     FormatVersion,
		Codec:       codec,
		Compression: c,
		PayloadSize: uint64(len(body)),
	}

	n, err := w.Write(header.marshal())
	written := int64(n)
	if err != nil {
		return written, err
	}

	n, err = w.Write(body)
	written += int64(n)
	return written, err
}

// marshal encodes the fixed size header:
//
//	[4 bytes: Magic "MLIO"]
//	[1 byte:  Version]
//	[1 byte:  Codec]
//	[1 byte:  Compression]
//	[1 byte:  Reserved]
//	[8 bytes: Payload Size (uint64 LE)]
func (h Header) marshal() []byte {
	buf := make([]byte, HeaderSize)
	copy(buf[0:4], MagicBytes)
	buf[4] = h.Version
	buf[5] = byte(h.Codec)
	buf[6] = byte(h.Compression)
	binary.LittleEndian.PutUint64(buf[8:16], h.PayloadSize)
	return buf
}
