package artifact

import (
	"encoding/binary"
	"errors"
	"fmt"
	"github.com/ValentinKolb/mlio/lib/serializer"
	"io"
)

// ReadHeader reads and validates the fixed size artifact header
func ReadHeader(r io.Reader) (Header, error) {
	buf := make([]byte, HeaderSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			// shorter than a header: a foreign file unless it at least starts with the magic
			if !hasMagic(buf) {
				return Header{}, ErrInvalidMagic
			}
			return Header{}, fmt.Errorf("%w: incomplete header", ErrTruncated)
		}
		return Header{}, err
	}

	if !hasMagic(buf) {
		return Header{}, ErrInvalidMagic
	}

	h := Header{
		Version:     buf[4],
		Codec:       serializer.Codec(buf[5]),
		Compression: Compression(buf[6]),
		PayloadSize: binary.LittleEndian.Uint64(buf[8:16]),
	}

	if h.Version != FormatVersion {
		return Header{}, fmt.Errorf("%w: got %d, expected %d", ErrUnsupportedVersion, h.Version, FormatVersion)
	}
	if _, ok := compressionNames[h.Compression]; !ok {
		return Header{}, fmt.Errorf("%w: id %d", ErrUnknownCompression, uint8(h.Compression))
	}
	if h.PayloadSize > MaxPayloadSize {
		return Header{}, ErrPayloadTooLarge
	}

	return h, nil
}

// Read reads a complete artifact from r and returns its header together with the
// decompressed payload, ready to be passed to the serializer named in the header
func Read(r io.Reader) (Header, []byte, error) {
	h, err := ReadHeader(r)
	if err != nil {
		return Header{}, nil, err
	}

	// read one byte more than announced to detect trailing data
	body, err := io.ReadAll(io.LimitReader(r, int64(h.PayloadSize)+1))
	if err != nil {
		return Header{}, nil, err
	}
	switch {
	case uint64(len(body)) < h.PayloadSize:
		return Header{}, nil, fmt.Errorf("%w: expected %d payload bytes, got %d", ErrTruncated, h.PayloadSize, len(body))
	case uint64(len(body)) > h.PayloadSize:
		return Header{}, nil, ErrTrailingData
	}

	payload, err := decompress(h.Compression, body)
	if err != nil {
		return Header{}, nil, err
	}
	return h, payload, nil
}

// hasMagic checks whether buf starts with the artifact magic bytes
func hasMagic(buf []byte) bool {
	return len(buf) >= len(MagicBytes) && string(buf[:len(MagicBytes)]) == MagicBytes
}
