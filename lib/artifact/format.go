package artifact

import (
	"errors"
	"fmt"
	"github.com/ValentinKolb/mlio/lib/serializer"
	"strings"
)

// Format constants.
const (
	MagicBytes    = "MLIO"
	FormatVersion = 1  // v1: magic, version, codec, compression, reserved byte, payload size
	HeaderSize    = 16 // fixed header size in bytes

	// MaxPayloadSize is the largest payload accepted when reading, anything above is treated as corruption
	MaxPayloadSize = uint64(1 << 40)
)

// Common errors.
var (
	ErrInvalidMagic       = errors.New("invalid magic bytes: not an mlio artifact")
	ErrUnsupportedVersion = errors.New("unsupported artifact format version")
	ErrUnknownCompression = errors.New("unknown compression")
	ErrTruncated          = errors.New("artifact is truncated")
	ErrTrailingData       = errors.New("artifact has trailing data")
	ErrPayloadTooLarge    = errors.New("payload exceeds maximum size")
)

// Compression identifies the algorithm applied to the serialized payload. The value is
// persisted, so existing ids must never change
type Compression uint8

const (
	CompressionNone Compression = iota
	CompressionZstd
	CompressionGzip
)

// compressionNames maps compression ids to their names
var compressionNames = map[Compression]string{
	CompressionNone: "none",
	CompressionZstd: "zstd",
	CompressionGzip: "gzip",
}

// String returns the name of the compression
func (c Compression) String() string {
	if name, ok := compressionNames[c]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", uint8(c))
}

// ParseCompression converts a compression name (none, zstd, gzip) to its id
func ParseCompression(name string) (Compression, error) {
	for c, n := range compressionNames {
		if strings.EqualFold(n, name) {
			return c, nil
		}
	}
	return CompressionNone, fmt.Errorf("%w: %s", ErrUnknownCompression, name)
}

// Header describes an artifact file.
type Header struct {
	Version     uint8            // Version of the artifact format
	Codec       serializer.Codec // Serializer used for the payload
	Compression Compression      // Compression applied after serialization
	PayloadSize uint64           // Size of the (possibly compressed) payload in bytes
}

// String returns a short human-readable description of the header
func (h Header) String() string {
	return fmt.Sprintf("mlio artifact v%d (codec: %s, compression: %s, payload: %d bytes)",
		h.Version, h.Codec, h.Compression, h.PayloadSize)
}
