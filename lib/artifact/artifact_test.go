package artifact

import (
	"bytes"
	"errors"
	"github.com/ValentinKolb/mlio/lib/serializer"
	"testing"
)

// TestRoundTrip verifies that the payload survives write and read for every compression.
func TestRoundTrip(t *testing.T) {
	payload := bytes.Repeat([]byte("weights:0.125;"), 512)

	for _, c := range []Compression{CompressionNone, CompressionZstd, CompressionGzip} {
		t.Run(c.String(), func(t *testing.T) {
			var buf bytes.Buffer
			n, err := Write(&buf, serializer.CodecMsgpack, c, payload)
			if err != nil {
				t.Fatalf("Write failed: %v", err)
			}
			if n != int64(buf.Len()) {
				t.Errorf("Write reported %d bytes, buffer holds %d", n, buf.Len())
			}
			if c != CompressionNone && buf.Len() >= len(payload) {
				t.Errorf("Expected compressed artifact to be smaller than %d bytes, got %d", len(payload), buf.Len())
			}

			header, got, err := Read(&buf)
			if err != nil {
				t.Fatalf("Read failed: %v", err)
			}
			if !bytes.Equal(got, payload) {
				t.Error("Payload doesn't match after round trip")
			}
			if header.Version != FormatVersion || header.Codec != serializer.CodecMsgpack || header.Compression != c {
				t.Errorf("Unexpected header: %s", header)
			}
		})
	}
}

// TestEmptyPayload verifies that an empty payload is a valid artifact.
func TestEmptyPayload(t *testing.T) {
	var buf bytes.Buffer
	if _, err := Write(&buf, serializer.CodecJSON, CompressionNone, nil); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if buf.Len() != HeaderSize {
		t.Errorf("Expected %d bytes, got %d", HeaderSize, buf.Len())
	}

	header, got, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(got) != 0 || header.PayloadSize != 0 {
		t.Errorf("Expected empty payload, got %d bytes", len(got))
	}
}

// TestReadErrors verifies that corrupt artifacts are rejected.
func TestReadErrors(t *testing.T) {
	valid := func() []byte {
		var buf bytes.Buffer
		if _, err := Write(&buf, serializer.CodecGOB, CompressionNone, []byte("payload")); err != nil {
			t.Fatalf("Write failed: %v", err)
		}
		return buf.Bytes()
	}

	tests := []struct {
		name    string
		data    func() []byte
		wantErr error
	}{
		{
			name:    "empty file",
			data:    func() []byte { return nil },
			wantErr: ErrInvalidMagic,
		},
		{
			name:    "foreign file",
			data:    func() []byte { return []byte("\x80\x04\x95 this is a pickle file") },
			wantErr: ErrInvalidMagic,
		},
		{
			name:    "header cut off",
			data:    func() []byte { return valid()[:10] },
			wantErr: ErrTruncated,
		},
		{
			name:    "payload cut off",
			data:    func() []byte { b := valid(); return b[:len(b)-2] },
			wantErr: ErrTruncated,
		},
		{
			name:    "trailing data",
			data:    func() []byte { return append(valid(), 0x00) },
			wantErr: ErrTrailingData,
		},
		{
			name: "future version",
			data: func() []byte {
				b := valid()
				b[4] = FormatVersion + 1
				return b
			},
			wantErr: ErrUnsupportedVersion,
		},
		{
			name: "unknown compression",
			data: func() []byte {
				b := valid()
				b[6] = 99
				return b
			},
			wantErr: ErrUnknownCompression,
		},
		{
			name: "absurd payload size",
			data: func() []byte {
				b := valid()
				for i := 8; i < 16; i++ {
					b[i] = 0xff
				}
				return b
			},
			wantErr: ErrPayloadTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Read(bytes.NewReader(tt.data()))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

// TestCorruptCompressedPayload verifies that a damaged compressed payload is reported.
func TestCorruptCompressedPayload(t *testing.T) {
	for _, c := range []Compression{CompressionZstd, CompressionGzip} {
		t.Run(c.String(), func(t *testing.T) {
			var buf bytes.Buffer
			if _, err := Write(&buf, serializer.CodecGOB, c, bytes.Repeat([]byte("abc"), 100)); err != nil {
				t.Fatalf("Write failed: %v", err)
			}
			b := buf.Bytes()
			for i := HeaderSize; i < len(b); i++ {
				b[i] ^= 0x5a
			}
			if _, _, err := Read(bytes.NewReader(b)); err == nil {
				t.Error("Expected error for corrupt payload")
			}
		})
	}
}

// TestParseCompression verifies the conversion of compression names.
func TestParseCompression(t *testing.T) {
	for name, want := range map[string]Compression{"none": CompressionNone, "ZSTD": CompressionZstd, "gzip": CompressionGzip} {
		got, err := ParseCompression(name)
		if err != nil || got != want {
			t.Errorf("ParseCompression(%q) = %v, %v; expected %v", name, got, err, want)
		}
	}
	if _, err := ParseCompression("lz4"); !errors.Is(err, ErrUnknownCompression) {
		t.Errorf("Expected ErrUnknownCompression, got %v", err)
	}
	if _, err := Write(&bytes.Buffer{}, serializer.CodecGOB, Compression(42), nil); !errors.Is(err, ErrUnknownCompression) {
		t.Errorf("Expected ErrUnknownCompression when writing, got %v", err)
	}
}
