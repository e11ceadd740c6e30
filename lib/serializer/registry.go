package serializer

import (
	"errors"
	"fmt"
	"github.com/puzpuzpuz/xsync/v3"
	"sort"
	"strings"
)

// Codec identifies a serializer inside a binary artifact. The value is persisted,
// so existing ids must never change
type Codec uint8

const (
	CodecUnknown Codec = iota
	CodecGOB
	CodecJSON
	CodecYAML
	CodecMsgpack
)

var (
	ErrUnknownCodec    = errors.New("unknown codec")
	ErrCodecRegistered = errors.New("codec already registered")
)

// registration is a serializer together with the name it is registered under
type registration struct {
	name       string
	serializer ISerializer
}

var (
	byCodec = xsync.NewMapOf[Codec, registration]()
	byName  = xsync.NewMapOf[string, Codec]()
)

func init() {
	mustRegister(CodecGOB, "gob", NewGOBSerializer())
	mustRegister(CodecJSON, "json", NewJSONSerializer())
	mustRegister(CodecYAML, "yaml", NewYAMLSerializer())
	mustRegister(CodecMsgpack, "msgpack", NewMsgpackSerializer())
}

func mustRegister(codec Codec, name string, s ISerializer) {
	if err := Register(codec, name, s); err != nil {
		panic(err)
	}
}

// Register makes a serializer available under the given codec id and name.
// Neither the id nor the name may already be taken
func Register(codec Codec, name string, s ISerializer) error {
	if codec == CodecUnknown {
		return fmt.Errorf("codec id %d is reserved", codec)
	}
	if name == "" || s == nil {
		return errors.New("codec name and serializer are required")
	}

	name = strings.ToLower(name)
	if _, loaded := byName.LoadOrStore(name, codec); loaded {
		return fmt.Errorf("%w: %s", ErrCodecRegistered, name)
	}
	if _, loaded := byCodec.LoadOrStore(codec, registration{name: name, serializer: s}); loaded {
		byName.Delete(name)
		return fmt.Errorf("%w: id %d", ErrCodecRegistered, codec)
	}
	return nil
}

// Lookup returns the serializer registered for the codec id
func Lookup(codec Codec) (ISerializer, error) {
	reg, ok := byCodec.Load(codec)
	if !ok {
		return nil, fmt.Errorf("%w: id %d", ErrUnknownCodec, codec)
	}
	return reg.serializer, nil
}

// ByName returns the codec id and serializer registered under the name (case-insensitive)
func ByName(name string) (Codec, ISerializer, error) {
	codec, ok := byName.Load(strings.ToLower(name))
	if !ok {
		return CodecUnknown, nil, fmt.Errorf("%w: %s", ErrUnknownCodec, name)
	}
	s, err := Lookup(codec)
	return codec, s, err
}

// Names returns the names of all registered codecs in alphabetical order
func Names() []string {
	var names []string
	byName.Range(func(name string, _ Codec) bool {
		names = append(names, name)
		return true
	})
	sort.Strings(names)
	return names
}

// String returns the registered name of the codec
func (c Codec) String() string {
	if reg, ok := byCodec.Load(c); ok {
		return reg.name
	}
	return fmt.Sprintf("unknown(%d)", uint8(c))
}
