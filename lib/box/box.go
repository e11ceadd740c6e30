package box

import (
	"encoding/gob"
	"errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/cast"
	"sort"
	"strconv"
	"strings"
	"time"
)

// ErrNotAMapping is returned by FromValue if the document is not a key-value mapping
var ErrNotAMapping = errors.New("document is not a mapping")

func init() {
	// nested Box values inside documents that are stored as gob artifacts
	gob.Register(Box{})
}

// Box is a key-value mapping with dotted path access. Since it is a plain map it can be
// indexed directly (b["model"]) and passed to json or yaml encoders as is.
// Nested mappings are always of type Box
type Box map[string]any

// New creates a Box from a mapping, converting all nested mappings to Box
func New(m map[string]any) Box {
	b := make(Box, len(m))
	for k, v := range m {
		b[k] = normalize(v)
	}
	return b
}

// FromValue creates a Box from a decoded document (e.g. the result of yaml.Unmarshal into any).
// A nil document yields a nil Box
func FromValue(v any) (Box, error) {
	if v == nil {
		return nil, nil
	}
	b, ok := normalize(v).(Box)
	if !ok {
		return nil, ErrNotAMapping
	}
	return b, nil
}

// normalize converts all mappings in v to Box, keys of non string keyed mappings are
// converted to strings
func normalize(v any) any {
	switch t := v.(type) {
	case Box:
		return New(t)
	case map[string]any:
		return New(t)
	case map[any]any:
		b := make(Box, len(t))
		for k, val := range t {
			b[cast.ToString(k)] = normalize(val)
		}
		return b
	case []any:
		s := make([]any, len(t))
		for i, val := range t {
			s[i] = normalize(val)
		}
		return s
	default:
		return v
	}
}

// --------------------------------------------------------------------------
// Dotted path access
// --------------------------------------------------------------------------

// Get returns the value at the dotted path (e.g. "model.params.alpha"). Elements of
// lists can be addressed by their index ("stages.0.name"). A key that contains dots
// itself is found if it exists verbatim
func (b Box) Get(path string) (any, bool) {
	if b == nil {
		return nil, false
	}
	if v, ok := b[path]; ok {
		return v, true
	}

	var current any = b
	for _, part := range strings.Split(path, ".") {
		switch node := current.(type) {
		case Box:
			v, ok := node[part]
			if !ok {
				return nil, false
			}
			current = v
		case []any:
			i, err := strconv.Atoi(part)
			if err != nil || i < 0 || i >= len(node) {
				return nil, false
			}
			current = node[i]
		default:
			return nil, false
		}
	}
	return current, true
}

// Has reports whether a value exists at the dotted path
func (b Box) Has(path string) bool {
	_, ok := b.Get(path)
	return ok
}

// Sub returns the mapping at the dotted path, or nil if there is none
func (b Box) Sub(path string) Box {
	v, _ := b.Get(path)
	sub, _ := v.(Box)
	return sub
}

// GetString returns the value at the path converted to a string ("" if missing)
func (b Box) GetString(path string) string {
	v, _ := b.Get(path)
	return cast.ToString(v)
}

// GetInt returns the value at the path converted to an int (0 if missing or not convertible)
func (b Box) GetInt(path string) int {
	v, _ := b.Get(path)
	return cast.ToInt(v)
}

// GetFloat64 returns the value at the path converted to a float64
func (b Box) GetFloat64(path string) float64 {
	v, _ := b.Get(path)
	return cast.ToFloat64(v)
}

// GetBool returns the value at the path converted to a bool
func (b Box) GetBool(path string) bool {
	v, _ := b.Get(path)
	return cast.ToBool(v)
}

// GetDuration returns the value at the path converted to a time.Duration ("1m30s", or nanoseconds)
func (b Box) GetDuration(path string) time.Duration {
	v, _ := b.Get(path)
	return cast.ToDuration(v)
}

// GetStringSlice returns the value at the path converted to a []string.
// A single string becomes a slice with one element, it is never split at whitespace
func (b Box) GetStringSlice(path string) []string {
	v, _ := b.Get(path)
	switch t := v.(type) {
	case nil:
		return nil
	case string:
		return []string{t}
	case []string:
		return append([]string(nil), t...)
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			out = append(out, cast.ToString(item))
		}
		return out
	default:
		return cast.ToStringSlice(v)
	}
}

// Keys returns the top level keys in alphabetical order
func (b Box) Keys() []string {
	keys := make([]string, 0, len(b))
	for k := range b {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// --------------------------------------------------------------------------
// Typed access
// --------------------------------------------------------------------------

// Decode copies the mapping into a typed struct. Fields are matched by their
// `mapstructure` tag or case-insensitively by name, values are converted where
// sensible (e.g. "0.5" to float64)
func (b Box) Decode(target any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
	})
	if err != nil {
		return err
	}
	return dec.Decode(map[string]any(b))
}
