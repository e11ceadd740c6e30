package serializer

import (
	"errors"
	"reflect"
	"testing"
)

// testSerializers is a map of serializer name to factory function
var testSerializers = map[string]func() ISerializer{
	"JSON":    NewJSONSerializer,
	"GOB":     NewGOBSerializer,
	"YAML":    NewYAMLSerializer,
	"Msgpack": NewMsgpackSerializer,
}

// testModel mimics a small trained model artifact
type testModel struct {
	Name    string
	Version int
	Weights []float64
	Layers  map[string]int
	Trained bool
}

// testValues creates a set of test values with different fields filled
func testValues() []testModel {
	return []testModel{
		// Zero values where possible (empty collections do not survive gob and yaml alike)
		{
			Name:    "untrained",
			Weights: []float64{0},
			Layers:  map[string]int{"input": 0},
		},

		// Small model
		{
			Name:    "linear",
			Version: 1,
			Weights: []float64{0.5, -1.25, 3},
			Layers:  map[string]int{"input": 3},
		},

		// All fields filled
		{
			Name:    "elasticnet",
			Version: 7,
			Weights: []float64{0.1, 0.2, 0.3, 0.4},
			Layers:  map[string]int{"input": 11, "output": 1},
			Trained: true,
		},
	}
}

// TestSerializerRoundTrip tests that values can be serialized and deserialized correctly
func TestSerializerRoundTrip(t *testing.T) {
	values := testValues()

	for name, factory := range testSerializers {
		t.Run(name, func(t *testing.T) {
			serializer := factory()

			for i, v := range values {
				// Serialize
				data, err := serializer.Serialize(v)
				if err != nil {
					t.Errorf("Failed to serialize value %d: %v", i, err)
					continue
				}

				// Deserialize
				var result testModel
				err = serializer.Deserialize(data, &result)
				if err != nil {
					t.Errorf("Failed to deserialize value %d: %v", i, err)
					continue
				}

				// Compare
				if !reflect.DeepEqual(v, result) {
					t.Errorf("Value %d doesn't match after round trip:\nOriginal: %+v\nResult: %+v",
						i, v, result)
				}
			}
		})
	}
}

// TestGOBGenericDocument tests that gob can handle documents loaded from json or yaml
func TestGOBGenericDocument(t *testing.T) {
	serializer := NewGOBSerializer()
	doc := map[string]any{
		"name":  "run-1",
		"stage": map[string]any{"id": "train"},
		"tags":  []any{"a", "b"},
	}

	data, err := serializer.Serialize(doc)
	if err != nil {
		t.Fatalf("Failed to serialize: %v", err)
	}

	var result map[string]any
	if err := serializer.Deserialize(data, &result); err != nil {
		t.Fatalf("Failed to deserialize: %v", err)
	}

	if !reflect.DeepEqual(doc, result) {
		t.Errorf("Document doesn't match after round trip:\nOriginal: %+v\nResult: %+v", doc, result)
	}
}

// TestDeserializeGarbage tests that all serializers report an error for invalid input
func TestDeserializeGarbage(t *testing.T) {
	garbage := []byte{0xc1, 0xff, 0x00, '{', ':'}

	for name, factory := range testSerializers {
		t.Run(name, func(t *testing.T) {
			var result testModel
			if err := factory().Deserialize(garbage, &result); err == nil {
				t.Error("Expected error when deserializing garbage")
			}
		})
	}
}

// TestRegistry tests the lookup of the built-in codecs and the registration of new ones
func TestRegistry(t *testing.T) {
	builtin := map[string]Codec{
		"gob":     CodecGOB,
		"json":    CodecJSON,
		"yaml":    CodecYAML,
		"msgpack": CodecMsgpack,
	}

	for name, want := range builtin {
		codec, s, err := ByName(name)
		if err != nil {
			t.Fatalf("ByName(%q) failed: %v", name, err)
		}
		if codec != want || s == nil {
			t.Errorf("ByName(%q) = %d, %v; expected %d", name, codec, s, want)
		}
		if codec.String() != name {
			t.Errorf("Codec %d should print as %q, got %q", codec, name, codec.String())
		}
	}

	// names are case-insensitive
	if codec, _, err := ByName("GOB"); err != nil || codec != CodecGOB {
		t.Errorf("ByName should be case-insensitive, got %d, %v", codec, err)
	}

	// unknown codecs
	if _, _, err := ByName("pickle"); !errors.Is(err, ErrUnknownCodec) {
		t.Errorf("Expected ErrUnknownCodec, got %v", err)
	}
	if _, err := Lookup(Codec(250)); !errors.Is(err, ErrUnknownCodec) {
		t.Errorf("Expected ErrUnknownCodec, got %v", err)
	}
	if s := Codec(250).String(); s != "unknown(250)" {
		t.Errorf("Unexpected name for unknown codec: %s", s)
	}

	// register a new codec
	if err := Register(Codec(200), "json-copy", NewJSONSerializer()); err != nil && !errors.Is(err, ErrCodecRegistered) {
		t.Fatalf("Register failed: %v", err)
	}
	if _, err := Lookup(Codec(200)); err != nil {
		t.Errorf("Registered codec not found: %v", err)
	}

	// duplicates are rejected
	if err := Register(Codec(201), "json", NewJSONSerializer()); !errors.Is(err, ErrCodecRegistered) {
		t.Errorf("Expected ErrCodecRegistered for duplicate name, got %v", err)
	}
	if err := Register(CodecGOB, "gob2", NewGOBSerializer()); !errors.Is(err, ErrCodecRegistered) {
		t.Errorf("Expected ErrCodecRegistered for duplicate id, got %v", err)
	}
	if _, _, err := ByName("gob2"); err == nil {
		t.Error("Failed registration should not leave the name behind")
	}
	if err := Register(CodecUnknown, "nothing", NewGOBSerializer()); err == nil {
		t.Error("Expected error when registering the reserved id")
	}

	names := Names()
	if len(names) < 5 || names[0] != "gob" {
		t.Errorf("Unexpected codec names: %v", names)
	}
}
