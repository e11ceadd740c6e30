// Package serializer provides value serialization for mlio's binary artifacts.
// It defines a common interface, multiple implementations and a registry that
// maps the one byte codec id stored in every artifact to a serializer.
//
// Key Components:
//
//   - ISerializer: Core interface that all serializer implementations must satisfy.
//
//   - gobSerializerImpl: Go's built-in gob encoding. The default for artifacts since
//     it handles arbitrary Go structs (model parameters, weight matrices) without tags.
//
//   - jsonSerializerImpl / yamlSerializerImpl: Human-readable encodings, useful for
//     debugging or for artifacts that are consumed by other tools.
//
//   - msgpackSerializerImpl: Compact binary encoding readable outside of Go.
//
// Registry:
//
//	The built-in serializers are registered at init under the ids CodecGOB, CodecJSON,
//	CodecYAML and CodecMsgpack. Additional serializers can be registered at runtime:
//
//	  err := serializer.Register(serializer.Codec(100), "custom", myImpl)
//
//	The registry is safe for concurrent use.
//
// Thread Safety:
//
//	All serializer implementations are stateless and safe for concurrent use
//	across multiple goroutines without additional synchronization.
//
// Usage:
//
//	codec, s, err := serializer.ByName("msgpack")
//	data, err := s.Serialize(weights)
//	// ... store data and codec ...
//	s, err = serializer.Lookup(codec)
//	err = s.Deserialize(data, &weights)
package serializer
