// Package artifact implements the container format of mlio's binary artifacts.
//
// An artifact wraps a serialized value with a small fixed size header, so that a file
// can be loaded without knowing which serializer or compression was used to write it:
//
//	Format Structure:
//	  [4 bytes: Magic "MLIO"]
//	  [1 byte:  Version]
//	  [1 byte:  Codec (see serializer.Codec)]
//	  [1 byte:  Compression (none, zstd, gzip)]
//	  [1 byte:  Reserved]
//	  [8 bytes: Payload Size (uint64 LE)]
//	  [Payload: serialized value, possibly compressed]
//
// The package only frames and compresses bytes, serialization is done by the caller.
//
// Example usage:
//
//	codec, s, _ := serializer.ByName("gob")
//	payload, err := s.Serialize(model)
//	_, err = artifact.Write(f, codec, artifact.CompressionZstd, payload)
//
//	header, payload, err := artifact.Read(f)
//	s, err = serializer.Lookup(header.Codec)
//	err = s.Deserialize(payload, &model)
package artifact
