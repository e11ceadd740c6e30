package fileio

import (
	"github.com/ValentinKolb/mlio/lib/artifact"
	"github.com/ValentinKolb/mlio/lib/serializer"
	"os"
	"reflect"
)

// SaveBin serializes data with the configured codec and writes it as binary artifact to path,
// replacing an existing file. Serialization and write errors are returned unchanged
func (f *Files) SaveBin(data any, path string) (err error) {
	defer func() { record(opSaveBin, err) }()

	if err = checkPath(opSaveBin, path); err != nil {
		return err
	}
	if isNil(data) {
		return invalidArgument(opSaveBin, "data must not be nil")
	}

	payload, err := f.serializer.Serialize(data)
	if err != nil {
		return err
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, f.config.FilePerm)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); err == nil {
			err = closeErr
		}
	}()

	n, err := artifact.Write(file, f.codec, f.compression, payload)
	bytesWritten.Add(int(n))
	if err != nil {
		return err
	}

	f.log.Infof("binary file saved at: %s", path)
	return nil
}

// LoadBin reads the binary artifact at path and decodes it into target, which must be a
// non-nil pointer. The codec recorded in the artifact is used, regardless of the configured one.
// Read, format and decoding errors are returned unchanged
func (f *Files) LoadBin(path string, target any) (err error) {
	defer func() { record(opLoadBin, err) }()

	if err = checkPath(opLoadBin, path); err != nil {
		return err
	}
	if rv := reflect.ValueOf(target); !rv.IsValid() || rv.Kind() != reflect.Pointer || rv.IsNil() {
		return invalidArgument(opLoadBin, "target must be a non-nil pointer, got %T", target)
	}

	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	header, payload, err := artifact.Read(file)
	if err != nil {
		return err
	}
	bytesRead.Add(artifact.HeaderSize + int(header.PayloadSize))

	s, err := serializer.Lookup(header.Codec)
	if err != nil {
		return err
	}
	if err = s.Deserialize(payload, target); err != nil {
		return err
	}

	f.log.Infof("binary file loaded from: %s", path)
	return nil
}

// InspectBin returns the header of the binary artifact at path without decoding the payload
func (f *Files) InspectBin(path string) (header artifact.Header, err error) {
	defer func() { record(opInspectBin, err) }()

	if err = checkPath(opInspectBin, path); err != nil {
		return artifact.Header{}, err
	}

	file, err := os.Open(path)
	if err != nil {
		return artifact.Header{}, err
	}
	defer file.Close()

	header, err = artifact.ReadHeader(file)
	if err != nil {
		return artifact.Header{}, err
	}
	bytesRead.Add(artifact.HeaderSize)

	f.log.Debugf("binary file header read from: %s", path)
	return header, nil
}

// isNil reports whether v is nil or a nil pointer, map, slice, func, chan or interface
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
