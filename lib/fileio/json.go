package fileio

import (
	"bytes"
	"encoding/json"
	"errors"
	"github.com/ValentinKolb/mlio/lib/box"
	"io"
	"os"
	"strconv"
)

// jsonIndent is the indentation used for json files
const jsonIndent = "    "

// SaveJSON writes data as indented json to path, replacing an existing file.
// The parent directory must exist. Encoding and write errors are returned unchanged
func (f *Files) SaveJSON(path string, data map[string]any) (err error) {
	defer func() { record(opSaveJSON, err) }()

	if err = checkPath(opSaveJSON, path); err != nil {
		return err
	}
	if data == nil {
		return invalidArgument(opSaveJSON, "data must not be nil")
	}

	// encode first, so that an unsupported value does not leave a truncated file behind
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", jsonIndent)
	if err = enc.Encode(data); err != nil {
		return err
	}
	content := bytes.TrimSuffix(buf.Bytes(), []byte("\n"))

	if err = os.WriteFile(path, content, f.config.FilePerm); err != nil {
		return err
	}
	bytesWritten.Add(len(content))

	f.log.Infof("json file saved at: %s", path)
	return nil
}

// LoadJSON reads a json file and returns its content as a Box. Integral numbers are
// returned as int64 (json.Number if they exceed the int64 range), all other numbers as float64.
// The file must hold exactly one json object, read and parse errors are returned unchanged
func (f *Files) LoadJSON(path string) (doc box.Box, err error) {
	defer func() { record(opLoadJSON, err) }()

	if err = checkPath(opLoadJSON, path); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	bytesRead.Add(len(data))

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var content any
	if err = dec.Decode(&content); err != nil {
		return nil, err
	}
	if err = expectEOF(dec.Decode); err != nil {
		return nil, err
	}
	if content == nil {
		return nil, box.ErrNotAMapping
	}

	doc, err = box.FromValue(convertNumbers(content))
	if err != nil {
		return nil, err
	}

	f.log.Infof("json file loaded from: %s", path)
	return doc, nil
}

// convertNumbers replaces the json.Number values in a decoded document by int64 or float64.
// Integers outside of the int64 range stay json.Number to keep every digit
func convertNumbers(v any) any {
	switch t := v.(type) {
	case json.Number:
		i, err := strconv.ParseInt(t.String(), 10, 64)
		if err == nil {
			return i
		}
		if errors.Is(err, strconv.ErrRange) {
			return t
		}
		fl, _ := t.Float64()
		return fl
	case map[string]any:
		for k, val := range t {
			t[k] = convertNumbers(val)
		}
		return t
	case []any:
		for i, val := range t {
			t[i] = convertNumbers(val)
		}
		return t
	default:
		return v
	}
}

// expectEOF calls decode once more and fails unless the input is exhausted
func expectEOF(decode func(v any) error) error {
	var extra any
	switch err := decode(&extra); {
	case err == io.EOF:
		return nil
	case err != nil:
		return err
	default:
		return ErrExtraData
	}
}
