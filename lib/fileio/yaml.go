package fileio

import (
	"bytes"
	"errors"
	"fmt"
	"github.com/ValentinKolb/mlio/lib/box"
	"gopkg.in/yaml.v3"
	"io"
	"os"
)

// ReadYAML reads a yaml file and returns its content as a Box.
//
// An empty document (no content, null or an empty mapping) is reported as ErrEmptyConfig.
// A document that is not a mapping wraps both ErrEmptyConfig and box.ErrNotAMapping,
// more than one document in the file is reported as ErrExtraData.
// Every other read or parse error is returned unchanged
func (f *Files) ReadYAML(path string) (cfg box.Box, err error) {
	defer func() { record(opReadYAML, err) }()

	if err = checkPath(opReadYAML, path); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	bytesRead.Add(len(data))

	dec := yaml.NewDecoder(bytes.NewReader(data))
	var content any
	if err = dec.Decode(&content); err != nil && err != io.EOF {
		return nil, err
	}
	if err == nil {
		if err = expectEOF(dec.Decode); err != nil {
			return nil, err
		}
	}

	cfg, err = box.FromValue(content)
	if errors.Is(err, box.ErrNotAMapping) {
		return nil, fmt.Errorf("%w: %w", ErrEmptyConfig, err)
	}
	if err != nil {
		return nil, err
	}
	if len(cfg) == 0 {
		return nil, ErrEmptyConfig
	}

	f.log.Infof("yaml file: %s loaded successfully", path)
	return cfg, nil
}
