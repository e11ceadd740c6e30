package fileio

import (
	"fmt"
	"github.com/ValentinKolb/mlio/lib/artifact"
	"github.com/ValentinKolb/mlio/lib/common"
	"github.com/ValentinKolb/mlio/lib/serializer"
	"github.com/lni/dragonboat/v4/logger"
)

// Files bundles the file helpers together with the logging handle and the artifact settings
// they use. It holds no mutable state and is safe for concurrent use
type Files struct {
	log         logger.ILogger
	config      common.Config
	codec       serializer.Codec
	serializer  serializer.ISerializer
	compression artifact.Compression
}

// New creates the file helpers. The logger is used for the informational messages of all
// operations, the configuration determines permissions and how binary artifacts are written
//
// Example:
//
//	if err := common.InitLoggers(conf); err != nil {
//		panic(err)
//	}
//	files, err := fileio.New(common.GetLogger(common.LoggerFileIO), conf)
func New(log logger.ILogger, config common.Config) (*Files, error) {
	if log == nil {
		return nil, fmt.Errorf("new: %w: logger is required", ErrInvalidArgument)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	codec, s, err := serializer.ByName(config.Codec)
	if err != nil {
		return nil, err
	}
	compression, err := artifact.ParseCompression(config.Compression)
	if err != nil {
		return nil, err
	}

	return &Files{
		log:         log,
		config:      config,
		codec:       codec,
		serializer:  s,
		compression: compression,
	}, nil
}

// Config returns the configuration the helpers were created with
func (f *Files) Config() common.Config {
	return f.config
}
