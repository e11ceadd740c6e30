package common

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// --------------------------------------------------------------------------
// mlio configuration struct
// --------------------------------------------------------------------------

// Default values used by DefaultConfig
const (
	DefaultLogLevel    = "info"
	DefaultCodec       = "gob"
	DefaultCompression = "none"
	DefaultDirPerm     = os.FileMode(0o755)
	DefaultFilePerm    = os.FileMode(0o644)
)

// Config holds all configuration parameters of the file helpers.
type Config struct {
	// Logging configuration
	LogLevel string

	// Codec is the name of the serializer used for new binary artifacts (gob, json, yaml, msgpack).
	// Loading always uses the codec recorded in the artifact
	Codec string
	// Compression applied to new binary artifacts (none, zstd, gzip)
	Compression string

	// permissions of created directories and files
	DirPerm  os.FileMode
	FilePerm os.FileMode
}

// DefaultConfig returns the configuration used when nothing else is specified
func DefaultConfig() Config {
	return Config{
		LogLevel:    DefaultLogLevel,
		Codec:       DefaultCodec,
		Compression: DefaultCompression,
		DirPerm:     DefaultDirPerm,
		FilePerm:    DefaultFilePerm,
	}
}

// Validate checks the parts of the configuration that do not depend on other packages.
// Codec and compression names are checked when the file helpers are created
func (c *Config) Validate() error {
	var errs []error

	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if c.Codec == "" {
		errs = append(errs, errors.New("codec is required"))
	}
	if c.Compression == "" {
		errs = append(errs, errors.New("compression is required"))
	}
	if c.DirPerm == 0 {
		errs = append(errs, errors.New("dir permissions must not be 0"))
	}
	if c.FilePerm == 0 {
		errs = append(errs, errors.New("file permissions must not be 0"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %w", errors.Join(errs...))
	}
	return nil
}

// String returns a formatted string representation of the configuration
func (c *Config) String() string {
	var sb strings.Builder

	// Create helper functions for consistent formatting
	addSection := func(title string) {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%s\n", strings.ToUpper(title)))
	}

	addField := func(name, value string) {
		sb.WriteString(fmt.Sprintf("  %-22s: %s\n", name, value))
	}

	addSection("Artifacts")
	addField("Codec", c.Codec)
	addField("Compression", c.Compression)

	addSection("Filesystem")
	addField("Directory Permissions", c.DirPerm.String())
	addField("File Permissions", c.FilePerm.String())

	addSection("Logging")
	addField("Log Level", c.LogLevel)

	return sb.String()
}
