package util

import (
	"fmt"
	"github.com/ValentinKolb/mlio/lib/common"
	"github.com/ValentinKolb/mlio/lib/fileio"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"os"
	"strconv"
	"strings"
)

const (
	// Wrap is the number of characters to Wrap the help text at
	Wrap int = 50
)

// WrapString wraps a string at Wrap characters
func WrapString(text string) string {
	var wrappedLines []string
	var currentLine strings.Builder
	lineWidth := 0

	for _, word := range strings.Fields(text) {
		wordWidth := len(word)

		// Check if we need to wrap
		if lineWidth > 0 && lineWidth+1+wordWidth > Wrap {
			wrappedLines = append(wrappedLines, currentLine.String())
			currentLine.Reset()
			lineWidth = 0
		}

		// Add space before word (if not first word on line)
		if lineWidth > 0 {
			currentLine.WriteString(" ")
			lineWidth++
		}

		currentLine.WriteString(word)
		lineWidth += wordWidth
	}

	// Add any remaining text
	if currentLine.Len() > 0 {
		wrappedLines = append(wrappedLines, currentLine.String())
	}

	return strings.Join(wrappedLines, "\n")
}

// SetupFlags adds the flags shared by all commands
func SetupFlags(cmd *cobra.Command) {
	key := "log-level"
	cmd.PersistentFlags().String(key, common.DefaultLogLevel, WrapString("LogLevel is the level at which logs will be output (debug, info, warn, error)"))

	key = "codec"
	cmd.PersistentFlags().String(key, common.DefaultCodec, WrapString("Serializer used for new binary artifacts (gob, json, yaml, msgpack)"))

	key = "compression"
	cmd.PersistentFlags().String(key, common.DefaultCompression, WrapString("Compression applied to new binary artifacts (none, zstd, gzip)"))

	key = "dir-perm"
	cmd.PersistentFlags().String(key, "0755", WrapString("Permissions (octal) of created directories"))

	key = "file-perm"
	cmd.PersistentFlags().String(key, "0644", WrapString("Permissions (octal) of written files"))

	key = "metrics"
	cmd.PersistentFlags().Bool(key, false, WrapString("Print the I/O counters in Prometheus format to stderr when the command is done"))
}

// InitConfig initializes configuration from environment variables
func InitConfig() {
	// load env files
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	// initialize viper
	viper.SetEnvPrefix("mlio")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match
}

// BindCommandFlags binds a command's flags to viper
func BindCommandFlags(cmd *cobra.Command) error {
	return viper.BindPFlags(cmd.Flags())
}

// GetConfig reads the configuration of the file helpers from viper
func GetConfig() (common.Config, error) {
	dirPerm, err := parsePerm(viper.GetString("dir-perm"))
	if err != nil {
		return common.Config{}, fmt.Errorf("invalid dir-perm: %w", err)
	}
	filePerm, err := parsePerm(viper.GetString("file-perm"))
	if err != nil {
		return common.Config{}, fmt.Errorf("invalid file-perm: %w", err)
	}

	conf := common.Config{
		LogLevel:    viper.GetString("log-level"),
		Codec:       viper.GetString("codec"),
		Compression: viper.GetString("compression"),
		DirPerm:     dirPerm,
		FilePerm:    filePerm,
	}
	return conf, conf.Validate()
}

// GetFiles initializes the loggers and creates the file helpers from the configuration in viper
func GetFiles() (*fileio.Files, error) {
	conf, err := GetConfig()
	if err != nil {
		return nil, err
	}
	if err := common.InitLoggers(conf); err != nil {
		return nil, err
	}

	common.GetLogger(common.LoggerCLI).Debugf("configuration:\n%s", conf.String())
	return fileio.New(common.GetLogger(common.LoggerFileIO), conf)
}

// parsePerm parses an octal permission string like "0755"
func parsePerm(s string) (os.FileMode, error) {
	perm, err := strconv.ParseUint(s, 8, 32)
	if err != nil {
		return 0, err
	}
	if perm == 0 || perm > 0o777 {
		return 0, fmt.Errorf("permission %s out of range", s)
	}
	return os.FileMode(perm), nil
}
