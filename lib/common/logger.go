package common

import (
	"fmt"
	"github.com/lni/dragonboat/v4/logger"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

// Names of the loggers used throughout mlio
const (
	LoggerFileIO = "fileio"
	LoggerCLI    = "cli"
)

// --------------------------------------------------------------------------
// Custom Logger (implements dragonboats logger.ILogger)
// --------------------------------------------------------------------------

// mlioLogger implements the ILogger interface with custom formatting
type mlioLogger struct {
	name   string
	level  logger.LogLevel
	logger *log.Logger
}

func (l *mlioLogger) SetLevel(level logger.LogLevel) {
	l.level = level
}

func (l *mlioLogger) Debugf(format string, args ...interface{}) {
	if l.level >= logger.DEBUG {
		l.log("DEBUG", format, args...)
	}
}

func (l *mlioLogger) Infof(format string, args ...interface{}) {
	if l.level >= logger.INFO {
		l.log("INFO", format, args...)
	}
}

func (l *mlioLogger) Warningf(format string, args ...interface{}) {
	if l.level >= logger.WARNING {
		l.log("WARN", format, args...)
	}
}

func (l *mlioLogger) Errorf(format string, args ...interface{}) {
	if l.level >= logger.ERROR {
		l.log("ERROR", format, args...)
	}
}

func (l *mlioLogger) Panicf(format string, args ...interface{}) {
	if l.level >= logger.CRITICAL {
		panic(fmt.Sprintf(format, args...))
	}
}

// log formats and writes a log message. this internal helper is used by the public methods
func (l *mlioLogger) log(levelStr string, format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	l.logger.Printf("%-5s | %-8s | %s", levelStr, l.name, message)
}

// --------------------------------------------------------------------------
// Logger Factory
// --------------------------------------------------------------------------

// logOutput is the sink all loggers created by CreateLogger write to
var (
	logOutputMu sync.RWMutex
	logOutput   io.Writer = os.Stdout

	factoryOnce sync.Once
)

// SetLogOutput changes the sink of all loggers created afterwards (the default is stdout)
func SetLogOutput(w io.Writer) {
	logOutputMu.Lock()
	logOutput = w
	logOutputMu.Unlock()
}

// CreateLogger implements dragonboats logger.Factory
func CreateLogger(pkgName string) logger.ILogger {
	logOutputMu.RLock()
	out := logOutput
	logOutputMu.RUnlock()

	return NewLogger(pkgName, out)
}

// NewLogger creates a logger writing to the given writer. Mostly useful for tests,
// everything else should use GetLogger
func NewLogger(name string, w io.Writer) logger.ILogger {
	return &mlioLogger{
		name:   name,
		level:  logger.INFO,
		logger: log.New(w, "", log.Ldate|log.Ltime),
	}
}

// GetLogger returns the process wide logger with the given name
func GetLogger(name string) logger.ILogger {
	return logger.GetLogger(name)
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

// ParseLogLevel converts a string level to logger.LogLevel
func ParseLogLevel(level string) (logger.LogLevel, error) {
	switch strings.ToLower(level) {
	case "debug":
		return logger.DEBUG, nil
	case "info":
		return logger.INFO, nil
	case "warning", "warn":
		return logger.WARNING, nil
	case "error":
		return logger.ERROR, nil
	default:
		return 0, fmt.Errorf("invalid log level: %s. must be one of debug, info, warn, error", level)
	}
}

// --------------------------------------------------------------------------
// Logger initialization
// --------------------------------------------------------------------------

// InitLoggers installs the custom logger factory (only once per process) and sets the
// level of all mlio loggers
func InitLoggers(config Config) error {
	level, err := ParseLogLevel(config.LogLevel)
	if err != nil {
		return err
	}

	factoryOnce.Do(func() {
		logger.SetLoggerFactory(CreateLogger)
	})

	logger.GetLogger(LoggerFileIO).SetLevel(level)
	logger.GetLogger(LoggerCLI).SetLevel(level)
	return nil
}
