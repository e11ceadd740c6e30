// Package common provides the pieces shared by all mlio packages: the
// configuration struct of the file helpers and the logging setup.
//
// Logging:
//
//	mlio uses dragonboat's logger.ILogger interface as its logging handle. InitLoggers
//	installs a factory producing loggers with the format
//
//	  2025/01/01 12:00:00 INFO  | fileio   | yaml file: config.yaml loaded successfully
//
//	and sets the level of all named mlio loggers. The handle returned by GetLogger is
//	then passed to the components that log, e.g. fileio.New.
//
// Configuration:
//
//	Config is a plain struct. The CLI fills it from flags, environment variables
//	(MLIO_<FLAG>) and .env files, library users construct it directly or start
//	from DefaultConfig.
package common
