// Package util provides the helpers shared by all mlio commands: help text wrapping,
// the common flags and reading the configuration from flags, environment variables
// and .env files. It is meant for internal use by the cmd packages.
package util
