// Package cmd implements the command-line interface of mlio. It exposes the file
// helpers of lib/fileio as commands, mostly for use in shell scripts and CI jobs
// of machine-learning projects.
//
// The package is organized into several subpackages:
//
//   - config: Commands for yaml configuration files (show)
//   - jsondoc: Commands for json documents (show, from-yaml)
//   - bin: Commands for binary artifacts (inspect, from-json, to-json)
//   - fs: The dirs and size commands
//   - util: Shared utilities for command-line processing and configuration (internal use)
//
// See mlio -help for a list of all commands.
package cmd
