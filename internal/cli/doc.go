// Package cli parses command-line arguments for the circuittrace command,
// merges them with an optional HCL run configuration, and owns process-level
// concerns such as exit codes and logger construction.
package cli
