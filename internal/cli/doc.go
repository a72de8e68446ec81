// Package cli implements the gitsniff command tree: scan, history and
// version. It owns the flag surface, the construction of the scan
// pipeline, and the mapping of typed failures to exit codes.
package cli
