// Package defaults holds tunable constants shared by the loader, the
// nutrition catalog and the CLI.
package defaults
