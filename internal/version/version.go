// Package version contains the current version of the ictiobus module,
// split out so command-line front ends can report it without importing
// the root package.
package version

// Current is the version string reported by --version on the example
// front ends.
const Current = "0.1.0"
