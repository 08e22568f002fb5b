//go:build !debug

package debug

// Debug is true when the debug build tag is set; components may emit more
// verbose diagnostics when it is.
const Debug = false
