//go:build debug

package debug

// Debug reports whether the module was built with the debug tag. It turns
// on internal assertions and full stack traces in fail-fast panics.
const Debug = true
