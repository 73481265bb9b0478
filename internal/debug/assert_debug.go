//go:build debug

package debug

// Assert panics with message if condition is false. Compiled in only with
// the debug tag; release builds get the no-op variant.
func Assert(condition bool, message ...string) {
	if !condition {
		if len(message) > 0 {
			panic(message[0])
		}
		panic("assertion failed")
	}
}
