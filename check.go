//go:build !vecunchecked

package vec

// checked reports whether contract checks are compiled in. Builds with the
// vecunchecked tag drop the checks; violating a precondition then has
// undefined behavior.
const checked = true
