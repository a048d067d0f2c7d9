//go:build vecunchecked

package vec

const checked = false
