// Package script compiles normalized task filters into Omni Automation
// script text for the external scripting bridge.
//
// The generator only accepts filter.Normalized values, so every filter has
// had its legacy aliases erased and its operator defaults applied before any
// text is produced:
//
//	n := filter.Normalize(spec)
//	text, err := script.FullScript(n, script.Options{})
//
// Generated text is a pure function of its inputs, so callers may cache it
// under filter.CacheKey(n).
package script
