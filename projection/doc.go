// Package projection maps a detail level (names, basic, full) to the fields
// returned for tags. Tags have few filterable attributes, so requests vary
// how much is returned rather than which items.
package projection
