// Package filter defines the canonical task and project filter contracts.
//
// Caller input arrives as a loosely typed map. The boundary flow is:
//
//	unknown := filter.ValidateProperties(raw) // typo guard, advisory
//	spec, err := filter.Decode(raw)           // weakly typed decode
//	n := filter.Normalize(spec)               // alias erased, defaults set
//
// Only a Normalized value is accepted by the script generator, and only
// Normalize can produce one. The deprecated "includeCompleted" property is
// accepted from callers and erased during normalization; an explicit
// "completed" always wins over it.
package filter
