// Package validation holds the structured result shared by every request
// validator. Findings are returned as data and accumulate in order; nothing
// in this package or its callers panics or short-circuits on bad input.
package validation
