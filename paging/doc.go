// Package paging resolves result caps and offsets for generated queries.
//
// Limit precedence is explicit option, then the filter's own limit, then a
// fallback:
//
//	limit := paging.ResolveLimit(paging.DefaultLimit, opts.Limit, spec.Limit)
package paging
