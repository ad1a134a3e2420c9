package paging

// DefaultLimit is the result cap when nothing else sets one.
const DefaultLimit = 50

// ResolveLimit returns the first positive candidate, or fallback when none is
// positive. A non-positive fallback means DefaultLimit.
func ResolveLimit(fallback int, candidates ...*int) int {
	for _, c := range candidates {
		if c != nil && *c > 0 {
			return *c
		}
	}
	if fallback <= 0 {
		return DefaultLimit
	}
	return fallback
}

// ResolveOffset returns *offset when it is positive, otherwise 0.
func ResolveOffset(offset *int) int {
	if offset == nil || *offset < 0 {
		return 0
	}
	return *offset
}
