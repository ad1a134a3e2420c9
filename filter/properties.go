package filter

import (
	"sort"
	"strings"

	"github.com/ncobase/taskbridge/validation"
	"github.com/ncobase/taskbridge/validation/validator"
)

// DebugPrefix marks caller keys that are never reported as unknown.
const DebugPrefix = "_"

// DeprecatedCompleted is the legacy spelling of "completed".
const DeprecatedCompleted = "includeCompleted"

var taskProperties = newAllowList(
	"id",
	"completed",
	"flagged",
	"blocked",
	"available",
	"inInbox",
	"dropped",
	"hasRepetitionRule",
	"tags",
	"tagsOperator",
	"text",
	"textOperator",
	"dueAfter",
	"dueBefore",
	"dueDateOperator",
	"deferAfter",
	"deferBefore",
	"deferDateOperator",
	"plannedAfter",
	"plannedBefore",
	"plannedDateOperator",
	"todayMode",
	"tagStatusValid",
	"limit",
	"offset",
	"mode",
	DeprecatedCompleted,
)

// allowList is a read-only set of property names.
type allowList struct {
	names map[string]struct{}
}

func newAllowList(names ...string) allowList {
	m := make(map[string]struct{}, len(names))
	for _, n := range names {
		m[n] = struct{}{}
	}
	return allowList{names: m}
}

func (a allowList) has(name string) bool {
	_, ok := a.names[name]
	return ok
}

func (a allowList) list() []string {
	out := make([]string, 0, len(a.names))
	for n := range a.names {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// unknown returns the keys of raw missing from a, sorted.
func (a allowList) unknown(raw map[string]any) []string {
	var out []string
	for k := range raw {
		if strings.HasPrefix(k, DebugPrefix) || a.has(k) {
			continue
		}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// KnownProperties returns the accepted task filter property names, sorted.
func KnownProperties() []string { return taskProperties.list() }

// ValidateProperties returns the keys of raw that are not task filter
// properties, sorted. Keys with DebugPrefix are skipped.
func ValidateProperties(raw map[string]any) []string {
	return taskProperties.unknown(raw)
}

// ValidateOperators reports operator literals and pagination values outside
// their allowed sets. Like ValidateProperties it is advisory.
func ValidateOperators(spec Specification) []validation.Error {
	return validator.Struct(spec.Fields)
}
