package projection

import (
	"fmt"

	"github.com/ncobase/taskbridge/ecode"
	"github.com/ncobase/taskbridge/types"
	"github.com/ncobase/taskbridge/validation"
	"github.com/ncobase/taskbridge/validation/validator"
)

// Mode is a level of detail for tag listings.
type Mode string

const (
	Names Mode = "names"
	Basic Mode = "basic"
	Full  Mode = "full"
)

// SortKey orders tag listings.
type SortKey string

const (
	SortByName  SortKey = "name"
	SortByUsage SortKey = "usage"
)

// Specification picks how much of each tag to return. It selects detail, not
// which tags.
type Specification struct {
	Mode              Mode    `json:"mode" mapstructure:"mode" validate:"required,oneof=names basic full"`
	IncludeEmpty      *bool   `json:"includeEmpty,omitempty" mapstructure:"includeEmpty"`
	SortBy            SortKey `json:"sortBy,omitempty" mapstructure:"sortBy" validate:"omitempty,oneof=name usage"`
	IncludeUsageStats *bool   `json:"includeUsageStats,omitempty" mapstructure:"includeUsageStats"`
	Limit             *int    `json:"limit,omitempty" mapstructure:"limit" validate:"omitempty,min=1"`
}

// FieldSet is the resolved output shape of a mode.
type FieldSet struct {
	Mode Mode `json:"mode"`
	// Flat is true when results are a plain list of names instead of objects.
	Flat   bool     `json:"flat"`
	Fields []string `json:"fields"`
	// Usage lists counters added when usage statistics are requested.
	Usage []string `json:"usage,omitempty"`
}

var registry = map[Mode]FieldSet{
	Names: {Mode: Names, Flat: true, Fields: []string{"name"}},
	Basic: {Mode: Basic, Fields: []string{"id", "name"}},
	Full: {
		Mode:   Full,
		Fields: []string{"id", "name", "status", "parent", "children", "allowsNextAction"},
		Usage:  []string{"taskCount", "availableTaskCount"},
	},
}

// Modes lists the known modes.
func Modes() []Mode { return []Mode{Names, Basic, Full} }

// Resolve returns the field set of mode.
func Resolve(mode Mode) (FieldSet, error) {
	fs, ok := registry[mode]
	if !ok {
		return FieldSet{}, fmt.Errorf("projection: unknown mode %q", mode)
	}
	fs.Fields = types.CloneSlice(fs.Fields)
	fs.Usage = types.CloneSlice(fs.Usage)
	return fs, nil
}

// ResolveSpec returns the field set for spec, dropping usage counters unless
// they were requested in full mode.
func ResolveSpec(spec Specification) (FieldSet, error) {
	spec = WithDefaults(spec)
	fs, err := Resolve(spec.Mode)
	if err != nil {
		return FieldSet{}, err
	}
	if spec.Mode != Full || !*spec.IncludeUsageStats {
		fs.Usage = nil
	}
	return fs, nil
}

// WithDefaults returns spec with every optional knob populated. An empty mode
// becomes Basic; Limit stays nil, meaning unlimited.
func WithDefaults(spec Specification) Specification {
	out := spec
	if out.Mode == "" {
		out.Mode = Basic
	}
	if out.IncludeEmpty == nil {
		out.IncludeEmpty = types.ToPointer(false)
	} else {
		out.IncludeEmpty = types.ClonePointer(spec.IncludeEmpty)
	}
	if out.SortBy == "" {
		out.SortBy = SortByName
	}
	if out.IncludeUsageStats == nil {
		out.IncludeUsageStats = types.ToPointer(false)
	} else {
		out.IncludeUsageStats = types.ClonePointer(spec.IncludeUsageStats)
	}
	out.Limit = types.ClonePointer(spec.Limit)
	return out
}

// Validate checks spec. Usage statistics outside full mode, and usage
// sorting without them, are advisory findings only.
func Validate(spec Specification) validation.Result {
	var c validation.Collector
	c.Merge(validator.Struct(spec)...)

	stats := types.ToValue(spec.IncludeUsageStats)
	if stats && spec.Mode != Full && spec.Mode != "" {
		c.Advise(validation.InvalidValue, "includeUsageStats",
			ecode.Advisory(fmt.Sprintf("includeUsageStats only applies to mode %q", Full)))
	}
	if spec.SortBy == SortByUsage && (!stats || spec.Mode != Full) {
		c.Advise(validation.InvalidValue, "sortBy",
			ecode.Advisory("sorting by usage needs mode \"full\" with includeUsageStats"))
	}
	return c.Result()
}
