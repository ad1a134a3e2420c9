package filter

import (
	"encoding/json"

	"github.com/ncobase/taskbridge/types"
)

// TagOperator combines the tags of a filter.
type TagOperator string

const (
	TagsAnd   TagOperator = "AND"
	TagsOr    TagOperator = "OR"
	TagsNotIn TagOperator = "NOT_IN"
)

// TextOperator selects how free text is matched.
type TextOperator string

const (
	TextContains TextOperator = "CONTAINS"
	TextMatches  TextOperator = "MATCHES"
)

// DateOperator selects how a date range is compared.
type DateOperator string

const (
	DateBetween    DateOperator = "BETWEEN"
	DateBefore     DateOperator = "<"
	DateOnOrBefore DateOperator = "<="
	DateAfter      DateOperator = ">"
	DateOnOrAfter  DateOperator = ">="
)

// DateKind names one of the three date ranges of a filter.
type DateKind string

const (
	Due     DateKind = "due"
	Defer   DateKind = "defer"
	Planned DateKind = "planned"
)

// DateKinds lists the date ranges in generation order.
var DateKinds = [...]DateKind{Due, Defer, Planned}

// DateRange is one date window of a filter. Dates are "YYYY-MM-DD" or
// "YYYY-MM-DD HH:mm" strings.
type DateRange struct {
	After    string
	Before   string
	Operator DateOperator
}

// IsSet reports whether either bound is present.
func (r DateRange) IsSet() bool { return r.After != "" || r.Before != "" }

// EffectiveOperator returns the explicit operator or the one implied by the
// bounds that are present.
func (r DateRange) EffectiveOperator() DateOperator {
	if r.Operator != "" {
		return r.Operator
	}
	switch {
	case r.After != "" && r.Before != "":
		return DateBetween
	case r.Before != "":
		return DateOnOrBefore
	default:
		return DateOnOrAfter
	}
}

// Fields holds the canonical filter attributes. Exactly one name exists per
// attribute; nil pointers and empty strings mean "not set".
type Fields struct {
	ID                  string       `json:"id,omitempty" mapstructure:"id"`
	Completed           *bool        `json:"completed,omitempty" mapstructure:"completed"`
	Flagged             *bool        `json:"flagged,omitempty" mapstructure:"flagged"`
	Blocked             *bool        `json:"blocked,omitempty" mapstructure:"blocked"`
	Available           *bool        `json:"available,omitempty" mapstructure:"available"`
	InInbox             *bool        `json:"inInbox,omitempty" mapstructure:"inInbox"`
	Dropped             *bool        `json:"dropped,omitempty" mapstructure:"dropped"`
	HasRepetitionRule   *bool        `json:"hasRepetitionRule,omitempty" mapstructure:"hasRepetitionRule"`
	Tags                []string     `json:"tags,omitempty" mapstructure:"tags"`
	TagsOperator        TagOperator  `json:"tagsOperator,omitempty" mapstructure:"tagsOperator" validate:"omitempty,oneof=AND OR NOT_IN"`
	Text                string       `json:"text,omitempty" mapstructure:"text"`
	TextOperator        TextOperator `json:"textOperator,omitempty" mapstructure:"textOperator" validate:"omitempty,oneof=CONTAINS MATCHES"`
	DueAfter            string       `json:"dueAfter,omitempty" mapstructure:"dueAfter"`
	DueBefore           string       `json:"dueBefore,omitempty" mapstructure:"dueBefore"`
	DueDateOperator     DateOperator `json:"dueDateOperator,omitempty" mapstructure:"dueDateOperator" validate:"omitempty,oneof=BETWEEN < <= > >="`
	DeferAfter          string       `json:"deferAfter,omitempty" mapstructure:"deferAfter"`
	DeferBefore         string       `json:"deferBefore,omitempty" mapstructure:"deferBefore"`
	DeferDateOperator   DateOperator `json:"deferDateOperator,omitempty" mapstructure:"deferDateOperator" validate:"omitempty,oneof=BETWEEN < <= > >="`
	PlannedAfter        string       `json:"plannedAfter,omitempty" mapstructure:"plannedAfter"`
	PlannedBefore       string       `json:"plannedBefore,omitempty" mapstructure:"plannedBefore"`
	PlannedDateOperator DateOperator `json:"plannedDateOperator,omitempty" mapstructure:"plannedDateOperator" validate:"omitempty,oneof=BETWEEN < <= > >="`
	TodayMode           *bool        `json:"todayMode,omitempty" mapstructure:"todayMode"`
	TagStatusValid      *bool        `json:"tagStatusValid,omitempty" mapstructure:"tagStatusValid"`
	Limit               *int         `json:"limit,omitempty" mapstructure:"limit" validate:"omitempty,min=1"`
	Offset              *int         `json:"offset,omitempty" mapstructure:"offset" validate:"omitempty,min=0"`
	// Mode is the legacy query mode tag, carried through for older callers.
	Mode string `json:"mode,omitempty" mapstructure:"mode"`
}

// DateRange returns the range for kind.
func (f Fields) DateRange(kind DateKind) DateRange {
	switch kind {
	case Due:
		return DateRange{After: f.DueAfter, Before: f.DueBefore, Operator: f.DueDateOperator}
	case Defer:
		return DateRange{After: f.DeferAfter, Before: f.DeferBefore, Operator: f.DeferDateOperator}
	case Planned:
		return DateRange{After: f.PlannedAfter, Before: f.PlannedBefore, Operator: f.PlannedDateOperator}
	}
	return DateRange{}
}

func (f Fields) clone() Fields {
	c := f
	c.Completed = types.ClonePointer(f.Completed)
	c.Flagged = types.ClonePointer(f.Flagged)
	c.Blocked = types.ClonePointer(f.Blocked)
	c.Available = types.ClonePointer(f.Available)
	c.InInbox = types.ClonePointer(f.InInbox)
	c.Dropped = types.ClonePointer(f.Dropped)
	c.HasRepetitionRule = types.ClonePointer(f.HasRepetitionRule)
	c.Tags = types.CloneSlice(f.Tags)
	c.TodayMode = types.ClonePointer(f.TodayMode)
	c.TagStatusValid = types.ClonePointer(f.TagStatusValid)
	c.Limit = types.ClonePointer(f.Limit)
	c.Offset = types.ClonePointer(f.Offset)
	return c
}

// Specification is a filter as supplied by a caller. IncludeCompleted is the
// deprecated spelling of Completed and only exists at this boundary.
type Specification struct {
	Fields `mapstructure:",squash"`

	// Deprecated: use Completed.
	IncludeCompleted *bool `json:"includeCompleted,omitempty" mapstructure:"includeCompleted"`
}

// Normalized is a Specification that went through Normalize. The zero value
// is not sealed and is rejected by the script generator.
type Normalized struct {
	fields Fields
	sealed bool
}

// Sealed reports whether n was produced by Normalize.
func (n Normalized) Sealed() bool { return n.sealed }

// Fields returns a copy of the normalized fields.
func (n Normalized) Fields() Fields { return n.fields.clone() }

// Spec returns n as a Specification, without the deprecated alias.
func (n Normalized) Spec() Specification { return Specification{Fields: n.Fields()} }

// MarshalJSON encodes the normalized fields.
func (n Normalized) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.fields)
}
