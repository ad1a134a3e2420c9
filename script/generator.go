package script

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ncobase/taskbridge/filter"
	"github.com/ncobase/taskbridge/paging"
	"github.com/ncobase/taskbridge/types"
)

// ErrNotNormalized is the panic value when the generator receives a filter
// that did not go through filter.Normalize.
var ErrNotNormalized = errors.New("script: filter specification was not normalized")

// ErrUnknownCollection is returned for a source collection outside the known set.
var ErrUnknownCollection = errors.New("script: unknown collection")

// DueSoonDays is the look-ahead of the "today" composite filter.
const DueSoonDays = 3

// Collection names a task collection exposed by the automation runtime.
type Collection string

const (
	FlattenedTasks Collection = "flattenedTasks"
	Inbox          Collection = "inbox"
)

// ShapeKey is the result key of generated task queries.
const ShapeKey = "tasks"

var dateAccessors = map[filter.DateKind]string{
	filter.Due:     "task.dueDate",
	filter.Defer:   "task.deferDate",
	filter.Planned: "task.plannedDate",
}

// Toggles enables the optional filter capabilities. Identity and completion
// predicates are always emitted.
type Toggles struct {
	Tags  bool `json:"tags"`
	Text  bool `json:"text"`
	Dates bool `json:"dates"`
	Flags bool `json:"flags"`
}

// AllToggles enables every capability.
func AllToggles() Toggles {
	return Toggles{Tags: true, Text: true, Dates: true, Flags: true}
}

// DetectToggles enables each capability whose fields are set on n.
func DetectToggles(n filter.Normalized) Toggles {
	mustBeSealed(n)
	f := n.Fields()
	var t Toggles
	t.Tags = len(f.Tags) > 0 || f.TagStatusValid != nil
	t.Text = f.Text != ""
	for _, k := range filter.DateKinds {
		if f.DateRange(k).IsSet() {
			t.Dates = true
		}
	}
	t.Flags = f.Flagged != nil || f.Blocked != nil || f.Available != nil ||
		f.InInbox != nil || f.Dropped != nil || f.HasRepetitionRule != nil ||
		types.ToValue(f.TodayMode)
	return t
}

// Fragment is generated filter text: helper definitions and the predicate
// chain. Each predicate line skips the current task with `continue`.
type Fragment struct {
	Helpers    string `json:"helpers"`
	Predicates string `json:"predicates"`
}

func mustBeSealed(n filter.Normalized) {
	if !n.Sealed() {
		panic(ErrNotNormalized)
	}
}

// FilterBlock compiles n into helper and predicate text for the enabled
// capabilities. The completion predicate is always present: completed=true
// keeps only completed tasks; false or unset drops them.
func FilterBlock(n filter.Normalized, t Toggles) Fragment {
	mustBeSealed(n)
	f := n.Fields()

	var helpers []string
	var preds []string

	if f.ID != "" {
		preds = append(preds, fmt.Sprintf("if (task.id.primaryKey !== %s) continue;", Literal(f.ID)))
	}
	if types.ToValue(f.Completed) {
		preds = append(preds, "if (!task.completed) continue;")
	} else {
		preds = append(preds, "if (task.completed) continue;")
	}

	if t.Tags {
		helpers = append(helpers, helperTags)
		if len(f.Tags) > 0 {
			preds = append(preds, fmt.Sprintf("if (!matchesTags(task, %s, %s)) continue;",
				Literal(f.Tags), Literal(string(f.TagsOperator))))
		}
		if f.TagStatusValid != nil {
			preds = append(preds, fmt.Sprintf("if (tagsAreValid(task) !== %s) continue;", Literal(*f.TagStatusValid)))
		}
	}

	if t.Text {
		helpers = append(helpers, helperText)
		if f.Text != "" {
			preds = append(preds, fmt.Sprintf("if (!matchesText(task, %s, %s)) continue;",
				Literal(f.Text), Literal(string(f.TextOperator))))
		}
	}

	if t.Dates {
		helpers = append(helpers, helperDates)
		for _, k := range filter.DateKinds {
			r := f.DateRange(k)
			if !r.IsSet() {
				continue
			}
			preds = append(preds, fmt.Sprintf("if (!matchesDateRange(%s, %s, %s, %s)) continue;",
				dateAccessors[k], nullable(r.After), nullable(r.Before), Literal(string(r.EffectiveOperator()))))
		}
	}

	if t.Flags {
		helpers = append(helpers, helperFlags)
		preds = appendFlag(preds, "task.flagged", f.Flagged)
		preds = appendFlag(preds, "(task.taskStatus === Task.Status.Blocked)", f.Blocked)
		preds = appendFlag(preds, "isAvailable(task)", f.Available)
		preds = appendFlag(preds, "task.inInbox", f.InInbox)
		preds = appendFlag(preds, "(task.taskStatus === Task.Status.Dropped)", f.Dropped)
		preds = appendFlag(preds, "(task.repetitionRule !== null)", f.HasRepetitionRule)
		if types.ToValue(f.TodayMode) {
			preds = append(preds, fmt.Sprintf("if (!(isDueSoon(task, %s) || task.flagged)) continue;", Literal(DueSoonDays)))
		}
	}

	return Fragment{
		Helpers:    strings.Join(helpers, "\n"),
		Predicates: strings.Join(preds, "\n"),
	}
}

func appendFlag(preds []string, expr string, want *bool) []string {
	if want == nil {
		return preds
	}
	return append(preds, fmt.Sprintf("if (%s !== %s) continue;", expr, Literal(*want)))
}

func nullable(s string) string {
	if s == "" {
		return "null"
	}
	return Literal(s)
}

// Options controls FullScript.
type Options struct {
	// Collection defaults to FlattenedTasks, or Inbox for the legacy "inbox" mode.
	Collection Collection `json:"collection,omitempty"`
	// Limit overrides the filter's own limit.
	Limit *int `json:"limit,omitempty"`
	// Toggles defaults to DetectToggles.
	Toggles *Toggles `json:"toggles,omitempty"`
	// DefaultLimit applies when neither Limit nor the filter sets one.
	DefaultLimit int `json:"defaultLimit,omitempty"`
}

func resolveCollection(c Collection, mode string) (Collection, error) {
	switch c {
	case FlattenedTasks, Inbox:
		return c, nil
	case "":
		if mode == string(Inbox) {
			return Inbox, nil
		}
		return FlattenedTasks, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCollection, c)
}

// FullScript returns a complete script that walks a task collection, applies
// n, and returns JSON text {"tasks": [...], "count": n, "collection": name}.
// The same n and opts always produce the same text.
func FullScript(n filter.Normalized, opts Options) (string, error) {
	mustBeSealed(n)
	f := n.Fields()

	collection, err := resolveCollection(opts.Collection, f.Mode)
	if err != nil {
		return "", err
	}
	toggles := DetectToggles(n)
	if opts.Toggles != nil {
		toggles = *opts.Toggles
	}
	limit := paging.ResolveLimit(opts.DefaultLimit, opts.Limit, f.Limit)
	offset := paging.ResolveOffset(f.Offset)

	frag := FilterBlock(n, toggles)

	var b strings.Builder
	b.WriteString("(() => {\n")
	b.WriteString("  try {\n")
	if frag.Helpers != "" {
		b.WriteString(indent(frag.Helpers, "    "))
		b.WriteString("\n")
	}
	b.WriteString(indent(helperSerialize, "    "))
	b.WriteString("\n")
	fmt.Fprintf(&b, "    var source = %s;\n", collection)
	fmt.Fprintf(&b, "    var limit = %s;\n", Literal(limit))
	fmt.Fprintf(&b, "    var offset = %s;\n", Literal(offset))
	b.WriteString("    var skipped = 0;\n")
	b.WriteString("    var results = [];\n")
	b.WriteString("    for (var i = 0; i < source.length; i++) {\n")
	b.WriteString("      if (results.length >= limit) break;\n")
	b.WriteString("      var task = source[i];\n")
	b.WriteString(indent(frag.Predicates, "      "))
	b.WriteString("\n")
	b.WriteString("      if (skipped < offset) { skipped++; continue; }\n")
	b.WriteString("      results.push(serializeTask(task));\n")
	b.WriteString("    }\n")
	fmt.Fprintf(&b, "    return JSON.stringify({ %s: results, count: results.length, collection: %s });\n",
		ShapeKey, Literal(string(collection)))
	b.WriteString("  } catch (e) {\n")
	b.WriteString("    return JSON.stringify({ error: true, message: String(e), stack: e && e.stack ? String(e.stack) : \"\" });\n")
	b.WriteString("  }\n")
	b.WriteString("})();\n")
	return b.String(), nil
}

func indent(text, prefix string) string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = prefix + l
		}
	}
	return strings.Join(lines, "\n")
}
