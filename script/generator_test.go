package script

import (
	"encoding/json"
	"regexp"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/ncobase/taskbridge/filter"
	"github.com/ncobase/taskbridge/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func normalized(t *testing.T, raw map[string]any) filter.Normalized {
	t.Helper()
	n, unknown, err := filter.Parse(raw)
	require.NoError(t, err)
	require.Empty(t, unknown)
	return n
}

func TestFilterBlockCompletion(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]any
		want string
	}{
		{"unset drops completed", map[string]any{}, "if (task.completed) continue;"},
		{"false drops completed", map[string]any{"completed": false}, "if (task.completed) continue;"},
		{"true keeps only completed", map[string]any{"completed": true}, "if (!task.completed) continue;"},
		{"legacy alias", map[string]any{"includeCompleted": true}, "if (!task.completed) continue;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frag := FilterBlock(normalized(t, tt.raw), Toggles{})
			assert.Equal(t, tt.want, frag.Predicates)
			assert.Empty(t, frag.Helpers)
		})
	}
}

func TestFilterBlockPredicates(t *testing.T) {
	n := normalized(t, map[string]any{
		"id":             "abc",
		"tags":           []any{"work", "home"},
		"tagsOperator":   "OR",
		"text":           "Report",
		"dueBefore":      "2025-03-01",
		"plannedAfter":   "2025-02-01 09:00",
		"flagged":        true,
		"todayMode":      true,
		"tagStatusValid": false,
	})

	frag := FilterBlock(n, DetectToggles(n))
	lines := strings.Split(frag.Predicates, "\n")
	assert.Equal(t, []string{
		`if (task.id.primaryKey !== "abc") continue;`,
		`if (task.completed) continue;`,
		`if (!matchesTags(task, ["work","home"], "OR")) continue;`,
		`if (tagsAreValid(task) !== false) continue;`,
		`if (!matchesText(task, "Report", "CONTAINS")) continue;`,
		`if (!matchesDateRange(task.dueDate, null, "2025-03-01", "<=")) continue;`,
		`if (!matchesDateRange(task.plannedDate, "2025-02-01 09:00", null, ">=")) continue;`,
		`if (task.flagged !== true) continue;`,
		`if (!(isDueSoon(task, 3) || task.flagged)) continue;`,
	}, lines)

	for _, fn := range []string{"function matchesTags", "function matchesText", "function matchesDateRange", "function isDueSoon"} {
		assert.Contains(t, frag.Helpers, fn)
	}
}

func TestFilterBlockToggles(t *testing.T) {
	n := normalized(t, map[string]any{"tags": "work", "flagged": true})

	frag := FilterBlock(n, Toggles{Flags: true})
	assert.NotContains(t, frag.Predicates, "matchesTags")
	assert.NotContains(t, frag.Helpers, "function matchesTags")
	assert.Contains(t, frag.Predicates, "task.flagged !== true")

	frag = FilterBlock(n, AllToggles())
	assert.Contains(t, frag.Helpers, "function matchesText")
	assert.NotContains(t, frag.Predicates, "matchesText(")
}

func TestDetectToggles(t *testing.T) {
	assert.Equal(t, Toggles{}, DetectToggles(normalized(t, map[string]any{"completed": true})))
	assert.Equal(t, Toggles{Dates: true}, DetectToggles(normalized(t, map[string]any{"deferAfter": "2025-01-01"})))
	assert.Equal(t, Toggles{Flags: true}, DetectToggles(normalized(t, map[string]any{"todayMode": true})))
	assert.Equal(t, Toggles{Tags: true, Text: true}, DetectToggles(normalized(t, map[string]any{"tags": "a", "text": "b"})))
}

func TestUnsealedFilterPanics(t *testing.T) {
	assert.PanicsWithValue(t, ErrNotNormalized, func() {
		FilterBlock(filter.Normalized{}, AllToggles())
	})
	assert.PanicsWithValue(t, ErrNotNormalized, func() {
		_, _ = FullScript(filter.Normalized{}, Options{})
	})
}

func TestFullScript(t *testing.T) {
	n := normalized(t, map[string]any{"flagged": true, "limit": 10, "offset": 5})

	text, err := FullScript(n, Options{})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(text, "(() => {\n"))
	assert.Contains(t, text, "var source = flattenedTasks;")
	assert.Contains(t, text, "var limit = 10;")
	assert.Contains(t, text, "var offset = 5;")
	assert.Contains(t, text, `JSON.stringify({ tasks: results, count: results.length, collection: "flattenedTasks" })`)
	assert.Contains(t, text, "error: true")
	assert.Contains(t, text, "function serializeTask")

	text, err = FullScript(n, Options{Limit: types.ToPointer(3), Collection: Inbox})
	require.NoError(t, err)
	assert.Contains(t, text, "var limit = 3;")
	assert.Contains(t, text, "var source = inbox;")
}

func TestFullScriptDefaults(t *testing.T) {
	n := normalized(t, map[string]any{})

	text, err := FullScript(n, Options{})
	require.NoError(t, err)
	assert.Contains(t, text, "var limit = 50;")
	assert.Contains(t, text, "var offset = 0;")

	text, err = FullScript(n, Options{DefaultLimit: 20})
	require.NoError(t, err)
	assert.Contains(t, text, "var limit = 20;")

	text, err = FullScript(normalized(t, map[string]any{"mode": "inbox"}), Options{})
	require.NoError(t, err)
	assert.Contains(t, text, "var source = inbox;")

	_, err = FullScript(n, Options{Collection: "everything"})
	assert.ErrorIs(t, err, ErrUnknownCollection)
}

func TestFullScriptLargeLimits(t *testing.T) {
	text, err := FullScript(normalized(t, map[string]any{}), Options{Limit: types.ToPointer(5000)})
	require.NoError(t, err)
	assert.Contains(t, text, "var limit = 5000;")

	text, err = FullScript(normalized(t, map[string]any{"limit": 2500}), Options{})
	require.NoError(t, err)
	assert.Contains(t, text, "var limit = 2500;")
}

func TestFullScriptDeterministic(t *testing.T) {
	raw := map[string]any{
		"tags": []any{"b", "a"}, "text": "x", "dueAfter": "2025-01-01", "dueBefore": "2025-02-01",
		"flagged": false, "available": true, "limit": 7,
	}
	a, err := FullScript(normalized(t, raw), Options{})
	require.NoError(t, err)
	b, err := FullScript(normalized(t, raw), Options{})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// textLiteral extracts the first argument of the matchesText call.
var textLiteral = regexp.MustCompile(`matchesText\(task, ("(?:[^"\\]|\\.)*"), `)

func TestGeneratedLiteralsRoundTrip(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("text survives as a single literal", prop.ForAll(
		func(s string) bool {
			text := s + `"'\` + "\n </script>"
			n := filter.Normalize(filter.Specification{Fields: filter.Fields{Text: text}})
			frag := FilterBlock(n, DetectToggles(n))

			m := textLiteral.FindStringSubmatch(frag.Predicates)
			if m == nil {
				return false
			}
			var decoded string
			if err := json.Unmarshal([]byte(m[1]), &decoded); err != nil {
				return false
			}
			return decoded == text && !strings.Contains(frag.Predicates, "\n ")
		},
		gen.AnyString(),
	))

	properties.Property("same filter gives the same script", prop.ForAll(
		func(text string, tags []string, flagged bool, limit int) bool {
			spec := filter.Specification{Fields: filter.Fields{
				Text:    text,
				Tags:    tags,
				Flagged: &flagged,
				Limit:   &limit,
			}}
			a, errA := FullScript(filter.Normalize(spec), Options{})
			b, errB := FullScript(filter.Normalize(spec), Options{})
			return errA == nil && errB == nil && a == b
		},
		gen.AlphaString(),
		gen.SliceOf(gen.AlphaString()),
		gen.Bool(),
		gen.IntRange(1, 500),
	))

	properties.TestingRun(t)
}

func TestLiteral(t *testing.T) {
	assert.Equal(t, `"a\"b\\c"`, Literal(`a"b\c`))
	assert.Equal(t, `["x","y"]`, Literal([]string{"x", "y"}))
	assert.Equal(t, `true`, Literal(true))
	assert.Equal(t, `42`, Literal(42))
	assert.Panics(t, func() { Literal(make(chan int)) })
	assert.Equal(t, `"a\ufffdb"`, Literal("a\xffb"))
}
