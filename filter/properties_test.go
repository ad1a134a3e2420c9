package filter

import (
	"sort"
	"testing"

	"github.com/ncobase/taskbridge/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateProperties(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]any
		want []string
	}{
		{"misspelled", map[string]any{"complted": true}, []string{"complted"}},
		{"known", map[string]any{"completed": true, "includeCompleted": false, "dueBefore": "2025-01-01"}, nil},
		{"debug prefix", map[string]any{"_debug": 1, "_": 2}, nil},
		{"sorted", map[string]any{"zeta": 1, "alpha": 2, "flagged": true}, []string{"alpha", "zeta"}},
		{"empty", map[string]any{}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateProperties(tt.raw))
		})
	}
}

func TestKnownProperties(t *testing.T) {
	known := KnownProperties()
	assert.True(t, sort.StringsAreSorted(known))
	assert.Contains(t, known, "completed")
	assert.Contains(t, known, DeprecatedCompleted)
	assert.Contains(t, known, "plannedDateOperator")
}

func TestValidateOperators(t *testing.T) {
	spec, err := Decode(map[string]any{
		"tags":            []any{"a"},
		"tagsOperator":    "XOR",
		"dueDateOperator": "<=",
		"limit":           0,
	})
	require.NoError(t, err)

	errs := ValidateOperators(spec)
	require.Len(t, errs, 2)

	fields := map[string]validation.Code{}
	for _, e := range errs {
		fields[e.Field] = e.Code
	}
	assert.Equal(t, validation.InvalidValue, fields["tagsOperator"])
	assert.Equal(t, validation.InvalidValue, fields["limit"])

	spec, err = Decode(map[string]any{"textOperator": "MATCHES", "dueDateOperator": "BETWEEN"})
	require.NoError(t, err)
	assert.Empty(t, ValidateOperators(spec))
}

func TestDateRangeEffectiveOperator(t *testing.T) {
	tests := []struct {
		r    DateRange
		want DateOperator
	}{
		{DateRange{After: "2025-01-01", Before: "2025-02-01"}, DateBetween},
		{DateRange{Before: "2025-02-01"}, DateOnOrBefore},
		{DateRange{After: "2025-01-01"}, DateOnOrAfter},
		{DateRange{Before: "2025-02-01", Operator: DateBefore}, DateBefore},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.r.EffectiveOperator())
	}
	assert.False(t, DateRange{}.IsSet())

	f := Fields{DeferAfter: "2025-01-01", PlannedBefore: "2025-06-01"}
	assert.True(t, f.DateRange(Defer).IsSet())
	assert.True(t, f.DateRange(Planned).IsSet())
	assert.False(t, f.DateRange(Due).IsSet())
}

func TestProjectFilter(t *testing.T) {
	raw := map[string]any{"status": []any{"active", "paused"}, "folderId": "f1", "owner": "me"}
	assert.Equal(t, []string{"owner"}, ValidateProjectProperties(raw))

	pf, err := DecodeProject(raw)
	require.NoError(t, err)
	assert.Equal(t, "f1", pf.FolderID)

	errs := ValidateProjectFilter(pf)
	require.Len(t, errs, 1)
	assert.Equal(t, "status[1]", errs[0].Field)
	assert.Equal(t, validation.InvalidValue, errs[0].Code)

	assert.Contains(t, KnownProjectProperties(), "needsReview")
}
