package mutation

import (
	"fmt"
	"testing"

	"github.com/ncobase/taskbridge/types"
	"github.com/ncobase/taskbridge/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCreate(t *testing.T) {
	t.Run("empty name", func(t *testing.T) {
		r := Validate(&Create{Target: TargetTask, Data: &CreateData{Name: ""}})
		assert.False(t, r.Valid)
		require.Len(t, r.Errors, 1)
		assert.Equal(t, validation.MissingField, r.Errors[0].Code)
		assert.Equal(t, "data.name", r.Errors[0].Field)
	})

	t.Run("missing data", func(t *testing.T) {
		r := Validate(&Create{Target: TargetProject})
		require.Len(t, r.Errors, 1)
		assert.Equal(t, "data.name", r.Errors[0].Field)
	})

	t.Run("valid", func(t *testing.T) {
		r := Validate(&Create{Target: TargetTask, Data: &CreateData{
			Name:    "Write report",
			DueDate: "2025-03-01 17:00",
			Tags:    []string{"work"},
			RepetitionRule: &RepetitionRule{
				Frequency:  "weekly",
				Interval:   types.ToPointer(2),
				DaysOfWeek: []int{1, 3},
			},
		}})
		assert.True(t, r.Valid)
		assert.Empty(t, r.Errors)
	})

	t.Run("bad fields are all reported", func(t *testing.T) {
		r := Validate(&Create{Target: "area", Data: &CreateData{
			Name:           "x",
			DueDate:        "03/01/2025",
			Status:         "paused",
			RepetitionRule: &RepetitionRule{Frequency: "hourly", DaysOfWeek: []int{7}},
		}})
		assert.False(t, r.Valid)

		for field, code := range map[string]validation.Code{
			"target":                            validation.InvalidValue,
			"data.dueDate":                      validation.InvalidValue,
			"data.status":                       validation.InvalidValue,
			"data.repetitionRule.frequency":     validation.InvalidValue,
			"data.repetitionRule.daysOfWeek[0]": validation.InvalidValue,
		} {
			e, ok := r.Find(field)
			if assert.True(t, ok, field) {
				assert.Equal(t, code, e.Code, field)
			}
		}
	})

	t.Run("missing target", func(t *testing.T) {
		r := Validate(&Create{Data: &CreateData{Name: "x"}})
		e, ok := r.Find("target")
		require.True(t, ok)
		assert.Equal(t, validation.MissingField, e.Code)
	})
}

func TestValidateUpdate(t *testing.T) {
	tests := []struct {
		name  string
		m     *Update
		field string
		code  validation.Code
	}{
		{
			name:  "missing id",
			m:     &Update{Target: TargetTask, Changes: &Changes{Flagged: types.ToPointer(true)}},
			field: "id",
			code:  validation.MissingField,
		},
		{
			name:  "nil changes",
			m:     &Update{Target: TargetTask, ID: "t1"},
			field: "changes",
			code:  validation.MissingField,
		},
		{
			name:  "empty changes",
			m:     &Update{Target: TargetTask, ID: "t1", Changes: &Changes{}},
			field: "changes",
			code:  validation.MissingField,
		},
		{
			name: "tags with addTags",
			m: &Update{Target: TargetTask, ID: "t1", Changes: &Changes{
				Tags:    []string{"a"},
				AddTags: []string{"b"},
			}},
			field: "changes.tags",
			code:  validation.ConflictingFields,
		},
		{
			name: "repetition rule with clear",
			m: &Update{Target: TargetTask, ID: "t1", Changes: &Changes{
				RepetitionRule:      &RepetitionRule{Frequency: "daily"},
				ClearRepetitionRule: types.ToPointer(true),
			}},
			field: "changes.repetitionRule",
			code:  validation.ConflictingFields,
		},
		{
			name:  "blank name",
			m:     &Update{Target: TargetTask, ID: "t1", Changes: &Changes{Name: types.ToPointer("  ")}},
			field: "changes.name",
			code:  validation.InvalidValue,
		},
		{
			name:  "zero interval",
			m:     &Update{Target: TargetTask, ID: "t1", Changes: &Changes{RepetitionRule: &RepetitionRule{Frequency: "daily", Interval: types.ToPointer(0)}}},
			field: "changes.repetitionRule.interval",
			code:  validation.InvalidValue,
		},
		{
			name:  "missing frequency",
			m:     &Update{Target: TargetTask, ID: "t1", Changes: &Changes{RepetitionRule: &RepetitionRule{}}},
			field: "changes.repetitionRule.frequency",
			code:  validation.MissingField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Validate(tt.m)
			assert.False(t, r.Valid)
			e, ok := r.Find(tt.field)
			require.True(t, ok, "no finding on %s: %+v", tt.field, r.Errors)
			assert.Equal(t, tt.code, e.Code)
		})
	}

	r := Validate(&Update{Target: TargetTask, ID: "t1", Changes: &Changes{AddTags: []string{"a"}, RemoveTags: []string{"b"}}})
	assert.True(t, r.Valid)
}

func TestValidateCompleteAndDelete(t *testing.T) {
	assert.True(t, Validate(&Complete{Target: TargetTask, ID: "t1"}).Valid)
	assert.True(t, Validate(&Complete{Target: TargetTask, ID: "t1", CompletionDate: "2025-01-02"}).Valid)

	r := Validate(&Complete{Target: TargetTask, ID: "t1", CompletionDate: "yesterday"})
	assert.Equal(t, []validation.Code{validation.InvalidValue}, r.Codes())

	r = Validate(&Delete{Target: TargetProject})
	assert.Equal(t, []validation.Code{validation.MissingField}, r.Codes())
	assert.True(t, Validate(&Delete{Target: TargetProject, ID: "p1"}).Valid)
}

func TestValidateBatch(t *testing.T) {
	t.Run("too many operations", func(t *testing.T) {
		ops := make([]BatchOperation, MaxBatchOperations+1)
		for i := range ops {
			ops[i] = BatchOperation{Operation: OpDelete, ID: fmt.Sprintf("t%d", i)}
		}
		r := Validate(&Batch{Target: TargetTask, Operations: ops})
		assert.False(t, r.Valid)
		e, ok := r.Find("operations")
		require.True(t, ok)
		assert.Equal(t, validation.InvalidValue, e.Code)
	})

	t.Run("exactly the cap", func(t *testing.T) {
		ops := make([]BatchOperation, MaxBatchOperations)
		for i := range ops {
			ops[i] = BatchOperation{Operation: OpComplete, ID: fmt.Sprintf("t%d", i)}
		}
		assert.True(t, Validate(&Batch{Operations: ops}).Valid)
	})

	t.Run("empty", func(t *testing.T) {
		r := Validate(&Batch{})
		assert.Equal(t, []validation.Code{validation.MissingField}, r.Codes())
	})

	t.Run("sub operations", func(t *testing.T) {
		r := Validate(&Batch{Operations: []BatchOperation{
			{Operation: OpCreate, TempID: "p", Data: &CreateData{Name: "Parent"}},
			{Operation: OpCreate, ParentTempID: "p", Data: &CreateData{Name: ""}},
			{Operation: OpCreate, ParentTempID: "later", TempID: "p", Data: &CreateData{Name: "x"}},
			{Operation: "archive"},
			{Operation: OpUpdate, ID: "t1", Changes: &Changes{Tags: []string{"a"}, RemoveTags: []string{"b"}}},
			{},
		}})
		assert.False(t, r.Valid)

		for field, code := range map[string]validation.Code{
			"operations[1].data.name":    validation.MissingField,
			"operations[2].parentTempId": validation.InvalidValue,
			"operations[2].tempId":       validation.InvalidValue,
			"operations[3].operation":    validation.UnknownOperation,
			"operations[4].changes.tags": validation.ConflictingFields,
			"operations[5].operation":    validation.MissingField,
		} {
			e, ok := r.Find(field)
			if assert.True(t, ok, field) {
				assert.Equal(t, code, e.Code, field)
			}
		}
		_, ok := r.Find("operations[0].data.name")
		assert.False(t, ok)
	})
}

func TestValidateBulkDelete(t *testing.T) {
	ids := make([]string, MaxBulkDeleteIDs+1)
	for i := range ids {
		ids[i] = fmt.Sprintf("t%d", i)
	}
	r := Validate(&BulkDelete{Target: TargetTask, IDs: ids})
	assert.Equal(t, []validation.Code{validation.InvalidValue}, r.Codes())

	r = Validate(&BulkDelete{Target: TargetTask, IDs: []string{"a", " "}})
	e, ok := r.Find("ids[1]")
	require.True(t, ok)
	assert.Equal(t, validation.InvalidValue, e.Code)

	r = Validate(&BulkDelete{Target: TargetTask})
	assert.Equal(t, []validation.Code{validation.MissingField}, r.Codes())
}

// foreign is a variant outside the known set.
type foreign struct{}

func (*foreign) Operation() Operation { return "archive" }
func (*foreign) mutation()            {}

func TestValidateUnknownVariant(t *testing.T) {
	r := Validate(&foreign{})
	assert.False(t, r.Valid)
	assert.Equal(t, []validation.Code{validation.UnknownOperation}, r.Codes())

	r = Validate(nil)
	assert.False(t, r.Valid)

	var c *Create
	assert.NotPanics(t, func() { r = Validate(c) })
	assert.False(t, r.Valid)
}

func TestIsDateString(t *testing.T) {
	for s, want := range map[string]bool{
		"2025-01-02":       true,
		"2025-01-02 09:30": true,
		"2025-01-02T09:30": false,
		"2025-1-2":         false,
		"":                 false,
	} {
		assert.Equal(t, want, IsDateString(s), s)
	}
}
