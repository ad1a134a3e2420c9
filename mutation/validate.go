package mutation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/ncobase/taskbridge/ecode"
	"github.com/ncobase/taskbridge/types"
	"github.com/ncobase/taskbridge/validation"
	"github.com/ncobase/taskbridge/validation/validator"
)

// DateLayout documents the accepted date string shapes.
const DateLayout = "YYYY-MM-DD or YYYY-MM-DD HH:mm"

// datePattern checks shape only; calendar ranges are not checked.
var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}( \d{2}:\d{2})?$`)

const statusTag = "oneof=active onHold done dropped"

// IsDateString reports whether s has an accepted date shape.
func IsDateString(s string) bool { return datePattern.MatchString(s) }

// Validate checks m and reports every problem found. It never panics on bad
// input and does not stop at the first finding.
func Validate(m Mutation) validation.Result {
	var c validation.Collector

	if isNil(m) {
		c.Add(validation.UnknownOperation, "operation", ecode.FieldIsRequired("mutation"))
		return c.Result()
	}

	switch v := m.(type) {
	case *Create:
		validateCreate(&c, v)
	case *Update:
		validateUpdate(&c, v)
	case *Complete:
		validateComplete(&c, v)
	case *Delete:
		validateDelete(&c, v)
	case *Batch:
		validateBatch(&c, v)
	case *BulkDelete:
		validateBulkDelete(&c, v)
	default:
		// Unreachable for the closed variant set; reported instead of panicking.
		c.Add(validation.UnknownOperation, "operation", ecode.UnknownOperation(string(m.Operation())))
	}

	return c.Result()
}

func isNil(m Mutation) bool {
	if m == nil {
		return true
	}
	v := reflect.ValueOf(m)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// ValidateRaw decodes raw and validates it. Decoding problems are reported as
// findings too, so callers get a Result for any input.
func ValidateRaw(raw map[string]any) validation.Result {
	var c validation.Collector

	m, err := Decode(raw)
	switch {
	case err == nil:
		return Validate(m)
	case errors.Is(err, ErrMissingOperation):
		c.Add(validation.MissingField, "operation", ecode.FieldIsRequired("operation"))
	case errors.Is(err, ErrUnknownOperation):
		op, ok := types.AsString(raw["operation"])
		if !ok {
			op = fmt.Sprint(raw["operation"])
		}
		c.Add(validation.UnknownOperation, "operation", ecode.UnknownOperation(op))
	default:
		c.Add(validation.InvalidValue, "", err.Error())
	}
	return c.Result()
}

func validateTarget(c *validation.Collector, field string, t Target, required bool) {
	switch t {
	case TargetTask, TargetProject:
	case "":
		if required {
			c.Add(validation.MissingField, field, ecode.FieldIsRequired(field))
		}
	default:
		c.Add(validation.InvalidValue, field,
			ecode.FieldNotOneOf(field, t, []string{string(TargetTask), string(TargetProject)}))
	}
}

func requireID(c *validation.Collector, field, id string) {
	if strings.TrimSpace(id) == "" {
		c.Add(validation.MissingField, field, ecode.FieldIsRequired(field))
	}
}

func checkDate(c *validation.Collector, field, value string) {
	if value != "" && !IsDateString(value) {
		c.Add(validation.InvalidValue, field, ecode.FieldBadFormat(field, value, DateLayout))
	}
}

func checkDatePtr(c *validation.Collector, field string, value *string) {
	if value != nil {
		checkDate(c, field, *value)
	}
}

func checkStatus(c *validation.Collector, field, status string) {
	if status == "" {
		return
	}
	c.Merge(validator.Var(field, status, statusTag)...)
}

func checkRepetition(c *validation.Collector, prefix string, rule *RepetitionRule) {
	if rule == nil {
		return
	}
	c.Merge(validation.Prefix(prefix, validator.Struct(rule))...)
	checkDate(c, prefix+".endDate", rule.EndDate)
}

func validateCreateData(c *validation.Collector, prefix string, d *CreateData) {
	if d == nil || strings.TrimSpace(d.Name) == "" {
		c.Add(validation.MissingField, prefix+".name", ecode.FieldIsRequired(prefix+".name"))
	}
	if d == nil {
		return
	}
	checkDate(c, prefix+".dueDate", d.DueDate)
	checkDate(c, prefix+".deferDate", d.DeferDate)
	checkDate(c, prefix+".plannedDate", d.PlannedDate)
	checkStatus(c, prefix+".status", d.Status)
	if d.EstimatedMinutes != nil && *d.EstimatedMinutes < 0 {
		c.Add(validation.InvalidValue, prefix+".estimatedMinutes", ecode.FieldIsInvalid(prefix+".estimatedMinutes"))
	}
	checkRepetition(c, prefix+".repetitionRule", d.RepetitionRule)
}

func validateChanges(c *validation.Collector, prefix string, ch *Changes) {
	if ch == nil {
		c.Add(validation.MissingField, prefix, ecode.FieldIsRequired(prefix))
		return
	}
	if ch.IsEmpty() {
		c.Add(validation.MissingField, prefix, ecode.FieldIsEmpty(prefix))
		return
	}
	if ch.Tags != nil && (ch.AddTags != nil || ch.RemoveTags != nil) {
		c.Add(validation.ConflictingFields, prefix+".tags",
			ecode.FieldsConflict(prefix+".tags", prefix+".addTags", prefix+".removeTags"))
	}
	if ch.Name != nil && strings.TrimSpace(*ch.Name) == "" {
		c.Add(validation.InvalidValue, prefix+".name", ecode.FieldIsBlank(prefix+".name"))
	}
	checkDatePtr(c, prefix+".dueDate", ch.DueDate)
	checkDatePtr(c, prefix+".deferDate", ch.DeferDate)
	checkDatePtr(c, prefix+".plannedDate", ch.PlannedDate)
	if ch.Status != nil {
		checkStatus(c, prefix+".status", *ch.Status)
	}
	if ch.EstimatedMinutes != nil && *ch.EstimatedMinutes < 0 {
		c.Add(validation.InvalidValue, prefix+".estimatedMinutes", ecode.FieldIsInvalid(prefix+".estimatedMinutes"))
	}
	if ch.RepetitionRule != nil && ch.ClearRepetitionRule != nil && *ch.ClearRepetitionRule {
		c.Add(validation.ConflictingFields, prefix+".repetitionRule",
			ecode.FieldsConflict(prefix+".repetitionRule", prefix+".clearRepetitionRule"))
	}
	checkRepetition(c, prefix+".repetitionRule", ch.RepetitionRule)
}

func validateCreate(c *validation.Collector, m *Create) {
	validateTarget(c, "target", m.Target, true)
	validateCreateData(c, "data", m.Data)
}

func validateUpdate(c *validation.Collector, m *Update) {
	validateTarget(c, "target", m.Target, true)
	requireID(c, "id", m.ID)
	validateChanges(c, "changes", m.Changes)
}

func validateComplete(c *validation.Collector, m *Complete) {
	validateTarget(c, "target", m.Target, true)
	requireID(c, "id", m.ID)
	checkDate(c, "completionDate", m.CompletionDate)
}

func validateDelete(c *validation.Collector, m *Delete) {
	validateTarget(c, "target", m.Target, true)
	requireID(c, "id", m.ID)
}

func validateBatch(c *validation.Collector, m *Batch) {
	validateTarget(c, "target", m.Target, false)

	switch n := len(m.Operations); {
	case n == 0:
		c.Add(validation.MissingField, "operations", ecode.FieldIsEmpty("operations"))
		return
	case n > MaxBatchOperations:
		c.Add(validation.InvalidValue, "operations", ecode.TooMany("operations", n, MaxBatchOperations))
	}

	seen := make(map[string]bool)
	for i, op := range m.Operations {
		prefix := fmt.Sprintf("operations[%d]", i)
		validateTarget(c, prefix+".target", op.Target, false)

		switch op.Operation {
		case OpCreate:
			validateCreateData(c, prefix+".data", op.Data)
		case OpUpdate:
			requireID(c, prefix+".id", op.ID)
			validateChanges(c, prefix+".changes", op.Changes)
		case OpComplete:
			requireID(c, prefix+".id", op.ID)
			checkDate(c, prefix+".completionDate", op.CompletionDate)
		case OpDelete:
			requireID(c, prefix+".id", op.ID)
		case "":
			c.Add(validation.MissingField, prefix+".operation", ecode.FieldIsRequired(prefix+".operation"))
		default:
			c.Add(validation.UnknownOperation, prefix+".operation", ecode.UnknownOperation(string(op.Operation)))
		}

		if op.ParentTempID != "" && !seen[op.ParentTempID] {
			c.Add(validation.InvalidValue, prefix+".parentTempId",
				fmt.Sprintf("%s.parentTempId %q does not refer to an earlier tempId", prefix, op.ParentTempID))
		}
		if op.TempID != "" {
			if seen[op.TempID] {
				c.Add(validation.InvalidValue, prefix+".tempId",
					fmt.Sprintf("%s.tempId %q is used more than once", prefix, op.TempID))
			}
			seen[op.TempID] = true
		}
	}
}

func validateBulkDelete(c *validation.Collector, m *BulkDelete) {
	validateTarget(c, "target", m.Target, true)

	switch n := len(m.IDs); {
	case n == 0:
		c.Add(validation.MissingField, "ids", ecode.FieldIsEmpty("ids"))
		return
	case n > MaxBulkDeleteIDs:
		c.Add(validation.InvalidValue, "ids", ecode.TooMany("ids", n, MaxBulkDeleteIDs))
	}
	for i, id := range m.IDs {
		if strings.TrimSpace(id) == "" {
			field := fmt.Sprintf("ids[%d]", i)
			c.Add(validation.InvalidValue, field, ecode.FieldIsBlank(field))
		}
	}
}
