package filter

import "github.com/ncobase/taskbridge/types"

// Normalize returns the canonical form of spec:
//   - IncludeCompleted is erased, and copied into Completed only when
//     Completed is not set explicitly;
//   - non-empty Tags without an operator default to AND;
//   - Text without an operator defaults to CONTAINS.
//
// Normalize is pure and idempotent: Normalize(Normalize(s).Spec()) has the
// same fields as Normalize(s).
func Normalize(spec Specification) Normalized {
	f := spec.Fields.clone()

	if spec.IncludeCompleted != nil && f.Completed == nil {
		f.Completed = types.ClonePointer(spec.IncludeCompleted)
	}
	if len(f.Tags) > 0 && f.TagsOperator == "" {
		f.TagsOperator = TagsAnd
	}
	if f.Text != "" && f.TextOperator == "" {
		f.TextOperator = TextContains
	}

	return Normalized{fields: f, sealed: true}
}

// Parse decodes raw, reports its unknown property names and normalizes it.
// Unknown properties are advisory; the caller decides whether they are fatal.
func Parse(raw map[string]any) (Normalized, []string, error) {
	unknown := ValidateProperties(raw)
	spec, err := Decode(raw)
	if err != nil {
		return Normalized{}, unknown, err
	}
	return Normalize(spec), unknown, nil
}
