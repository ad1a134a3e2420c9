package mutation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/ncobase/taskbridge/types"
)

var (
	// ErrMissingOperation is returned when the operation tag is absent.
	ErrMissingOperation = errors.New("mutation: operation is required")
	// ErrUnknownOperation is returned for an operation tag outside the known set.
	ErrUnknownOperation = errors.New("mutation: unknown operation")
)

// newVariant returns an empty variant for op.
func newVariant(op Operation) (Mutation, bool) {
	switch op {
	case OpCreate:
		return &Create{}, true
	case OpUpdate:
		return &Update{}, true
	case OpComplete:
		return &Complete{}, true
	case OpDelete:
		return &Delete{}, true
	case OpBatch:
		return &Batch{}, true
	case OpBulkDelete:
		return &BulkDelete{}, true
	}
	return nil, false
}

// OperationOf reads the operation tag of raw.
func OperationOf(raw map[string]any) (Operation, error) {
	v, ok := raw["operation"]
	if !ok || v == nil {
		return "", ErrMissingOperation
	}
	s, ok := types.AsString(v)
	if !ok {
		return "", fmt.Errorf("%w: %v", ErrUnknownOperation, v)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrMissingOperation
	}
	return Operation(s), nil
}

// Decode converts caller input into the Mutation variant named by its
// "operation" key. Payload keys use the JSON field names.
func Decode(raw map[string]any) (Mutation, error) {
	op, err := OperationOf(raw)
	if err != nil {
		return nil, err
	}
	m, ok := newVariant(op)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, op)
	}

	payload := make(map[string]any, len(raw))
	for k, v := range raw {
		if k != "operation" {
			payload[k] = v
		}
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           m,
		TagName:          "json",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(payload); err != nil {
		return nil, fmt.Errorf("decode %s mutation: %w", op, err)
	}
	return m, nil
}
