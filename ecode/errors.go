package ecode

import (
	"fmt"
)

const (
	emptyMsg       = "empty"
	requiredMsg    = "is required"
	invalidMsg     = "is invalid"
	conflictMsg    = "cannot be combined with"
	tooManyMsg     = "exceeds the maximum of"
	unknownMsg     = "is not a known operation"
	formatMsg      = "must match"
	advisoryPrefix = "advisory:"
)

// FieldIsBlank returns field blank message
func FieldIsBlank(k ...string) string {
	if len(k) > 0 {
		return fmt.Sprintf("%s must not be blank", k[0])
	}
	return emptyMsg
}

// FieldIsRequired returns field required message
func FieldIsRequired(k ...string) string {
	if len(k) > 0 {
		return fmt.Sprintf("%s %s", k[0], requiredMsg)
	}
	return requiredMsg
}

// FieldIsEmpty returns field empty message
func FieldIsEmpty(k ...string) string {
	if len(k) > 0 {
		return fmt.Sprintf("%s must not be empty", k[0])
	}
	return emptyMsg
}

// FieldIsInvalid returns field invalid message
func FieldIsInvalid(k ...string) string {
	if len(k) > 0 {
		return fmt.Sprintf("%s %s", k[0], invalidMsg)
	}
	return invalidMsg
}

// FieldNotOneOf returns a message for a value outside an allowed set.
func FieldNotOneOf(k string, value any, allowed []string) string {
	return fmt.Sprintf("%s %v %s, expected one of %v", k, value, invalidMsg, allowed)
}

// FieldBadFormat returns a message for a value that does not match layout.
func FieldBadFormat(k, value, layout string) string {
	return fmt.Sprintf("%s %q %s %s", k, value, formatMsg, layout)
}

// FieldsConflict returns conflicting fields message
func FieldsConflict(a string, b ...string) string {
	return fmt.Sprintf("%s %s %v", a, conflictMsg, b)
}

// TooMany returns a cap exceeded message
func TooMany(k string, n, max int) string {
	return fmt.Sprintf("%s has %d entries and %s %d", k, n, tooManyMsg, max)
}

// UnknownOperation returns unknown operation message
func UnknownOperation(op string) string {
	return fmt.Sprintf("%q %s", op, unknownMsg)
}

// Advisory marks a message as advisory only.
func Advisory(msg string) string {
	return fmt.Sprintf("%s %s", advisoryPrefix, msg)
}
