// Package ecode defines the error codes carried in response envelopes and the
// message helpers used to phrase validation findings.
//
// Envelope codes are strings so they survive JSON round trips unchanged:
//
//	ecode.ValidationErr   // "VALIDATION_ERROR"
//	ecode.ScriptErr       // "SCRIPT_ERROR"
//	ecode.UnexpectedShape // "UNEXPECTED_SHAPE"
//
// Default messages:
//
//	msg := ecode.Text(ecode.ScriptErr)
//	// "Automation script reported an error"
//
// Message helpers keep validation wording consistent across validators:
//
//	ecode.FieldIsRequired("data.name")      // "data.name is required"
//	ecode.TooMany("operations", 101, 100)   // "operations has 101 entries and exceeds the maximum of 100"
package ecode
