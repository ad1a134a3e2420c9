// Package mutation defines the change requests accepted by the automation
// bridge and validates their structure.
//
// A Mutation is exactly one of Create, Update, Complete, Delete, Batch or
// BulkDelete. Validate returns a validation.Result listing every problem; it
// is data, never an error or a panic:
//
//	res := mutation.Validate(&mutation.Create{
//		Target: mutation.TargetTask,
//		Data:   &mutation.CreateData{Name: ""},
//	})
//	// res.Valid == false, one MISSING_FIELD finding on "data.name"
//
// ValidateRaw accepts the untyped request map directly.
package mutation
