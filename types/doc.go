// Package types provides the generic value helpers shared by the contract
// packages: JSON aliases, pointer helpers and loose value coercion for data
// that arrives untyped from callers or from the automation bridge.
//
// # Type Aliases
//
//	type JSON = map[string]any    // Generic JSON object
//	type JSONArray = []JSON       // Array of JSON objects
//	type StringArray = []string   // String slice
//
// # Raw values
//
//	v, err := types.ParseJSON(`{"tasks":[]}`)
//	m, ok := types.AsJSON(v)
//	if ok && types.IsArray(m["tasks"]) { ... }
package types
