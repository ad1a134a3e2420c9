package types

// JSON JSON object type
type JSON = map[string]any

// JSONArray JSON array type
type JSONArray = []JSON

// Array array type
type Array = []any

// StringArray String array type
type StringArray = []string
