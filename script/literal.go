package script

import (
	"encoding/json"
	"fmt"
)

// Literal encodes v as a JSON literal, which is also a valid script literal.
// Every caller-influenced value spliced into generated text goes through
// Literal so quotes, backslashes and line separators stay inside the literal.
// Invalid UTF-8 is replaced with U+FFFD, so such text does not round-trip.
func Literal(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		// Only strings, string lists, numbers and booleans are spliced.
		panic(fmt.Sprintf("script: cannot encode literal %T: %v", v, err))
	}
	return string(data)
}
