package validation

// Code is the closed set of validation error kinds.
type Code string

const (
	MissingField      Code = "MISSING_FIELD"
	InvalidValue      Code = "INVALID_VALUE"
	ConflictingFields Code = "CONFLICTING_FIELDS"
	UnknownOperation  Code = "UNKNOWN_OPERATION"
)

// Error is a single validation finding. It is data, not a Go error.
type Error struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
	// Advisory findings are reported but do not make a result invalid.
	Advisory bool `json:"advisory,omitempty"`
}

// Result is the outcome of validating a request payload.
type Result struct {
	Valid  bool    `json:"valid"`
	Errors []Error `json:"errors"`
}

// Collector accumulates findings in order. The zero value is ready to use.
type Collector struct {
	errs []Error
}

// Add appends a finding.
func (c *Collector) Add(code Code, field, message string) {
	c.errs = append(c.errs, Error{Code: code, Field: field, Message: message})
}

// Advise appends an advisory finding.
func (c *Collector) Advise(code Code, field, message string) {
	c.errs = append(c.errs, Error{Code: code, Field: field, Message: message, Advisory: true})
}

// Merge appends findings produced elsewhere.
func (c *Collector) Merge(errs ...Error) {
	c.errs = append(c.errs, errs...)
}

// Len returns the number of findings so far.
func (c *Collector) Len() int { return len(c.errs) }

// Result freezes the collected findings.
func (c *Collector) Result() Result {
	errs := make([]Error, len(c.errs))
	copy(errs, c.errs)
	return Result{Valid: !hasBlocking(errs), Errors: errs}
}

func hasBlocking(errs []Error) bool {
	for _, e := range errs {
		if !e.Advisory {
			return true
		}
	}
	return false
}

// Codes returns the codes of r's findings in order.
func (r Result) Codes() []Code {
	codes := make([]Code, len(r.Errors))
	for i, e := range r.Errors {
		codes[i] = e.Code
	}
	return codes
}

// Find returns the first finding on field, if any.
func (r Result) Find(field string) (Error, bool) {
	for _, e := range r.Errors {
		if e.Field == field {
			return e, true
		}
	}
	return Error{}, false
}

// Prefix returns errs with every field rooted under prefix.
func Prefix(prefix string, errs []Error) []Error {
	out := make([]Error, len(errs))
	for i, e := range errs {
		if e.Field == "" {
			e.Field = prefix
		} else if prefix != "" {
			e.Field = prefix + "." + e.Field
		}
		out[i] = e
	}
	return out
}
