package resp

import (
	"encoding/json"
	"maps"
	"time"

	"github.com/ncobase/taskbridge/ecode"
)

// TimestampLayout is the ISO-8601 layout used in envelope metadata.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Reserved metadata keys. Extensions cannot override them.
const (
	keyOperation = "operation"
	keyTimestamp = "timestamp"
	keyFromCache = "from_cache"
)

// ErrorInfo describes a failed operation.
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// Metadata is attached to every envelope. Extensions are flattened next to
// the fixed keys when encoded.
type Metadata struct {
	Operation  string
	Timestamp  string
	FromCache  bool
	Extensions map[string]any
}

// MarshalJSON flattens Extensions into the metadata object.
func (m Metadata) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(m.Extensions)+3)
	maps.Copy(out, m.Extensions)
	out[keyOperation] = m.Operation
	out[keyTimestamp] = m.Timestamp
	out[keyFromCache] = m.FromCache
	return json.Marshal(out)
}

// UnmarshalJSON splits the fixed keys from extension keys.
func (m *Metadata) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*m = Metadata{}
	if v, ok := raw[keyOperation].(string); ok {
		m.Operation = v
	}
	if v, ok := raw[keyTimestamp].(string); ok {
		m.Timestamp = v
	}
	if v, ok := raw[keyFromCache].(bool); ok {
		m.FromCache = v
	}
	for k, v := range raw {
		if isReserved(k) {
			continue
		}
		if m.Extensions == nil {
			m.Extensions = make(map[string]any)
		}
		m.Extensions[k] = v
	}
	return nil
}

func isReserved(k string) bool {
	return k == keyOperation || k == keyTimestamp || k == keyFromCache
}

// Envelope is the caller-facing result of an operation.
type Envelope[T any] struct {
	Success  bool       `json:"success"`
	Data     *T         `json:"data,omitempty"`
	Error    *ErrorInfo `json:"error,omitempty"`
	Metadata Metadata   `json:"metadata"`
}

// Option adjusts envelope metadata.
type Option func(*Metadata)

// WithTimestamp sets the metadata timestamp instead of the current time.
func WithTimestamp(t time.Time) Option {
	return func(m *Metadata) {
		m.Timestamp = t.UTC().Format(TimestampLayout)
	}
}

// Cached marks the payload as served from a cache.
func Cached() Option {
	return func(m *Metadata) {
		m.FromCache = true
	}
}

// WithExtensions merges ext into the metadata. Reserved keys are ignored.
func WithExtensions(ext map[string]any) Option {
	return func(m *Metadata) {
		for k, v := range ext {
			if isReserved(k) {
				continue
			}
			if m.Extensions == nil {
				m.Extensions = make(map[string]any, len(ext))
			}
			m.Extensions[k] = v
		}
	}
}

// newMetadata builds metadata for operation.
func newMetadata(operation string, opts []Option) Metadata {
	m := Metadata{Operation: operation}
	for _, opt := range opts {
		opt(&m)
	}
	if m.Timestamp == "" {
		m.Timestamp = time.Now().UTC().Format(TimestampLayout)
	}
	return m
}

// BuildSuccess wraps data in a successful envelope.
func BuildSuccess[T any](operation string, data T, opts ...Option) Envelope[T] {
	return Envelope[T]{
		Success:  true,
		Data:     &data,
		Metadata: newMetadata(operation, opts),
	}
}

// BuildError returns a failed envelope. An empty message falls back to the
// default text of code.
func BuildError[T any](operation, code, message string, details any, opts ...Option) Envelope[T] {
	if code == "" {
		code = ecode.InternalErr
	}
	if message == "" {
		message = ecode.Text(code)
	}
	return Envelope[T]{
		Success: false,
		Error: &ErrorInfo{
			Code:    code,
			Message: message,
			Details: details,
		},
		Metadata: newMetadata(operation, opts),
	}
}
