// Package encoding converts harness reports and option files to and from bytes.
package encoding

import (
	"encoding/json"
	"fmt"
	"os"
)

// Marshaler turns a value into bytes and back.
type Marshaler interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

// DefaultMarshaler is used wherever a nil Marshaler is passed. Reports and options are compact JSON by default.
var DefaultMarshaler Marshaler = JSON{}

// JSON marshals with encoding/json. A non-empty Prefix or Indent produces indented output.
type JSON struct {
	Prefix string
	Indent string
}

// NewIndentMarshaler returns a JSON marshaler producing indented output, for files people read.
func NewIndentMarshaler(prefix, indent string) Marshaler {
	return JSON{Prefix: prefix, Indent: indent}
}

func (j JSON) Marshal(v any) ([]byte, error) {
	if j.Prefix == "" && j.Indent == "" {
		return json.Marshal(v)
	}
	return json.MarshalIndent(v, j.Prefix, j.Indent)
}

func (j JSON) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// Encode marshals v with m (DefaultMarshaler when nil). Raw bytes are returned as is.
func Encode[T any](v T, m Marshaler) ([]byte, error) {
	switch b := any(v).(type) {
	case []byte:
		return b, nil
	case *[]byte:
		return *b, nil
	}
	return orDefault(m).Marshal(v)
}

// Decode unmarshals data into v with m (DefaultMarshaler when nil). A *[]byte target receives data unchanged.
func Decode[T any](data []byte, v *T, m Marshaler) error {
	if b, ok := any(v).(*[]byte); ok {
		*b = data
		return nil
	}
	return orDefault(m).Unmarshal(data, v)
}

// ReadFile decodes the file at path into v, leaving fields the file does not mention untouched.
func ReadFile[T any](path string, v *T, m Marshaler) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := Decode(data, v, m); err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	return nil
}

// WriteFile encodes v and writes it to path, replacing any existing file.
func WriteFile[T any](path string, v T, m Marshaler) error {
	data, err := Encode(v, m)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return os.WriteFile(path, data, 0o644)
}

func orDefault(m Marshaler) Marshaler {
	if m == nil {
		return DefaultMarshaler
	}
	return m
}
