package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidMetadata is returned when a metadata payload is not valid JSON.
var ErrInvalidMetadata = errors.New("metadata must be valid JSON")

// Metadata is an opaque JSON document attached to contacts and payment options.
type Metadata json.RawMessage

// ParseMetadata round-trips raw through encoding/json and returns the compacted
// document.
func ParseMetadata(raw string) (Metadata, error) {
	var doc any
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMetadata, err)
	}
	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMetadata, err)
	}
	return Metadata(out), nil
}

func (m Metadata) String() string {
	if len(m) == 0 {
		return "null"
	}
	return string(m)
}

func (m Metadata) Value() (driver.Value, error) {
	if len(m) == 0 {
		return nil, nil
	}
	return string(m), nil
}

func (m *Metadata) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*m = nil
	case []byte:
		*m = Metadata(bytes.Clone(v))
	case string:
		*m = Metadata(v)
	default:
		return fmt.Errorf("unsupported metadata column type %T", value)
	}
	return nil
}

func (m Metadata) MarshalJSON() ([]byte, error) {
	if len(m) == 0 {
		return []byte("null"), nil
	}
	return m, nil
}

func (m *Metadata) UnmarshalJSON(data []byte) error {
	*m = Metadata(bytes.Clone(data))
	return nil
}
