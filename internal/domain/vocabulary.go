package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// VocabularyRef is a user-owned vocabulary as returned by the remote service.
// The record is kept verbatim; only ID and Title are read for display.
type VocabularyRef struct {
	raw json.RawMessage
}

// NewVocabularyRef wraps a raw JSON object
func NewVocabularyRef(raw json.RawMessage) VocabularyRef {
	return VocabularyRef{raw: append(json.RawMessage(nil), raw...)}
}

// Raw returns a copy of the underlying JSON
func (v VocabularyRef) Raw() json.RawMessage {
	return append(json.RawMessage(nil), v.raw...)
}

// ID returns the record's "id" field rendered as a string, or "" when missing
func (v VocabularyRef) ID() string {
	return v.field("id")
}

// Title returns the first of "title" or "name" present in the record
func (v VocabularyRef) Title() string {
	if title := v.field("title"); title != "" {
		return title
	}
	return v.field("name")
}

func (v VocabularyRef) field(key string) string {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(v.raw, &fields); err != nil {
		return ""
	}
	value, ok := fields[key]
	if !ok {
		return ""
	}

	var s string
	if err := json.Unmarshal(value, &s); err == nil {
		return s
	}
	var n json.Number
	dec := json.NewDecoder(bytes.NewReader(value))
	dec.UseNumber()
	if err := dec.Decode(&n); err == nil {
		return n.String()
	}
	return ""
}

// MarshalJSON implements json.Marshaler
func (v VocabularyRef) MarshalJSON() ([]byte, error) {
	if len(v.raw) == 0 {
		return []byte("null"), nil
	}
	return v.Raw(), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (v *VocabularyRef) UnmarshalJSON(data []byte) error {
	if !json.Valid(data) {
		return fmt.Errorf("invalid vocabulary record")
	}
	v.raw = append(json.RawMessage(nil), data...)
	return nil
}
