package model

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// ResponseMap is a string-to-string mapping that remembers insertion
// order. Intake responses arrive as a JSON object of question-key to
// answer-text; iteration order must be reproducible so that derived
// values (like the concatenated answer text) are stable across loads.
type ResponseMap struct {
	keys   []string
	values map[string]string
}

func NewResponseMap() ResponseMap {
	return ResponseMap{values: make(map[string]string)}
}

// Set adds or replaces an entry. New keys append to the iteration order.
func (m *ResponseMap) Set(key, value string) {
	if m.values == nil {
		m.values = make(map[string]string)
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

func (m *ResponseMap) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *ResponseMap) Len() int {
	return len(m.keys)
}

// Keys returns the question keys in insertion order.
func (m *ResponseMap) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Values returns the answers in insertion order.
func (m *ResponseMap) Values() []string {
	out := make([]string, 0, len(m.keys))
	for _, k := range m.keys {
		out = append(out, m.values[k])
	}
	return out
}

func (m ResponseMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(m.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (m *ResponseMap) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("responses: expected JSON object, got %v", tok)
	}

	m.keys = nil
	m.values = make(map[string]string)

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("responses: non-string key %v", keyTok)
		}

		var value string
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("responses: value for %q must be a string: %w", key, err)
		}
		m.Set(key, value)
	}

	// Consume closing brace
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

// Value implements driver.Valuer so the map persists as JSONB.
func (m ResponseMap) Value() (driver.Value, error) {
	b, err := m.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Scan implements sql.Scanner.
func (m *ResponseMap) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*m = NewResponseMap()
		return nil
	case []byte:
		return m.UnmarshalJSON(v)
	case string:
		return m.UnmarshalJSON([]byte(v))
	default:
		return fmt.Errorf("responses: cannot scan %T", src)
	}
}
