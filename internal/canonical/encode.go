package canonical

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Encode marshals value without HTML escaping so markup characters in labels
// and descriptions survive verbatim. The trailing newline added by
// json.Encoder is removed.
func Encode(value any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(value); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Array joins pre-encoded elements into a JSON array. A nil or empty slice
// yields "[]" so structural collections are never emitted as null.
func Array(elements [][]byte) []byte {
	if len(elements) == 0 {
		return []byte("[]")
	}
	size := 2 + len(elements) - 1
	for _, element := range elements {
		size += len(element)
	}
	buf := make([]byte, 0, size)
	buf = append(buf, '[')
	for i, element := range elements {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, element...)
	}
	return append(buf, ']')
}

// Indent re-formats compact canonical output. Key order is preserved because
// json.Indent never reorders members.
func Indent(compact []byte, prefix, indent string) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, prefix, indent); err != nil {
		return nil, fmt.Errorf("canonical: indent: %w", err)
	}
	return buf.Bytes(), nil
}
