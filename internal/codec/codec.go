// Package codec converts request payloads and generated output to and from
// the text blobs kept in the request_logs table.
package codec

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
)

// ResultKey is the single key of the stored output container.
const ResultKey = "result"

// ErrNotObject is returned when a payload is valid JSON but not an object.
var ErrNotObject = errors.New("payload must be a JSON object")

func encode(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

// EncodeInputs serializes a raw input payload for storage.
func EncodeInputs(inputs map[string]any) (string, error) {
	if inputs == nil {
		inputs = map[string]any{}
	}
	s, err := encode(inputs)
	if err != nil {
		return "", fmt.Errorf("failed to encode inputs: %w", err)
	}
	return s, nil
}

// DecodeInputs parses a payload into a field mapping. Numbers are kept as
// json.Number so they round-trip verbatim. An empty payload yields an empty map.
func DecodeInputs(data []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return map[string]any{}, nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("failed to decode inputs: %w", err)
	}
	switch m := v.(type) {
	case map[string]any:
		return m, nil
	case nil:
		return map[string]any{}, nil
	default:
		return nil, ErrNotObject
	}
}

// EncodeOutput wraps generated text in the result container.
func EncodeOutput(text string) (string, error) {
	s, err := encode(map[string]string{ResultKey: text})
	if err != nil {
		return "", fmt.Errorf("failed to encode output: %w", err)
	}
	return s, nil
}

// DecodeOutput parses a stored output container.
func DecodeOutput(data string) (map[string]any, error) {
	var out map[string]any
	if err := json.Unmarshal([]byte(data), &out); err != nil {
		return nil, fmt.Errorf("failed to decode output: %w", err)
	}
	if out == nil {
		out = map[string]any{}
	}
	return out, nil
}

// OutputText extracts the generated text from a stored output container.
// A missing or non-string result yields "".
func OutputText(data string) (string, error) {
	out, err := DecodeOutput(data)
	if err != nil {
		return "", err
	}
	text, _ := out[ResultKey].(string)
	return text, nil
}
