// Package sharecode converts a task list to and from a URL-safe share code.
//
// A share code is the JSON array of {text, completed, createdDate} records,
// base64url-encoded without padding. Stable IDs are local to a list and are
// not part of the code; importing assigns fresh ones.
package sharecode

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/runoshun/tasklist/internal/domain"
)

// payloadSchema describes the accepted share payload shape.
const payloadSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["text"],
    "properties": {
      "text":        {"type": "string", "pattern": "\\S"},
      "completed":   {"type": ["boolean", "null"]},
      "createdDate": {"type": ["string", "null"]}
    }
  }
}`

// sharedTask is the wire form of one task.
type sharedTask struct {
	Completed   *bool   `json:"completed,omitempty"`
	CreatedDate *string `json:"createdDate,omitempty"`
	Text        string  `json:"text"`
}

// Codec implements domain.ShareCodec.
type Codec struct {
	schema *jsonschema.Schema
}

// New creates a Codec with the payload schema compiled.
func New() *Codec {
	return &Codec{
		schema: jsonschema.MustCompileString("tasklist-share.json", payloadSchema),
	}
}

// Encode serializes tasks into a share code.
func (c *Codec) Encode(tasks []domain.Task) (string, error) {
	wire := make([]sharedTask, 0, len(tasks))
	for _, t := range tasks {
		completed := t.Completed
		createdDate := t.CreatedDate
		wire = append(wire, sharedTask{
			Text:        t.Text,
			Completed:   &completed,
			CreatedDate: &createdDate,
		})
	}
	content, err := json.Marshal(wire)
	if err != nil {
		return "", fmt.Errorf("marshal share payload: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(content), nil
}

// Decode reverses Encode, validates the payload shape and applies the
// defaulting policy: a missing completed flag is false, and a missing or
// empty createdDate becomes today.
func (c *Codec) Decode(token, today string) ([]domain.Task, error) {
	content, err := decodeToken(token)
	if err != nil {
		return nil, err
	}

	var raw any
	dec := json.NewDecoder(bytes.NewReader(content))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrParse, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: unexpected data after JSON value", domain.ErrParse)
	}

	if err := c.schema.Validate(raw); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, describeSchemaError(err))
	}

	return recordsFromValue(raw, today)
}

// recordsFromValue builds tasks from the schema-validated value. Keys are
// matched exactly, the same way the schema matched them.
func recordsFromValue(raw any, today string) ([]domain.Task, error) {
	items, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: payload is not an array", domain.ErrValidation)
	}

	tasks := make([]domain.Task, 0, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: /%d: not an object", domain.ErrValidation, i)
		}
		text, _ := obj["text"].(string)
		if strings.TrimSpace(text) == "" {
			return nil, fmt.Errorf("%w: /%d/text: blank task text", domain.ErrValidation, i)
		}
		t := domain.Task{
			Text:        text,
			CreatedDate: today,
		}
		if completed, ok := obj["completed"].(bool); ok {
			t.Completed = completed
		}
		if created, ok := obj["createdDate"].(string); ok && created != "" {
			t.CreatedDate = created
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// decodeToken reverses the base64url transform. Whitespace from wrapped
// pastes is dropped; padding and the standard alphabet are accepted for
// codes produced by other encoders.
func decodeToken(token string) ([]byte, error) {
	token = strings.Join(strings.Fields(token), "")
	if token == "" {
		return nil, fmt.Errorf("%w: empty share code", domain.ErrDecode)
	}

	normalized := strings.TrimRight(token, "=")
	normalized = strings.NewReplacer("+", "-", "/", "_").Replace(normalized)

	content, err := base64.RawURLEncoding.DecodeString(normalized)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDecode, err)
	}
	if !utf8.Valid(content) {
		return nil, fmt.Errorf("%w: decoded data is not UTF-8 text", domain.ErrDecode)
	}
	return content, nil
}

// describeSchemaError returns the first leaf cause of a schema validation error.
func describeSchemaError(err error) string {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return err.Error()
	}
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	location := ve.InstanceLocation
	if location == "" {
		location = "/"
	}
	return fmt.Sprintf("%s: %s", location, ve.Message)
}

// Ensure Codec implements ShareCodec.
var _ domain.ShareCodec = (*Codec)(nil)
