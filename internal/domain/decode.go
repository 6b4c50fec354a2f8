package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Reasons reported by FieldError.
const (
	ReasonMissing   = "missing"
	ReasonUnknown   = "unknown"
	ReasonDuplicate = "duplicate"
	ReasonNull      = "null"
	ReasonInvalid   = "invalid value"
)

var errNotObject = errors.New("expected a JSON object")

// FieldError reports a schema violation on a single key of a JSON object.
type FieldError struct {
	Object string
	Field  string
	Reason string
	Err    error
}

func (e *FieldError) Error() string {
	msg := fmt.Sprintf("%s: field %q: %s", e.Object, e.Field, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FieldError) Unwrap() error { return e.Err }

type field struct {
	name     string
	dst      any
	optional bool
}

// decodeObject decodes a JSON object into the given fields. Keys match
// exactly unless fold is set, in which case they match case-insensitively
// like encoding/json. Unknown, duplicate and missing required keys are
// rejected; a null optional value leaves the field unset.
func decodeObject(object string, data []byte, fold bool, fields []field) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("%s: %w", object, err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("%s: %w", object, errNotObject)
	}

	seen := make([]bool, len(fields))
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("%s: %w", object, err)
		}
		key, _ := tok.(string)

		i := lookupField(fields, key, fold)
		if i < 0 {
			return &FieldError{Object: object, Field: key, Reason: ReasonUnknown}
		}
		f := fields[i]
		if seen[i] {
			return &FieldError{Object: object, Field: f.name, Reason: ReasonDuplicate}
		}
		seen[i] = true

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("%s: %w", object, err)
		}
		if bytes.Equal(raw, []byte("null")) {
			if f.optional {
				continue
			}
			return &FieldError{Object: object, Field: f.name, Reason: ReasonNull}
		}
		if err := json.Unmarshal(raw, f.dst); err != nil {
			var fe *FieldError
			if errors.As(err, &fe) {
				return err
			}
			return &FieldError{Object: object, Field: f.name, Reason: ReasonInvalid, Err: err}
		}
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("%s: %w", object, err)
	}

	for i, f := range fields {
		if !seen[i] && !f.optional {
			return &FieldError{Object: object, Field: f.name, Reason: ReasonMissing}
		}
	}
	return nil
}

func lookupField(fields []field, key string, fold bool) int {
	for i, f := range fields {
		if f.name == key {
			return i
		}
	}
	if !fold {
		return -1
	}
	for i, f := range fields {
		if strings.EqualFold(f.name, key) {
			return i
		}
	}
	return -1
}
