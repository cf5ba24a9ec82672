package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList is a list-valued attribute stored as a JSON array of strings
// in a TEXT column. The encoding is a serialization contract: order is
// preserved and an empty list round-trips as "[]".
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("err encoding string list: %w", err)
	}
	return string(b), nil
}

func (l *StringList) Scan(src interface{}) error {
	var b []byte
	switch v := src.(type) {
	case nil:
		*l = StringList{}
		return nil
	case string:
		b = []byte(v)
	case []byte:
		b = v
	default:
		return fmt.Errorf("cannot scan %T into StringList", src)
	}
	if len(b) == 0 {
		*l = StringList{}
		return nil
	}
	if err := json.Unmarshal(b, l); err != nil {
		return fmt.Errorf("err decoding string list: %w", err)
	}
	return nil
}

// ValidationError reports a malformed or missing field in a request payload.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid field %q: %s", e.Field, e.Reason)
}
