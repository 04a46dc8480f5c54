package gql

import (
	"encoding/json"
	"fmt"
	"strings"
)

const (
	typenameValidationError = "InputValidationError"
	typenameGeneralError    = "GeneralError"
)

// Cursor carries at most one paging token. Replacing the whole value with
// only NextCursor or only PrevCursor set is how callers page.
type Cursor struct {
	NextCursor *string `json:"nextCursor,omitempty"`
	PrevCursor *string `json:"prevCursor,omitempty"`
}

func (c Cursor) IsZero() bool {
	return c.NextCursor == nil && c.PrevCursor == nil
}

// Page is the paginated envelope every list query returns.
type Page[T any] struct {
	NextCursor *string `json:"nextCursor"`
	PrevCursor *string `json:"prevCursor"`
	Total      int     `json:"total"`
	Items      []T     `json:"items"`
}

func (p Page[T]) HasNext() bool {
	return p.NextCursor != nil
}

func (p Page[T]) HasPrevious() bool {
	return p.PrevCursor != nil
}

type FieldError struct {
	Field   string `json:"field"`
	Type    string `json:"type"`
	Message string `json:"message"`
}

type ValidationError struct {
	Errors []FieldError `json:"errors"`
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "input validation error"
	}
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return strings.Join(parts, "; ")
}

type GeneralError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *GeneralError) Error() string {
	return fmt.Sprintf("error %d: %s", e.Code, e.Message)
}

// Result is the three-way union the backend wraps every response in.
// Exactly one of Validation, General or Value is set after decoding;
// the zero Result means the server returned null.
type Result[T any] struct {
	Typename   string
	Validation *ValidationError
	General    *GeneralError
	Value      *T
}

func (r *Result[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var probe struct {
		Typename string `json:"__typename"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}
	r.Typename = probe.Typename

	switch probe.Typename {
	case typenameValidationError:
		r.Validation = &ValidationError{}
		return json.Unmarshal(data, r.Validation)
	case typenameGeneralError:
		r.General = &GeneralError{}
		return json.Unmarshal(data, r.General)
	default:
		var value T
		if err := json.Unmarshal(data, &value); err != nil {
			return err
		}
		r.Value = &value
		return nil
	}
}

// OK reports whether the result carries the success variant.
func (r Result[T]) OK() bool {
	return r.Value != nil
}

// Err collapses the two error variants into an error, nil on success.
func (r Result[T]) Err() error {
	switch {
	case r.Validation != nil:
		return r.Validation
	case r.General != nil:
		return r.General
	case r.Value == nil:
		return fmt.Errorf("empty response")
	default:
		return nil
	}
}
