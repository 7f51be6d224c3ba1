package errors_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	. "github.com/Jumpaku/go-formbox/errors"
)

func TestErrVars_IsAndMessage(t *testing.T) {
	cases := []struct {
		name string
		err  error
		msg  string
	}{
		{"ErrEmptyTitle", ErrEmptyTitle, "empty title"},
		{"ErrNoFields", ErrNoFields, "no fields"},
		{"ErrInvalidField", ErrInvalidField, "invalid field"},
		{"ErrUnknownField", ErrUnknownField, "unknown field"},
		{"ErrTypeMismatch", ErrTypeMismatch, "type mismatch"},
		{"ErrInvalidOption", ErrInvalidOption, "invalid option"},
		{"ErrNotFound", ErrNotFound, "not found"},
		{"ErrAlreadyExists", ErrAlreadyExists, "already exists"},
		{"ErrUnauthorized", ErrUnauthorized, "unauthorized"},
		{"ErrInvalidAccount", ErrInvalidAccount, "invalid account"},
		{"ErrStorage", ErrStorage, "storage error"},
		{"ErrStorage2", NewStorageError("", fmt.Errorf("")), "storage error"},
		{"ErrAPIError", ErrAPIError, "api error"},
		{"ErrAPIError2", NewAPIError("", fmt.Errorf("")), "api error"},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name+"/IsWrapped", func(t *testing.T) {
			wrapped := fmt.Errorf("higher: %w", c.err)
			if !errors.Is(wrapped, c.err) {
				t.Fatalf("errors.Is(wrapped, %s) = false, want true", c.name)
			}
		})

		t.Run(c.name+"/Message", func(t *testing.T) {
			wrapped := fmt.Errorf("higher: %w", c.err)
			if !strings.Contains(wrapped.Error(), c.msg) {
				t.Fatalf("%s.Error() = %q does not contain %q", c.name, wrapped.Error(), c.msg)
			}
		})
	}
}

func TestFieldError(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		underlying error
		index      int
		contains   []string
	}{
		{
			name:       "invalid-field-at-2",
			err:        NewFieldError(ErrInvalidField, 2, "options required for radio field"),
			underlying: ErrInvalidField,
			index:      2,
			contains:   []string{"invalid field", "field 2", "options required"},
		},
		{
			name:       "invalid-option-at-1",
			err:        NewFieldError(ErrInvalidOption, 1, `"green" is not an option`),
			underlying: ErrInvalidOption,
			index:      1,
			contains:   []string{"invalid option", "field 1", `"green"`},
		},
		{
			name:       "unknown-field-no-index",
			err:        NewFieldError(ErrUnknownField, -1, `answer key "x" is not a field position`),
			underlying: ErrUnknownField,
			index:      -1,
			contains:   []string{"unknown field", `"x"`},
		},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name+"/Is", func(t *testing.T) {
			wrapped := fmt.Errorf("higher: %w", c.err)
			if !errors.Is(wrapped, c.underlying) {
				t.Fatalf("errors.Is(wrapped, underlying) = false, want true")
			}
		})

		t.Run(c.name+"/Index", func(t *testing.T) {
			wrapped := fmt.Errorf("higher: %w", c.err)
			index, ok := FieldIndex(wrapped)
			if !ok {
				t.Fatalf("FieldIndex(wrapped) not ok, want ok")
			}
			if index != c.index {
				t.Fatalf("FieldIndex(wrapped) = %d, want %d", index, c.index)
			}
		})

		t.Run(c.name+"/Message", func(t *testing.T) {
			for _, want := range c.contains {
				if !strings.Contains(c.err.Error(), want) {
					t.Fatalf("Error() = %q does not contain %q", c.err.Error(), want)
				}
			}
		})
	}
}

func TestFieldIndex_NotAFieldError(t *testing.T) {
	if _, ok := FieldIndex(ErrNotFound); ok {
		t.Fatalf("FieldIndex(ErrNotFound) ok, want not ok")
	}
	if _, ok := FieldIndex(nil); ok {
		t.Fatalf("FieldIndex(nil) ok, want not ok")
	}
}
