package formbox

import (
	"fmt"
	"reflect"

	"github.com/Jumpaku/go-formbox/errors"
)

// FieldKind identifies the kind of question a field asks. Only the three
// kinds below are valid; unknown kinds are rejected at form creation and
// never stored.
type FieldKind string

const (
	// KindText is a short free-text answer.
	KindText FieldKind = "text"
	// KindRadio is a single choice among the field's options.
	KindRadio FieldKind = "radio"
	// KindCheckbox is a multiple choice among the field's options.
	KindCheckbox FieldKind = "checkbox"
)

// Field is one question of a form: its kind, prompt, and, for choice kinds,
// the permitted options.
type Field struct {
	Kind     FieldKind `bson:"type" json:"type"`
	Label    string    `bson:"label" json:"label"`
	Options  []string  `bson:"options" json:"options"`
	Required bool      `bson:"required,omitempty" json:"required,omitempty"`
}

// kindSpec is the behavior attached to one field kind. Adding a new kind
// means adding exactly one entry to kindSpecs; everything else dispatches
// through it.
type kindSpec struct {
	wantsOptions bool
	checkAnswer  func(field Field, index int, value any) error
}

var kindSpecs = map[FieldKind]kindSpec{
	KindText: {
		wantsOptions: false,
		checkAnswer:  checkTextAnswer,
	},
	KindRadio: {
		wantsOptions: true,
		checkAnswer:  checkRadioAnswer,
	},
	KindCheckbox: {
		wantsOptions: true,
		checkAnswer:  checkCheckboxAnswer,
	},
}

func checkTextAnswer(field Field, index int, value any) error {
	// Empty text is permitted; required-ness is never enforced.
	if _, ok := value.(string); !ok {
		return errors.NewFieldError(errors.ErrTypeMismatch, index,
			fmt.Sprintf("text answer must be a string, got %T", value))
	}
	return nil
}

func checkRadioAnswer(field Field, index int, value any) error {
	text, ok := value.(string)
	if !ok || !isOption(field, text) {
		return errors.NewFieldError(errors.ErrInvalidOption, index,
			fmt.Sprintf("%v is not one of the field's options", value))
	}
	return nil
}

func checkCheckboxAnswer(field Field, index int, value any) error {
	values, ok := anySlice(value)
	if !ok {
		return errors.NewFieldError(errors.ErrTypeMismatch, index,
			fmt.Sprintf("checkbox answer must be a list, got %T", value))
	}
	// Duplicate selections are permitted.
	for _, v := range values {
		text, ok := v.(string)
		if !ok || !isOption(field, text) {
			return errors.NewFieldError(errors.ErrInvalidOption, index,
				fmt.Sprintf("%v is not one of the field's options", v))
		}
	}
	return nil
}

func isOption(field Field, text string) bool {
	for _, option := range field.Options {
		if option == text {
			return true
		}
	}
	return false
}

// anySlice widens the slice shapes an answer list may arrive in: []any from
// decoded JSON, []string from programmatic construction, or named slice
// types such as bson's primitive.A when a stored response is read back.
func anySlice(value any) (values []any, ok bool) {
	switch v := value.(type) {
	case []any:
		return v, true
	case []string:
		values = make([]any, 0, len(v))
		for _, s := range v {
			values = append(values, s)
		}
		return values, true
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice {
		return nil, false
	}
	values = make([]any, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		values = append(values, rv.Index(i).Interface())
	}
	return values, true
}

// validate checks the field's own structural rules. index is the field's
// position within its form, used only for error reporting.
func (f Field) validate(index int) error {
	spec, known := kindSpecs[f.Kind]
	if !known {
		return errors.NewFieldError(errors.ErrInvalidField, index,
			fmt.Sprintf("unknown field kind %q", string(f.Kind)))
	}
	if f.Label == "" {
		return errors.NewFieldError(errors.ErrInvalidField, index, "label must not be empty")
	}
	if spec.wantsOptions {
		if len(f.Options) == 0 {
			return errors.NewFieldError(errors.ErrInvalidField, index,
				fmt.Sprintf("options required for %s field", string(f.Kind)))
		}
		for i, option := range f.Options {
			if option == "" {
				return errors.NewFieldError(errors.ErrInvalidField, index,
					fmt.Sprintf("option %d must not be empty", i))
			}
		}
	}
	return nil
}

// normalize discards options on kinds that ignore them, so a text field never
// stores a stray option list.
func (f Field) normalize() Field {
	if spec, known := kindSpecs[f.Kind]; known && !spec.wantsOptions {
		f.Options = nil
	}
	return f
}
