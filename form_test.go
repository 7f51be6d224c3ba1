package formbox_test

import (
	"errors"
	"reflect"
	"testing"

	formbox "github.com/Jumpaku/go-formbox"
	errs "github.com/Jumpaku/go-formbox/errors"
)

func validFields() []formbox.Field {
	return []formbox.Field{
		{Kind: formbox.KindText, Label: "Name"},
		{Kind: formbox.KindRadio, Label: "Color", Options: []string{"red", "blue"}},
		{Kind: formbox.KindCheckbox, Label: "Toppings", Options: []string{"cheese", "olives", "ham"}},
	}
}

func TestNewForm_Valid(t *testing.T) {
	fields := validFields()
	form, err := formbox.NewForm("Pizza order", "weekly order", fields)
	if err != nil {
		t.Fatalf("NewForm() error = %v, want nil", err)
	}
	if form.Title != "Pizza order" || form.Description != "weekly order" {
		t.Fatalf("NewForm() = %+v, want title and description preserved", form)
	}
	if !reflect.DeepEqual(form.Fields, fields) {
		t.Fatalf("NewForm().Fields = %#v, want input order preserved %#v", form.Fields, fields)
	}
	if form.ID != "" || !form.CreatedAt.IsZero() {
		t.Fatalf("NewForm() assigned identity %q / time %v, want store-assigned", form.ID, form.CreatedAt)
	}
}

func TestNewForm_DropsOptionsOnTextFields(t *testing.T) {
	form, err := formbox.NewForm("t", "", []formbox.Field{
		{Kind: formbox.KindText, Label: "Name", Options: []string{"stray"}},
	})
	if err != nil {
		t.Fatalf("NewForm() error = %v, want nil", err)
	}
	if len(form.Fields[0].Options) != 0 {
		t.Fatalf("text field options = %v, want empty", form.Fields[0].Options)
	}
}

func TestNewForm_Invalid(t *testing.T) {
	cases := []struct {
		name      string
		title     string
		fields    []formbox.Field
		wantErr   error
		wantIndex int
	}{
		{
			name:      "empty-title",
			title:     "",
			fields:    validFields(),
			wantErr:   errs.ErrEmptyTitle,
			wantIndex: -1,
		},
		{
			name:      "no-fields",
			title:     "t",
			fields:    nil,
			wantErr:   errs.ErrNoFields,
			wantIndex: -1,
		},
		{
			name:  "radio-without-options",
			title: "t",
			fields: []formbox.Field{
				{Kind: formbox.KindText, Label: "Name"},
				{Kind: formbox.KindRadio, Label: "Color"},
			},
			wantErr:   errs.ErrInvalidField,
			wantIndex: 1,
		},
		{
			name:  "checkbox-without-options",
			title: "t",
			fields: []formbox.Field{
				{Kind: formbox.KindCheckbox, Label: "Toppings"},
			},
			wantErr:   errs.ErrInvalidField,
			wantIndex: 0,
		},
		{
			name:  "empty-option",
			title: "t",
			fields: []formbox.Field{
				{Kind: formbox.KindRadio, Label: "Color", Options: []string{"red", ""}},
			},
			wantErr:   errs.ErrInvalidField,
			wantIndex: 0,
		},
		{
			name:  "empty-label",
			title: "t",
			fields: []formbox.Field{
				{Kind: formbox.KindText, Label: "Name"},
				{Kind: formbox.KindText, Label: ""},
			},
			wantErr:   errs.ErrInvalidField,
			wantIndex: 1,
		},
		{
			name:  "unknown-kind",
			title: "t",
			fields: []formbox.Field{
				{Kind: formbox.FieldKind("dropdown"), Label: "Size", Options: []string{"S", "M"}},
			},
			wantErr:   errs.ErrInvalidField,
			wantIndex: 0,
		},
		{
			name:  "first-violation-wins",
			title: "t",
			fields: []formbox.Field{
				{Kind: formbox.KindRadio, Label: "Color"},
				{Kind: formbox.KindRadio, Label: "Shape"},
			},
			wantErr:   errs.ErrInvalidField,
			wantIndex: 0,
		},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			_, err := formbox.NewForm(c.title, "", c.fields)
			if !errors.Is(err, c.wantErr) {
				t.Fatalf("NewForm() error = %v, want %v", err, c.wantErr)
			}
			if c.wantIndex >= 0 {
				index, ok := errs.FieldIndex(err)
				if !ok || index != c.wantIndex {
					t.Fatalf("FieldIndex() = %d, %v, want %d, true", index, ok, c.wantIndex)
				}
			}
		})
	}
}
