// Package formboxmust wraps formbox constructors with panic-based error
// handling, for examples and test fixtures where a construction failure is a
// programming error.
package formboxmust

import (
	formbox "github.com/Jumpaku/go-formbox"
)

// Form builds a validated form.
//
// It panics if the title or any field violates the schema rules.
func Form(title, description string, fields ...formbox.Field) formbox.Form {
	return must1(formbox.NewForm(title, description, fields))
}

// Response builds a validated response against form.
//
// It panics if any answer violates the form's field types.
func Response(form formbox.Form, answers map[string]any) formbox.Response {
	return must1(formbox.NewResponse(form, answers))
}
