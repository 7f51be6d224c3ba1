// Package formbox models user-designed forms with typed fields and the
// responses submitted against them.
//
// A form's fields are position-addressed: answers reference fields by their
// zero-based index within Fields, not by a stable ID. That index is the join
// key between a Form and its Responses, which is why a form is immutable
// once created - no operation in this module edits a persisted form's field
// order, and none may be added without migrating the keys of existing
// responses.
package formbox

import (
	"time"

	"github.com/Jumpaku/go-formbox/errors"
)

// FormID identifies a persisted form. Assigned by the store.
type FormID string

// UserID identifies a registered user. Assigned by the store.
type UserID string

// Form is a named, ordered collection of fields representing one form.
type Form struct {
	ID          FormID    `bson:"_id,omitempty" json:"id,omitempty"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Fields      []Field   `bson:"fields" json:"fields"`
	CreatedBy   UserID    `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

// NewForm validates title and fields and returns a form ready for insertion.
// Fields are checked in order and the first violation wins, so the reported
// field index is deterministic. The returned form has no ID and no creation
// time; the store assigns both.
func NewForm(title, description string, fields []Field) (form Form, err error) {
	if title == "" {
		return Form{}, errors.ErrEmptyTitle
	}
	if len(fields) == 0 {
		return Form{}, errors.ErrNoFields
	}
	normalized := make([]Field, 0, len(fields))
	for i, field := range fields {
		if err := field.validate(i); err != nil {
			return Form{}, err
		}
		normalized = append(normalized, field.normalize())
	}
	return Form{
		Title:       title,
		Description: description,
		Fields:      normalized,
	}, nil
}
