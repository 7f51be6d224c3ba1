// Package store persists forms, responses, and users. Every operation is a
// single-document read or write; the store's own atomicity for those is the
// only consistency machinery this module relies on.
package store

import (
	"context"

	formbox "github.com/Jumpaku/go-formbox"
)

// Store is the persistence surface shared by the Mongo and Memory
// implementations.
//
// Insert operations assign the record's identity and timestamp and return
// the stored record. ListForms orders by creation time descending;
// ListResponses orders by submission time descending and returns an empty
// slice, not an error, for a form without responses. Lookups that find
// nothing fail with errors.ErrNotFound; inserting a user with a taken email
// fails with errors.ErrAlreadyExists; infrastructure failures wrap
// errors.ErrStorage.
type Store interface {
	InsertForm(ctx context.Context, form formbox.Form) (formbox.Form, error)
	FindForm(ctx context.Context, id formbox.FormID) (formbox.Form, error)
	ListForms(ctx context.Context) ([]formbox.Form, error)

	InsertResponse(ctx context.Context, response formbox.Response) (formbox.Response, error)
	ListResponses(ctx context.Context, formID formbox.FormID) ([]formbox.Response, error)

	InsertUser(ctx context.Context, user formbox.User) (formbox.User, error)
	FindUserByEmail(ctx context.Context, email string) (formbox.User, error)
}
