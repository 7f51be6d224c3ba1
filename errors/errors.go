package errors

import (
	"errors"
	"strconv"
)

var (
	ErrEmptyTitle     = errors.New("empty title")
	ErrNoFields       = errors.New("no fields")
	ErrInvalidField   = errors.New("invalid field")
	ErrUnknownField   = errors.New("unknown field")
	ErrTypeMismatch   = errors.New("type mismatch")
	ErrInvalidOption  = errors.New("invalid option")
	ErrNotFound       = errors.New("not found")
	ErrAlreadyExists  = errors.New("already exists")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrInvalidAccount = errors.New("invalid account")
	ErrStorage        = errors.New("storage error")
	ErrAPIError       = errors.New("api error")
)

type wrapError struct {
	underlying error
	msg        string
	cause      error
}

var _ error = (*wrapError)(nil)

func NewStorageError(msg string, cause error) error {
	return &wrapError{
		underlying: ErrStorage,
		msg:        msg,
		cause:      cause,
	}
}

func NewAPIError(msg string, cause error) error {
	return &wrapError{
		underlying: ErrAPIError,
		msg:        msg,
		cause:      cause,
	}
}

func (err *wrapError) Error() string {
	if err == nil {
		return "(*wrapError)(nil)"
	}
	message := err.underlying.Error() + ": " + err.msg
	if err.cause != nil {
		message += ": " + err.cause.Error()
	}
	return message
}

func (err *wrapError) Unwrap() []error {
	if err.cause == nil {
		return []error{err.underlying}
	}
	return []error{err.underlying, err.cause}
}

// FieldError reports a schema or validation failure at a specific field
// position. Index is the zero-based position within the form's field
// sequence; it is -1 when the failure is not attributable to a position,
// such as an answer key that does not parse as a position at all.
type FieldError struct {
	underlying error
	Index      int
	msg        string
}

var _ error = (*FieldError)(nil)

func NewFieldError(underlying error, index int, msg string) error {
	return &FieldError{
		underlying: underlying,
		Index:      index,
		msg:        msg,
	}
}

func (err *FieldError) Error() string {
	if err == nil {
		return "(*FieldError)(nil)"
	}
	message := err.underlying.Error()
	if err.Index >= 0 {
		message += ": field " + strconv.Itoa(err.Index)
	}
	if err.msg != "" {
		message += ": " + err.msg
	}
	return message
}

func (err *FieldError) Unwrap() error {
	return err.underlying
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// FieldIndex returns the field position carried by err if it is or wraps a
// FieldError.
func FieldIndex(err error) (index int, ok bool) {
	var fieldErr *FieldError
	if errors.As(err, &fieldErr) {
		return fieldErr.Index, true
	}
	return 0, false
}
