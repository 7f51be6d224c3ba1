package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	formbox "github.com/Jumpaku/go-formbox"
	"github.com/Jumpaku/go-formbox/errors"
	"github.com/google/uuid"
)

// Memory is an in-memory Store with the same ordering and error contract as
// Mongo. Used by tests and the example.
type Memory struct {
	mu        sync.RWMutex
	now       func() time.Time
	forms     []formbox.Form
	responses []formbox.Response
	users     []formbox.User
}

var _ Store = (*Memory)(nil)

// NewMemory creates an empty Memory store.
func NewMemory() *Memory {
	return &Memory{now: func() time.Time { return time.Now().UTC() }}
}

// NewMemoryAt creates a Memory store whose record timestamps come from now.
// Lets tests control creation and submission times.
func NewMemoryAt(now func() time.Time) *Memory {
	return &Memory{now: now}
}

func (s *Memory) InsertForm(ctx context.Context, form formbox.Form) (stored formbox.Form, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	form.ID = formbox.FormID(uuid.NewString())
	form.CreatedAt = s.now()
	s.forms = append(s.forms, form)
	return form, nil
}

func (s *Memory) FindForm(ctx context.Context, id formbox.FormID) (form formbox.Form, err error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, form := range s.forms {
		if form.ID == id {
			return form, nil
		}
	}
	return formbox.Form{}, fmt.Errorf("form not found: %s: %w", id, errors.ErrNotFound)
}

func (s *Memory) ListForms(ctx context.Context) (forms []formbox.Form, err error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	// Reverse insertion order first so equal timestamps still list the
	// newest insert first, like a descending index scan.
	forms = make([]formbox.Form, 0, len(s.forms))
	for i := len(s.forms) - 1; i >= 0; i-- {
		forms = append(forms, s.forms[i])
	}
	sort.SliceStable(forms, func(a, b int) bool {
		return forms[a].CreatedAt.After(forms[b].CreatedAt)
	})
	return forms, nil
}

func (s *Memory) InsertResponse(ctx context.Context, response formbox.Response) (stored formbox.Response, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	response.ID = formbox.ResponseID(uuid.NewString())
	response.SubmittedAt = s.now()
	s.responses = append(s.responses, response)
	return response, nil
}

func (s *Memory) ListResponses(ctx context.Context, formID formbox.FormID) (responses []formbox.Response, err error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	responses = []formbox.Response{}
	for i := len(s.responses) - 1; i >= 0; i-- {
		if s.responses[i].FormID == formID {
			responses = append(responses, s.responses[i])
		}
	}
	sort.SliceStable(responses, func(a, b int) bool {
		return responses[a].SubmittedAt.After(responses[b].SubmittedAt)
	})
	return responses, nil
}

func (s *Memory) InsertUser(ctx context.Context, user formbox.User) (stored formbox.User, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == user.Email {
			return formbox.User{}, fmt.Errorf("email taken: %s: %w", user.Email, errors.ErrAlreadyExists)
		}
	}
	user.ID = formbox.UserID(uuid.NewString())
	user.CreatedAt = s.now()
	s.users = append(s.users, user)
	return user, nil
}

func (s *Memory) FindUserByEmail(ctx context.Context, email string) (user formbox.User, err error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if user.Email == email {
			return user, nil
		}
	}
	return formbox.User{}, fmt.Errorf("user not found: %s: %w", email, errors.ErrNotFound)
}
