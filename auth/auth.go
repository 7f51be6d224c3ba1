// Package auth supplies caller identities to the rest of the module: account
// signup, login against stored credentials or the configured admin stub, and
// an explicit session lifecycle. Sessions are plain values threaded through
// calls; there is no ambient process-wide token.
package auth

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"sync"

	formbox "github.com/Jumpaku/go-formbox"
	"github.com/Jumpaku/go-formbox/errors"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var emailPattern = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)

// UserStore is the slice of the persistent store auth needs.
type UserStore interface {
	InsertUser(ctx context.Context, user formbox.User) (formbox.User, error)
	FindUserByEmail(ctx context.Context, email string) (formbox.User, error)
}

// Session is an authenticated caller. UserID is empty for the configured
// admin, which exists only as credentials, not as a stored user.
type Session struct {
	Token  string
	UserID formbox.UserID
	Email  string
}

// Authenticator owns login, signup, and the session registry. Tokens are
// opaque UUIDs valid for the life of the process.
type Authenticator struct {
	users         UserStore
	adminEmail    string
	adminPassword string

	mu       sync.RWMutex
	sessions map[string]Session
}

// New creates an Authenticator over users. adminEmail/adminPassword are stub
// credentials honored without a user record; pass empty strings to disable
// the stub.
func New(users UserStore, adminEmail, adminPassword string) *Authenticator {
	return &Authenticator{
		users:         users,
		adminEmail:    strings.ToLower(strings.TrimSpace(adminEmail)),
		adminPassword: adminPassword,
		sessions:      map[string]Session{},
	}
}

// Signup registers a new account and logs it in. Name must be 2 to 50
// characters, email must look like an email address, and password must be at
// least 6 characters; violations fail with errors.ErrInvalidAccount. A taken
// email fails with errors.ErrAlreadyExists.
func (a *Authenticator) Signup(ctx context.Context, name, email, password string) (session Session, err error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	switch {
	case len(name) < 2:
		return Session{}, fmt.Errorf("name must be at least 2 characters long: %w", errors.ErrInvalidAccount)
	case len(name) > 50:
		return Session{}, fmt.Errorf("name cannot exceed 50 characters: %w", errors.ErrInvalidAccount)
	case !emailPattern.MatchString(email):
		return Session{}, fmt.Errorf("please enter a valid email address: %w", errors.ErrInvalidAccount)
	case len(password) < 6:
		return Session{}, fmt.Errorf("password must be at least 6 characters long: %w", errors.ErrInvalidAccount)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Session{}, errors.NewStorageError("failed to hash password", err)
	}
	user, err := a.users.InsertUser(ctx, formbox.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	})
	if err != nil {
		return Session{}, err
	}
	return a.open(user.ID, user.Email), nil
}

// Login authenticates email/password and opens a session. Unknown emails and
// wrong passwords both fail with errors.ErrUnauthorized.
func (a *Authenticator) Login(ctx context.Context, email, password string) (session Session, err error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return Session{}, fmt.Errorf("email and password are required: %w", errors.ErrUnauthorized)
	}

	if a.adminEmail != "" && email == a.adminEmail && password == a.adminPassword {
		return a.open("", email), nil
	}

	user, err := a.users.FindUserByEmail(ctx, email)
	if err != nil {
		return Session{}, fmt.Errorf("invalid email or password: %w", errors.ErrUnauthorized)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return Session{}, fmt.Errorf("invalid email or password: %w", errors.ErrUnauthorized)
	}
	return a.open(user.ID, user.Email), nil
}

// Identify resolves a bearer token to its session.
func (a *Authenticator) Identify(token string) (session Session, err error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	session, ok := a.sessions[token]
	if !ok {
		return Session{}, fmt.Errorf("not authorized, token failed: %w", errors.ErrUnauthorized)
	}
	return session, nil
}

// Logout invalidates a token. Unknown tokens are a no-op.
func (a *Authenticator) Logout(token string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.sessions, token)
}

func (a *Authenticator) open(userID formbox.UserID, email string) Session {
	session := Session{
		Token:  uuid.NewString(),
		UserID: userID,
		Email:  email,
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.sessions[session.Token] = session
	return session
}
