// Package directory manages the registered-account list.
package directory

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/pennywise-dev/pennywise/internal/id"
	"github.com/pennywise-dev/pennywise/internal/model"
	"github.com/pennywise-dev/pennywise/internal/store"
)

// usersKey is the store key holding the full account list.
const usersKey = "budgetUsers"

// minPasswordLen is the shortest password Register accepts.
const minPasswordLen = 6

var (
	ErrDuplicateEmail     = errors.New("a user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrPasswordMismatch   = errors.New("passwords do not match")
)

// Directory reads and writes the account list. Every operation loads
// the list fresh from the store, so separate handles over the same
// store always see each other's writes; there is no cross-process
// locking.
type Directory struct {
	store store.Store
}

// New creates a Directory over the given store.
func New(st store.Store) *Directory {
	return &Directory{store: st}
}

// Register creates a new account. The email must not already be in the
// directory (exact match); the password must meet the minimum length
// and match its confirmation. Passwords are stored bcrypt-hashed.
func (d *Directory) Register(name, email, password, confirm string) (*model.User, error) {
	if password != confirm {
		return nil, ErrPasswordMismatch
	}
	if len(password) < minPasswordLen {
		return nil, ErrPasswordTooShort
	}

	users, err := d.load()
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Email == email {
			return nil, ErrDuplicateEmail
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := model.User{
		ID:           id.New(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	if err := d.save(append(users, user)); err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByCredentials returns the account matching email and password,
// or ErrInvalidCredentials. The scan is linear; email comparison is
// exact (case-sensitive as stored).
func (d *Directory) FindByCredentials(email, password string) (*model.User, error) {
	users, err := d.load()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(users[i].PasswordHash), []byte(password)) != nil {
			return nil, ErrInvalidCredentials
		}
		return &users[i], nil
	}
	return nil, ErrInvalidCredentials
}

// All returns every registered account.
func (d *Directory) All() ([]model.User, error) {
	return d.load()
}

func (d *Directory) load() ([]model.User, error) {
	raw, ok, err := d.store.Get(usersKey)
	if err != nil {
		return nil, fmt.Errorf("loading user directory: %w", err)
	}
	if !ok {
		return nil, nil
	}
	var users []model.User
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		return nil, fmt.Errorf("parsing user directory: %w", err)
	}
	return users, nil
}

func (d *Directory) save(users []model.User) error {
	data, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("encoding user directory: %w", err)
	}
	if err := d.store.Set(usersKey, string(data)); err != nil {
		return fmt.Errorf("saving user directory: %w", err)
	}
	return nil
}
