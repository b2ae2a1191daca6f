package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pennywise-dev/pennywise/internal/store/memstore"
)

func TestRegister(t *testing.T) {
	d := New(memstore.New())

	user, err := d.Register("Ada", "ada@example.com", "hunter22", "hunter22")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "Ada", user.Name)
	assert.NotEqual(t, "hunter22", user.PasswordHash, "passwords are stored hashed")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	d := New(memstore.New())

	_, err := d.Register("Ada", "ada@example.com", "hunter22", "hunter22")
	require.NoError(t, err)

	_, err = d.Register("Imposter", "ada@example.com", "different1", "different1")
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	users, err := d.All()
	require.NoError(t, err)
	assert.Len(t, users, 1, "failed registration must not grow the directory")
}

func TestRegister_PasswordRules(t *testing.T) {
	d := New(memstore.New())

	_, err := d.Register("Ada", "ada@example.com", "short", "short")
	assert.ErrorIs(t, err, ErrPasswordTooShort)

	_, err = d.Register("Ada", "ada@example.com", "hunter22", "hunter23")
	assert.ErrorIs(t, err, ErrPasswordMismatch)
}

func TestFindByCredentials(t *testing.T) {
	d := New(memstore.New())

	registered, err := d.Register("Ada", "ada@example.com", "hunter22", "hunter22")
	require.NoError(t, err)

	found, err := d.FindByCredentials("ada@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, found.ID)

	_, err = d.FindByCredentials("ada@example.com", "wrongpass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = d.FindByCredentials("nobody@example.com", "hunter22")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Email comparison is exact, case-sensitive as stored.
	_, err = d.FindByCredentials("Ada@example.com", "hunter22")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestDirectory_SharedStore(t *testing.T) {
	st := memstore.New()

	// Two handles over the same store see each other's writes: the
	// directory reloads from the store on every operation.
	d1 := New(st)
	d2 := New(st)

	_, err := d1.Register("Ada", "ada@example.com", "hunter22", "hunter22")
	require.NoError(t, err)

	found, err := d2.FindByCredentials("ada@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, "Ada", found.Name)
}
