package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pennywise-dev/pennywise/internal/model"
	"github.com/pennywise-dev/pennywise/internal/store/memstore"
)

func TestStartRestoreEnd(t *testing.T) {
	st := memstore.New()
	s := New(st)

	user := &model.User{ID: "u1", Name: "Ada", Email: "ada@example.com"}
	require.NoError(t, s.Start(user))
	assert.Equal(t, user, s.Current())

	// A fresh Session over the same store resumes the identity without
	// re-validating credentials.
	restored, err := New(st).Restore()
	require.NoError(t, err)
	require.NotNil(t, restored)
	assert.Equal(t, "u1", restored.ID)
	assert.Equal(t, "Ada", restored.Name)

	require.NoError(t, s.End())
	assert.Nil(t, s.Current())

	gone, err := New(st).Restore()
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestRestore_NoSavedSession(t *testing.T) {
	s := New(memstore.New())
	user, err := s.Restore()
	require.NoError(t, err)
	assert.Nil(t, user)
	assert.Nil(t, s.Current())
}

func TestEnd_LeavesLedgerDataInStore(t *testing.T) {
	st := memstore.New()
	require.NoError(t, st.Set("u1_budget", "500"))

	s := New(st)
	require.NoError(t, s.Start(&model.User{ID: "u1"}))
	require.NoError(t, s.End())

	val, ok, err := st.Get("u1_budget")
	require.NoError(t, err)
	assert.True(t, ok, "ending a session must not delete persisted ledger data")
	assert.Equal(t, "500", val)
}
