package memstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetGetDelete(t *testing.T) {
	st := New()

	_, ok, err := st.Get("k")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, st.Set("k", "v"))
	val, ok, err := st.Get("k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "v", val)
	assert.Equal(t, 1, st.Len())

	require.NoError(t, st.Delete("k"))
	_, ok, _ = st.Get("k")
	assert.False(t, ok)
	assert.Zero(t, st.Len())
}
