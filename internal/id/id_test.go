package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	got, err := Generate("combo")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(got, "combo-"))
	assert.Len(t, got, len("combo-")+nanoidLength)
	assert.True(t, Valid("combo", got))
}

func TestGenerate_Unique(t *testing.T) {
	seen := make(map[string]struct{})
	for range 1000 {
		got := MustGenerate("tag")
		_, dup := seen[got]
		require.False(t, dup, "duplicate ID %s", got)
		seen[got] = struct{}{}
	}
}

func TestValid(t *testing.T) {
	id := MustGenerate("user")

	assert.True(t, Valid("user", id))
	assert.False(t, Valid("combo", id), "wrong prefix")
	assert.False(t, Valid("user", ""))
	assert.False(t, Valid("user", "user-"))
	assert.False(t, Valid("user", "user-short"))
	assert.False(t, Valid("user", id+"x"), "too long")
	assert.False(t, Valid("user", "user-!!!!!!!!!!!!!!!!!!!!!"), "bad alphabet")
}
