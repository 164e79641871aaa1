package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	h, err := HashPassword("s3cret!Abc")
	require.NoError(t, err)

	assert.NoError(t, CheckPassword(h, "s3cret!Abc"))
	assert.Error(t, CheckPassword(h, "wrong"))
}

func TestHashIsNeverThePlaintext(t *testing.T) {
	h, err := HashPassword("Abcdefg1")
	require.NoError(t, err)
	assert.NotEqual(t, "Abcdefg1", string(h))
	assert.NotContains(t, string(h), "Abcdefg1")
}

func TestHashesAreSalted(t *testing.T) {
	h1, err := HashPassword("Abcdefg1")
	require.NoError(t, err)
	h2, err := HashPassword("Abcdefg1")
	require.NoError(t, err)
	assert.NotEqual(t, string(h1), string(h2))
}
