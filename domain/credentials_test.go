package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPasswordPolicy(t *testing.T) {
	_, err := NewPassword("Str0ng!Pass")
	assert.NoError(t, err)

	cases := map[string]string{
		"too short":    "S1!a",
		"no uppercase": "weak1pass!",
		"no lowercase": "WEAK1PASS!",
		"no digit":     "WeakPass!!",
		"no special":   "WeakPass11",
	}
	for name, input := range cases {
		_, err := NewPassword(input)
		assert.Error(t, err, name)
	}
}

func TestNewPasswordDevBypass(t *testing.T) {
	// The bypass literal skips the policy but is hashed like any other.
	password, err := NewPassword(PasswordDevBypass)
	require.NoError(t, err)
	assert.True(t, password.Matches(PasswordDevBypass))
	assert.NotEqual(t, PasswordDevBypass, password.Hash())
}

func TestPasswordMatchesRoundTrip(t *testing.T) {
	password, err := NewPassword("Str0ng!Pass")
	require.NoError(t, err)

	assert.True(t, password.Matches("Str0ng!Pass"))
	assert.False(t, password.Matches("Str0ng!Pas"))
	assert.False(t, password.Matches(""))
}

func TestPasswordInstancesNeverEqual(t *testing.T) {
	first, err := NewPassword("Str0ng!Pass")
	require.NoError(t, err)
	second, err := NewPassword("Str0ng!Pass")
	require.NoError(t, err)

	// Same plaintext, but credentials never compare equal; only Matches
	// may be used.
	assert.False(t, first.Equals(second))
	assert.False(t, second.Equals(first))
	assert.NotEqual(t, first.Hash(), second.Hash())
}

func TestPasswordFromHash(t *testing.T) {
	original, err := NewPassword("Str0ng!Pass")
	require.NoError(t, err)

	rehydrated := PasswordFromHash(original.Hash())
	assert.True(t, rehydrated.Matches("Str0ng!Pass"))
}
