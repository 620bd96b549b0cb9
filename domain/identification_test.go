package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIdentification(t *testing.T) {
	valid := []string{"1", "0", "123456789", "1234567890"}
	for _, input := range valid {
		id, err := NewIdentification(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, input, id.Value())
	}

	invalid := []string{"", "   ", "12345678901", "12a45", "1.5", "-12", "one"}
	for _, input := range invalid {
		_, err := NewIdentification(input)
		require.Error(t, err, "input %q", input)
		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr)
	}
}

func TestNewIdentificationTrimsInput(t *testing.T) {
	id, err := NewIdentification("  42  ")
	require.NoError(t, err)
	assert.Equal(t, "42", id.Value())
}

func TestIdentificationEqualityByValue(t *testing.T) {
	a, err := NewIdentification("12345")
	require.NoError(t, err)
	b, err := NewIdentification(" 12345 ")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestNewUsernameNormalizesCase(t *testing.T) {
	username, err := NewUsername("DrGarcia_9")
	require.NoError(t, err)
	assert.Equal(t, "drgarcia_9", username.Value())

	_, err = NewUsername(strings.Repeat("a", 16))
	assert.Error(t, err)

	_, err = NewUsername("has space")
	assert.Error(t, err)
}
