package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPhone(t *testing.T) {
	phone, err := NewPhone("3015550147")
	require.NoError(t, err)
	assert.Equal(t, "3015550147", phone.Value())

	for _, input := range []string{"", "30155501470", "301-555", "+57301", "phone"} {
		_, err := NewPhone(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestNewEmailAcceptsAllowedDomains(t *testing.T) {
	email, err := NewEmail("Ana.Lopez@Gmail.com")
	require.NoError(t, err)
	assert.Equal(t, "ana.lopez@gmail.com", email.Value())

	_, err = NewEmail("nurse@vidaclinic.health")
	assert.NoError(t, err)
}

func TestNewEmailRejectsOtherDomains(t *testing.T) {
	_, err := NewEmail("ana@example.org")
	require.Error(t, err)
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)

	_, err = NewEmail("not-an-email")
	assert.Error(t, err)
}

func TestNewAddress(t *testing.T) {
	address, err := NewAddress("  Carrera 7 #45-12  ")
	require.NoError(t, err)
	assert.Equal(t, "Carrera 7 #45-12", address.Value())

	_, err = NewAddress("   ")
	assert.Error(t, err)
}
