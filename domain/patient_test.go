package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatientMergeKeepsUnspecifiedFields(t *testing.T) {
	patient := testPatient(t, activePolicy(t))

	newName := "Maria Rojas de Prieto"
	newPhone, err := NewPhone("3109998877")
	require.NoError(t, err)

	merged := patient.Merge(PatientUpdate{FullName: &newName, Phone: &newPhone})

	assert.Equal(t, newName, merged.FullName)
	assert.Equal(t, newPhone, merged.Phone)
	assert.Equal(t, patient.Identification, merged.Identification)
	assert.Equal(t, patient.Email, merged.Email)
	assert.Equal(t, patient.Address, merged.Address)
	assert.Equal(t, patient.InsurancePolicy, merged.InsurancePolicy)

	// The receiver is untouched.
	assert.Equal(t, "Maria Rojas", patient.FullName)
}

func TestPatientMergeCopiesOwnedObjects(t *testing.T) {
	patient := testPatient(t, nil)

	phone, err := NewPhone("3001112233")
	require.NoError(t, err)
	contact, err := NewEmergencyContact("Luis Rojas", "brother", phone)
	require.NoError(t, err)

	merged := patient.Merge(PatientUpdate{EmergencyContact: &contact})
	require.NotNil(t, merged.EmergencyContact)
	assert.Equal(t, "Luis Rojas", merged.EmergencyContact.Name)
	assert.NotSame(t, &contact, merged.EmergencyContact)
}

func TestInsurancePolicyRemainingDays(t *testing.T) {
	policy, err := NewInsurancePolicy("Sura", "POL-1", true, time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	at := time.Date(2025, time.June, 1, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, 9, policy.RemainingDays(at))
	assert.Equal(t, 0, policy.RemainingDays(time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 0, policy.RemainingDays(time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)))
}

func TestInsurancePolicyIsActiveAt(t *testing.T) {
	endDate := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	policy, err := NewInsurancePolicy("Sura", "POL-1", true, endDate)
	require.NoError(t, err)

	assert.True(t, policy.IsActiveAt(time.Date(2025, time.June, 10, 23, 0, 0, 0, time.UTC)))
	assert.False(t, policy.IsActiveAt(time.Date(2025, time.June, 11, 0, 0, 0, 0, time.UTC)))

	policy.Active = false
	assert.False(t, policy.IsActiveAt(time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)))
}

func TestNewBirthDateRejectsFuture(t *testing.T) {
	now := time.Date(2025, time.May, 15, 12, 0, 0, 0, time.UTC)

	_, err := NewBirthDate(time.Date(2025, time.May, 16, 0, 0, 0, 0, time.UTC), now)
	assert.Error(t, err)

	// Today still counts.
	_, err = NewBirthDate(time.Date(2025, time.May, 15, 23, 0, 0, 0, time.UTC), now)
	assert.NoError(t, err)
}

func TestBirthDateAgeAt(t *testing.T) {
	birthDate, err := NewBirthDate(time.Date(1990, time.May, 15, 0, 0, 0, 0, time.UTC), time.Now())
	require.NoError(t, err)

	assert.Equal(t, 35, birthDate.AgeAt(time.Date(2025, time.May, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 34, birthDate.AgeAt(time.Date(2025, time.May, 14, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 0, birthDate.AgeAt(time.Date(1990, time.May, 20, 0, 0, 0, 0, time.UTC)))
}

func TestParseGender(t *testing.T) {
	gender, err := ParseGender("Female")
	require.NoError(t, err)
	assert.Equal(t, GenderFemale, gender)

	_, err = ParseGender("female")
	assert.Error(t, err)
}
