package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPatient(t *testing.T, policy *InsurancePolicy) Patient {
	t.Helper()
	id, err := NewIdentification("1002003000")
	require.NoError(t, err)
	birthDate, err := NewBirthDate(time.Date(1990, time.May, 15, 0, 0, 0, 0, time.UTC), time.Now())
	require.NoError(t, err)
	address, err := NewAddress("Calle 10 #4-21")
	require.NoError(t, err)
	phone, err := NewPhone("3015550147")
	require.NoError(t, err)
	email, err := NewEmail("maria.rojas@gmail.com")
	require.NoError(t, err)
	username, err := NewUsername("mrojas")
	require.NoError(t, err)

	patient, err := NewPatient(id, "Maria Rojas", birthDate, GenderFemale, address, phone, email, username, PasswordFromHash("x"))
	require.NoError(t, err)
	patient.InsurancePolicy = policy
	return patient
}

func activePolicy(t *testing.T) *InsurancePolicy {
	t.Helper()
	policy, err := NewInsurancePolicy("Sura", "POL-881", true, time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return &policy
}

var invoiceDate = time.Date(2025, time.May, 15, 0, 0, 0, 0, time.UTC)

func testItems() []OrderItem {
	return []OrderItem{
		MedicationItem{Name: "Amoxicillin", Dose: "500mg", Length: "7 days", Cost: 30_000},
		ProcedureItem{Name: "Suture removal", Times: 1, Frequency: "once", Cost: 80_000},
		DiagnosticItem{Name: "Chest X-ray", Reason: "persistent cough", Cost: 90_000},
	}
}

func TestCreateInvoiceWithoutPolicyPaysFullSubtotal(t *testing.T) {
	patient := testPatient(t, nil)

	invoice, err := CreateInvoice("inv-1", patient, "Dr. Vargas", testItems(), 0, invoiceDate)
	require.NoError(t, err)

	assert.Equal(t, int64(200_000), invoice.Subtotal)
	assert.Equal(t, invoice.Subtotal, invoice.Copay)
	assert.Empty(t, invoice.InsurerName)
	assert.Nil(t, invoice.PolicyEndDate)
}

func TestCreateInvoiceInactivePolicyPaysFullSubtotal(t *testing.T) {
	policy := activePolicy(t)
	policy.Active = false
	patient := testPatient(t, policy)

	invoice, err := CreateInvoice("inv-2", patient, "Dr. Vargas", testItems(), 0, invoiceDate)
	require.NoError(t, err)
	assert.Equal(t, invoice.Subtotal, invoice.Copay)
}

func TestCreateInvoiceStandardCopay(t *testing.T) {
	patient := testPatient(t, activePolicy(t))

	invoice, err := CreateInvoice("inv-3", patient, "Dr. Vargas", testItems(), 0, invoiceDate)
	require.NoError(t, err)

	assert.Equal(t, StandardCopay, invoice.Copay)
	assert.Equal(t, int64(200_000), invoice.Subtotal)
	assert.Equal(t, "Sura", invoice.InsurerName)
	assert.Equal(t, "POL-881", invoice.PolicyNumber)
	require.NotNil(t, invoice.PolicyEndDate)
}

func TestCreateInvoiceAnnualCapExhausted(t *testing.T) {
	patient := testPatient(t, activePolicy(t))

	invoice, err := CreateInvoice("inv-4", patient, "Dr. Vargas", testItems(), AnnualCopayCap, invoiceDate)
	require.NoError(t, err)
	assert.Equal(t, int64(0), invoice.Copay)

	invoice, err = CreateInvoice("inv-5", patient, "Dr. Vargas", testItems(), AnnualCopayCap+10_000, invoiceDate)
	require.NoError(t, err)
	assert.Equal(t, int64(0), invoice.Copay)
}

func TestCreateInvoiceCopayCappedByRemainingLimit(t *testing.T) {
	patient := testPatient(t, activePolicy(t))

	// 960,000 already paid leaves 40,000 of headroom, below the
	// standard 50,000 copay.
	invoice, err := CreateInvoice("inv-6", patient, "Dr. Vargas", testItems(), 960_000, invoiceDate)
	require.NoError(t, err)
	assert.Equal(t, int64(40_000), invoice.Copay)
}

func TestCreateInvoicePatientAge(t *testing.T) {
	patient := testPatient(t, nil)

	invoice, err := CreateInvoice("inv-7", patient, "Dr. Vargas", testItems(), 0, invoiceDate)
	require.NoError(t, err)
	assert.Equal(t, 35, invoice.PatientAge)

	dayBefore := time.Date(2025, time.May, 14, 0, 0, 0, 0, time.UTC)
	invoice, err = CreateInvoice("inv-8", patient, "Dr. Vargas", testItems(), 0, dayBefore)
	require.NoError(t, err)
	assert.Equal(t, 34, invoice.PatientAge)
}

func TestCreateInvoiceLineDescriptions(t *testing.T) {
	patient := testPatient(t, nil)

	invoice, err := CreateInvoice("inv-9", patient, "Dr. Vargas", testItems(), 0, invoiceDate)
	require.NoError(t, err)
	require.Len(t, invoice.Lines, 3)
	assert.Equal(t, "Medication: Amoxicillin (500mg, 7 days)", invoice.Lines[0].Description)
	assert.Equal(t, "Procedure: Suture removal (1 times, once)", invoice.Lines[1].Description)
	assert.Equal(t, "Diagnostic: Chest X-ray (persistent cough)", invoice.Lines[2].Description)
}

func TestCreateInvoiceIsDeterministic(t *testing.T) {
	patient := testPatient(t, activePolicy(t))

	first, err := CreateInvoice("inv-10", patient, "Dr. Vargas", testItems(), 200_000, invoiceDate)
	require.NoError(t, err)
	second, err := CreateInvoice("inv-10", patient, "Dr. Vargas", testItems(), 200_000, invoiceDate)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCreateInvoiceRejectsEmptyItems(t *testing.T) {
	patient := testPatient(t, nil)
	_, err := CreateInvoice("inv-11", patient, "Dr. Vargas", nil, 0, invoiceDate)
	assert.Error(t, err)
}
