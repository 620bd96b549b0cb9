package services

import (
	"context"
	"testing"
	"time"

	"VidaClinic/domain"
	"VidaClinic/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func billingFixture(t *testing.T) (*BillingService, *mockInvoiceStore, *mockOrderStore, *mockPatientStore, *mockUserStore, *mockEventSink, domain.Order) {
	t.Helper()
	invoices := new(mockInvoiceStore)
	orders := new(mockOrderStore)
	patients := new(mockPatientStore)
	users := new(mockUserStore)
	sink := &mockEventSink{}
	service := NewBillingService(invoices, orders, patients, users, sink)
	service.now = fixedNow

	number, err := domain.NewOrderNumber("000042")
	require.NoError(t, err)
	patientID, err := domain.NewIdentification("1002003000")
	require.NoError(t, err)
	doctorID, err := domain.NewIdentification("52001")
	require.NoError(t, err)
	order := domain.NewOrder(number, patientID, doctorID, fixedNow().Add(-time.Hour))
	require.NoError(t, order.AddItem(domain.MedicationItem{Name: "Amoxicillin", Dose: "500mg", Length: "7 days", Cost: 30_000}))
	require.NoError(t, order.AddItem(domain.DiagnosticItem{Name: "Chest X-ray", Reason: "persistent cough", Cost: 90_000}))

	return service, invoices, orders, patients, users, sink, order
}

func TestInvoiceOrder(t *testing.T) {
	service, invoices, orders, patients, users, sink, order := billingFixture(t)

	patient := fixturePatient(t, "1002003000")
	doctor := fixtureUser(t, "52001", domain.RoleDoctor)

	orders.On("GetByNumber", mock.Anything, order.Number).Return(order, nil)
	patients.On("GetByID", mock.Anything, order.PatientID).Return(patient, nil)
	users.On("GetByID", mock.Anything, order.DoctorID).Return(doctor, nil)
	invoices.On("CopayPaidInYear", mock.Anything, order.PatientID, fixedNow()).Return(int64(0), nil)
	invoices.On("Save", mock.Anything, mock.Anything).Return(nil)
	orders.On("UpdateStatus", mock.Anything, order.Number, domain.OrderInvoiced).Return(nil)

	invoice, err := service.InvoiceOrder(context.Background(), order.Number)
	require.NoError(t, err)

	// Uninsured patient pays the full subtotal.
	assert.Equal(t, int64(120_000), invoice.Subtotal)
	assert.Equal(t, invoice.Subtotal, invoice.Copay)
	assert.Equal(t, patient.FullName, invoice.PatientName)
	assert.Equal(t, doctor.FullName, invoice.DoctorName)
	assert.NotEmpty(t, invoice.ID)

	require.Len(t, sink.published, 1)
	assert.Equal(t, events.InvoiceIssued, sink.published[0].Name)
	assert.Equal(t, order.Number.Value(), sink.published[0].Payload["order"])
	orders.AssertExpectations(t)
	invoices.AssertExpectations(t)
}

func TestInvoiceOrderAppliesYearToDateCopay(t *testing.T) {
	service, invoices, orders, patients, users, _, order := billingFixture(t)

	patient := fixturePatient(t, "1002003000")
	policy, err := domain.NewInsurancePolicy("Sura", "POL-881", true, time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	patient.InsurancePolicy = &policy
	doctor := fixtureUser(t, "52001", domain.RoleDoctor)

	orders.On("GetByNumber", mock.Anything, order.Number).Return(order, nil)
	patients.On("GetByID", mock.Anything, order.PatientID).Return(patient, nil)
	users.On("GetByID", mock.Anything, order.DoctorID).Return(doctor, nil)
	invoices.On("CopayPaidInYear", mock.Anything, order.PatientID, fixedNow()).Return(int64(960_000), nil)
	invoices.On("Save", mock.Anything, mock.Anything).Return(nil)
	orders.On("UpdateStatus", mock.Anything, order.Number, domain.OrderInvoiced).Return(nil)

	invoice, err := service.InvoiceOrder(context.Background(), order.Number)
	require.NoError(t, err)
	assert.Equal(t, int64(40_000), invoice.Copay)
}

func TestInvoiceOrderRejectsAlreadyInvoiced(t *testing.T) {
	service, invoices, orders, _, _, sink, order := billingFixture(t)
	require.NoError(t, order.MarkInvoiced())

	orders.On("GetByNumber", mock.Anything, order.Number).Return(order, nil)

	_, err := service.InvoiceOrder(context.Background(), order.Number)
	require.Error(t, err)
	var duplicate *domain.DuplicateEntityError
	assert.ErrorAs(t, err, &duplicate)
	invoices.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	assert.Empty(t, sink.published)
}

func TestInvoiceOrderStopsWhenSaveFails(t *testing.T) {
	service, invoices, orders, patients, users, sink, order := billingFixture(t)

	patient := fixturePatient(t, "1002003000")
	doctor := fixtureUser(t, "52001", domain.RoleDoctor)

	orders.On("GetByNumber", mock.Anything, order.Number).Return(order, nil)
	patients.On("GetByID", mock.Anything, order.PatientID).Return(patient, nil)
	users.On("GetByID", mock.Anything, order.DoctorID).Return(doctor, nil)
	invoices.On("CopayPaidInYear", mock.Anything, order.PatientID, fixedNow()).Return(int64(0), nil)
	invoices.On("Save", mock.Anything, mock.Anything).
		Return(domain.NewDuplicateEntityError("invoice", "x"))

	_, err := service.InvoiceOrder(context.Background(), order.Number)
	require.Error(t, err)
	orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	assert.Empty(t, sink.published)
}
