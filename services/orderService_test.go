package services

import (
	"context"
	"testing"

	"VidaClinic/domain"
	"VidaClinic/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGenerateUniqueOrderNumberSkipsTakenNumbers(t *testing.T) {
	orders := new(mockOrderStore)
	service := NewOrderService(orders, new(mockPatientStore), new(mockUserStore), &mockEventSink{})

	// First two candidates are taken, the third is free.
	orders.On("NumberExists", mock.Anything, mock.Anything).Return(true, nil).Twice()
	orders.On("NumberExists", mock.Anything, mock.Anything).Return(false, nil).Once()

	number, err := service.GenerateUniqueOrderNumber(context.Background())
	require.NoError(t, err)
	assert.False(t, number.IsZero())
	assert.Len(t, number.Value(), 6)
	orders.AssertExpectations(t)
}

func TestGenerateUniqueOrderNumberGivesUpAfterBoundedAttempts(t *testing.T) {
	orders := new(mockOrderStore)
	service := NewOrderService(orders, new(mockPatientStore), new(mockUserStore), &mockEventSink{})

	orders.On("NumberExists", mock.Anything, mock.Anything).Return(true, nil)

	_, err := service.GenerateUniqueOrderNumber(context.Background())
	require.Error(t, err)
	orders.AssertNumberOfCalls(t, "NumberExists", maxOrderNumberAttempts)
}

func TestOrderCreate(t *testing.T) {
	orders := new(mockOrderStore)
	patients := new(mockPatientStore)
	users := new(mockUserStore)
	sink := &mockEventSink{}
	service := NewOrderService(orders, patients, users, sink)

	patient := fixturePatient(t, "1002003000")
	doctor := fixtureUser(t, "52001", domain.RoleDoctor)

	patients.On("Exists", mock.Anything, patient.Identification).Return(true, nil)
	users.On("GetByID", mock.Anything, doctor.Identification).Return(doctor, nil)
	orders.On("NumberExists", mock.Anything, mock.Anything).Return(false, nil)
	orders.On("Create", mock.Anything, mock.Anything).Return(nil)

	items := []domain.OrderItem{
		domain.MedicationItem{Name: "Ibuprofen", Dose: "400mg", Length: "5 days", Cost: 12_000},
	}
	order, err := service.Create(context.Background(), patient.Identification, doctor.Identification, items)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderItemsAdded, order.Status)
	assert.Len(t, order.Items, 1)

	require.Len(t, sink.published, 1)
	assert.Equal(t, events.OrderCreated, sink.published[0].Name)
	assert.Equal(t, order.Number.Value(), sink.published[0].Key)
}

func TestOrderCreateRetriesOnNumberCollision(t *testing.T) {
	orders := new(mockOrderStore)
	patients := new(mockPatientStore)
	users := new(mockUserStore)
	service := NewOrderService(orders, patients, users, &mockEventSink{})

	patient := fixturePatient(t, "1002003000")
	doctor := fixtureUser(t, "52001", domain.RoleDoctor)

	patients.On("Exists", mock.Anything, patient.Identification).Return(true, nil)
	users.On("GetByID", mock.Anything, doctor.Identification).Return(doctor, nil)
	orders.On("NumberExists", mock.Anything, mock.Anything).Return(false, nil)

	// A concurrent request wins the first number; the retry succeeds with
	// a fresh candidate.
	orders.On("Create", mock.Anything, mock.Anything).
		Return(domain.NewDuplicateEntityError("order", "000001")).Once()
	orders.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

	_, err := service.Create(context.Background(), patient.Identification, doctor.Identification, nil)
	require.NoError(t, err)
	orders.AssertNumberOfCalls(t, "Create", 2)
}

func TestOrderCreateRequiresDoctorRole(t *testing.T) {
	orders := new(mockOrderStore)
	patients := new(mockPatientStore)
	users := new(mockUserStore)
	service := NewOrderService(orders, patients, users, &mockEventSink{})

	patient := fixturePatient(t, "1002003000")
	nurse := fixtureUser(t, "61002", domain.RoleNurse)

	patients.On("Exists", mock.Anything, patient.Identification).Return(true, nil)
	users.On("GetByID", mock.Anything, nurse.Identification).Return(nurse, nil)

	_, err := service.Create(context.Background(), patient.Identification, nurse.Identification, nil)
	require.Error(t, err)
	var denied *domain.AccessDeniedError
	assert.ErrorAs(t, err, &denied)
	orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrderCreateUnknownPatient(t *testing.T) {
	patients := new(mockPatientStore)
	service := NewOrderService(new(mockOrderStore), patients, new(mockUserStore), &mockEventSink{})

	patient := fixturePatient(t, "999")
	doctor := fixtureUser(t, "52001", domain.RoleDoctor)

	patients.On("Exists", mock.Anything, patient.Identification).Return(false, nil)

	_, err := service.Create(context.Background(), patient.Identification, doctor.Identification, nil)
	require.Error(t, err)
	var notFound *domain.EntityNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestAddItemsAppendsToExistingOrder(t *testing.T) {
	orders := new(mockOrderStore)
	service := NewOrderService(orders, new(mockPatientStore), new(mockUserStore), &mockEventSink{})

	number, err := domain.NewOrderNumber("000042")
	require.NoError(t, err)
	patientID, err := domain.NewIdentification("1002003000")
	require.NoError(t, err)
	doctorID, err := domain.NewIdentification("52001")
	require.NoError(t, err)
	existing := domain.NewOrder(number, patientID, doctorID, fixedNow())
	require.NoError(t, existing.AddItem(domain.MedicationItem{Name: "Ibuprofen", Dose: "400mg", Length: "5 days", Cost: 12_000}))

	newItems := []domain.OrderItem{
		domain.DiagnosticItem{Name: "Blood panel", Reason: "routine check", Cost: 45_000},
	}
	orders.On("GetByNumber", mock.Anything, number).Return(existing, nil)
	orders.On("AppendItems", mock.Anything, mock.Anything, newItems).Return(nil)

	updated, err := service.AddItems(context.Background(), number, newItems)
	require.NoError(t, err)
	assert.Len(t, updated.Items, 2)
	assert.Equal(t, int64(57_000), updated.Subtotal())
}

func TestAddItemsRejectsInvoicedOrder(t *testing.T) {
	orders := new(mockOrderStore)
	service := NewOrderService(orders, new(mockPatientStore), new(mockUserStore), &mockEventSink{})

	number, err := domain.NewOrderNumber("000042")
	require.NoError(t, err)
	patientID, err := domain.NewIdentification("1002003000")
	require.NoError(t, err)
	doctorID, err := domain.NewIdentification("52001")
	require.NoError(t, err)
	invoiced := domain.NewOrder(number, patientID, doctorID, fixedNow())
	require.NoError(t, invoiced.AddItem(domain.MedicationItem{Name: "Ibuprofen", Dose: "400mg", Length: "5 days", Cost: 12_000}))
	require.NoError(t, invoiced.MarkInvoiced())

	orders.On("GetByNumber", mock.Anything, number).Return(invoiced, nil)

	_, err = service.AddItems(context.Background(), number, []domain.OrderItem{
		domain.ProcedureItem{Name: "Dressing change", Times: 2, Frequency: "daily", Cost: 8_000},
	})
	require.Error(t, err)
	orders.AssertNotCalled(t, "AppendItems", mock.Anything, mock.Anything, mock.Anything)
}
