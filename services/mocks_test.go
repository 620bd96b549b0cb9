package services

import (
	"context"
	"time"

	"VidaClinic/domain"
	"VidaClinic/events"

	"github.com/stretchr/testify/mock"
)

type mockPatientStore struct{ mock.Mock }

func (m *mockPatientStore) Create(ctx context.Context, patient domain.Patient) error {
	return m.Called(ctx, patient).Error(0)
}

func (m *mockPatientStore) GetByID(ctx context.Context, id domain.Identification) (domain.Patient, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Patient), args.Error(1)
}

func (m *mockPatientStore) GetAll(ctx context.Context) ([]domain.Patient, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Patient), args.Error(1)
}

func (m *mockPatientStore) Update(ctx context.Context, patient domain.Patient) error {
	return m.Called(ctx, patient).Error(0)
}

func (m *mockPatientStore) Delete(ctx context.Context, id domain.Identification) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockPatientStore) Exists(ctx context.Context, id domain.Identification) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type mockUserStore struct{ mock.Mock }

func (m *mockUserStore) Create(ctx context.Context, user domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserStore) GetByID(ctx context.Context, id domain.Identification) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *mockUserStore) GetByUsername(ctx context.Context, username domain.Username) (domain.User, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *mockUserStore) GetByEmail(ctx context.Context, email domain.Email) (domain.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *mockUserStore) GetAll(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *mockUserStore) Update(ctx context.Context, user domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserStore) Delete(ctx context.Context, id domain.Identification) error {
	return m.Called(ctx, id).Error(0)
}

type mockOrderStore struct{ mock.Mock }

func (m *mockOrderStore) Create(ctx context.Context, order domain.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *mockOrderStore) GetByNumber(ctx context.Context, number domain.OrderNumber) (domain.Order, error) {
	args := m.Called(ctx, number)
	return args.Get(0).(domain.Order), args.Error(1)
}

func (m *mockOrderStore) GetByPatient(ctx context.Context, patientID domain.Identification) ([]domain.Order, error) {
	args := m.Called(ctx, patientID)
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *mockOrderStore) NumberExists(ctx context.Context, number domain.OrderNumber) (bool, error) {
	args := m.Called(ctx, number)
	return args.Bool(0), args.Error(1)
}

func (m *mockOrderStore) AppendItems(ctx context.Context, order domain.Order, newItems []domain.OrderItem) error {
	return m.Called(ctx, order, newItems).Error(0)
}

func (m *mockOrderStore) UpdateStatus(ctx context.Context, number domain.OrderNumber, status domain.OrderStatus) error {
	return m.Called(ctx, number, status).Error(0)
}

type mockInvoiceStore struct{ mock.Mock }

func (m *mockInvoiceStore) Save(ctx context.Context, invoice domain.Invoice) error {
	return m.Called(ctx, invoice).Error(0)
}

func (m *mockInvoiceStore) GetByID(ctx context.Context, id string) (domain.Invoice, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Invoice), args.Error(1)
}

func (m *mockInvoiceStore) GetByPatient(ctx context.Context, patientID domain.Identification) ([]domain.Invoice, error) {
	args := m.Called(ctx, patientID)
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *mockInvoiceStore) CopayPaidInYear(ctx context.Context, patientID domain.Identification, at time.Time) (int64, error) {
	args := m.Called(ctx, patientID, at)
	return args.Get(0).(int64), args.Error(1)
}

func fixedNow() time.Time {
	return time.Date(2025, time.May, 15, 10, 0, 0, 0, time.UTC)
}

// mockEventSink records published events in order.
type mockEventSink struct {
	published []events.Event
}

func (m *mockEventSink) Publish(event events.Event) bool {
	m.published = append(m.published, event)
	return true
}
