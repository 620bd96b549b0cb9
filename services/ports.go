package services

import (
	"context"
	"time"

	"VidaClinic/domain"
	"VidaClinic/events"
	"VidaClinic/models"
)

// Persistence ports consumed by the services. The concrete adapters live
// in the repositories package; tests substitute mocks.

type PatientStore interface {
	Create(ctx context.Context, patient domain.Patient) error
	GetByID(ctx context.Context, id domain.Identification) (domain.Patient, error)
	GetAll(ctx context.Context) ([]domain.Patient, error)
	Update(ctx context.Context, patient domain.Patient) error
	Delete(ctx context.Context, id domain.Identification) error
	Exists(ctx context.Context, id domain.Identification) (bool, error)
}

type UserStore interface {
	Create(ctx context.Context, user domain.User) error
	GetByID(ctx context.Context, id domain.Identification) (domain.User, error)
	GetByUsername(ctx context.Context, username domain.Username) (domain.User, error)
	GetByEmail(ctx context.Context, email domain.Email) (domain.User, error)
	GetAll(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, user domain.User) error
	Delete(ctx context.Context, id domain.Identification) error
}

type OrderStore interface {
	Create(ctx context.Context, order domain.Order) error
	GetByNumber(ctx context.Context, number domain.OrderNumber) (domain.Order, error)
	GetByPatient(ctx context.Context, patientID domain.Identification) ([]domain.Order, error)
	NumberExists(ctx context.Context, number domain.OrderNumber) (bool, error)
	AppendItems(ctx context.Context, order domain.Order, newItems []domain.OrderItem) error
	UpdateStatus(ctx context.Context, number domain.OrderNumber, status domain.OrderStatus) error
}

type InvoiceStore interface {
	Save(ctx context.Context, invoice domain.Invoice) error
	GetByID(ctx context.Context, id string) (domain.Invoice, error)
	GetByPatient(ctx context.Context, patientID domain.Identification) ([]domain.Invoice, error)
	CopayPaidInYear(ctx context.Context, patientID domain.Identification, at time.Time) (int64, error)
}

type MedicalRecordStore interface {
	AppendEntry(ctx context.Context, patientID domain.Identification, date time.Time, entry domain.RecordEntry) error
	GetByPatient(ctx context.Context, patientID domain.Identification) (domain.MedicalRecord, error)
}

type AppointmentStore interface {
	Create(ctx context.Context, appointment *models.AppointmentRow) error
	GetByID(ctx context.Context, id uint) (*models.AppointmentRow, error)
	GetByPatient(ctx context.Context, patientID domain.Identification) ([]models.AppointmentRow, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
}

type InventoryStore interface {
	Create(ctx context.Context, item *models.InventoryItem) error
	GetByID(ctx context.Context, id uint) (*models.InventoryItem, error)
	GetAll(ctx context.Context) ([]models.InventoryItem, error)
	AdjustQuantity(ctx context.Context, id uint, delta int) error
	Delete(ctx context.Context, id uint) error
}

// EventSink is the publishing side of the domain event channel.
type EventSink interface {
	Publish(event events.Event) bool
}
