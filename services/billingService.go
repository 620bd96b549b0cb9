package services

import (
	"context"
	"time"

	"VidaClinic/domain"
	"VidaClinic/events"

	"github.com/google/uuid"
)

type BillingService struct {
	invoices  InvoiceStore
	orders    OrderStore
	patients  PatientStore
	users     UserStore
	publisher EventSink
	now       func() time.Time
}

func NewBillingService(invoices InvoiceStore, orders OrderStore, patients PatientStore, users UserStore, publisher EventSink) *BillingService {
	return &BillingService{
		invoices:  invoices,
		orders:    orders,
		patients:  patients,
		users:     users,
		publisher: publisher,
		now:       time.Now,
	}
}

// InvoiceOrder prices an order and stores the resulting snapshot. The
// order moves to INVOICED, its terminal billing state.
func (s *BillingService) InvoiceOrder(ctx context.Context, orderNumber domain.OrderNumber) (domain.Invoice, error) {
	order, err := s.orders.GetByNumber(ctx, orderNumber)
	if err != nil {
		return domain.Invoice{}, err
	}
	if order.Status == domain.OrderInvoiced {
		return domain.Invoice{}, domain.NewDuplicateEntityError("invoice for order", orderNumber.Value())
	}
	patient, err := s.patients.GetByID(ctx, order.PatientID)
	if err != nil {
		return domain.Invoice{}, err
	}
	doctor, err := s.users.GetByID(ctx, order.DoctorID)
	if err != nil {
		return domain.Invoice{}, err
	}

	invoiceDate := s.now()
	copayPaid, err := s.invoices.CopayPaidInYear(ctx, order.PatientID, invoiceDate)
	if err != nil {
		return domain.Invoice{}, err
	}

	invoice, err := domain.CreateInvoice(
		uuid.New().String(),
		patient,
		doctor.FullName,
		order.Items,
		copayPaid,
		invoiceDate,
	)
	if err != nil {
		return domain.Invoice{}, err
	}

	if err := s.invoices.Save(ctx, invoice); err != nil {
		return domain.Invoice{}, err
	}
	if err := s.orders.UpdateStatus(ctx, orderNumber, domain.OrderInvoiced); err != nil {
		return domain.Invoice{}, err
	}

	s.publisher.Publish(events.Event{
		Name: events.InvoiceIssued,
		Key:  invoice.ID,
		Payload: map[string]string{
			"patient": patient.Identification.Value(),
			"order":   orderNumber.Value(),
		},
	})
	return invoice, nil
}

func (s *BillingService) GetByID(ctx context.Context, id string) (domain.Invoice, error) {
	return s.invoices.GetByID(ctx, id)
}

func (s *BillingService) GetByPatient(ctx context.Context, patientID domain.Identification) ([]domain.Invoice, error) {
	return s.invoices.GetByPatient(ctx, patientID)
}
