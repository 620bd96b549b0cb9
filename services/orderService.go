package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"VidaClinic/domain"
	"VidaClinic/events"
)

// maxOrderNumberAttempts bounds number generation. Six digits give a
// million candidates, so exhausting this many attempts means the store is
// misbehaving, not that the space is full.
const maxOrderNumberAttempts = 8

type OrderService struct {
	orders    OrderStore
	patients  PatientStore
	users     UserStore
	publisher EventSink
	now       func() time.Time
}

func NewOrderService(orders OrderStore, patients PatientStore, users UserStore, publisher EventSink) *OrderService {
	return &OrderService{
		orders:    orders,
		patients:  patients,
		users:     users,
		publisher: publisher,
		now:       time.Now,
	}
}

// GenerateUniqueOrderNumber draws random 6-digit candidates until the
// store reports one free. The returned number is only reserved once an
// order is created with it; Create retries on the unique constraint for
// the concurrent case.
func (s *OrderService) GenerateUniqueOrderNumber(ctx context.Context) (domain.OrderNumber, error) {
	for attempt := 0; attempt < maxOrderNumberAttempts; attempt++ {
		candidate, err := domain.NewOrderNumber(fmt.Sprintf("%06d", rand.Intn(1_000_000)))
		if err != nil {
			return domain.OrderNumber{}, err
		}
		taken, err := s.orders.NumberExists(ctx, candidate)
		if err != nil {
			return domain.OrderNumber{}, err
		}
		if !taken {
			return candidate, nil
		}
	}
	return domain.OrderNumber{}, fmt.Errorf("failed to generate a free order number after %d attempts", maxOrderNumberAttempts)
}

// Create opens a new order for a patient under a doctor. The order number
// is generated here; a constraint collision with a concurrent request is
// retried with a fresh candidate.
func (s *OrderService) Create(ctx context.Context, patientID, doctorID domain.Identification, items []domain.OrderItem) (domain.Order, error) {
	if exists, err := s.patients.Exists(ctx, patientID); err != nil {
		return domain.Order{}, err
	} else if !exists {
		return domain.Order{}, domain.NewEntityNotFoundError("patient", patientID.Value())
	}
	doctor, err := s.users.GetByID(ctx, doctorID)
	if err != nil {
		return domain.Order{}, err
	}
	if doctor.Role != domain.RoleDoctor {
		return domain.Order{}, domain.NewAccessDeniedError(string(doctor.Role), "issue medical orders")
	}

	for attempt := 0; attempt < maxOrderNumberAttempts; attempt++ {
		number, err := s.GenerateUniqueOrderNumber(ctx)
		if err != nil {
			return domain.Order{}, err
		}
		order := domain.NewOrder(number, patientID, doctorID, s.now())
		for _, item := range items {
			if err := order.AddItem(item); err != nil {
				return domain.Order{}, err
			}
		}
		err = s.orders.Create(ctx, order)
		if err == nil {
			s.publisher.Publish(events.Event{
				Name: events.OrderCreated,
				Key:  number.Value(),
				Payload: map[string]string{
					"patient": patientID.Value(),
					"doctor":  doctorID.Value(),
				},
			})
			return order, nil
		}
		var duplicate *domain.DuplicateEntityError
		if !errors.As(err, &duplicate) {
			return domain.Order{}, err
		}
		// Lost the number to a concurrent order; try a fresh candidate.
	}
	return domain.Order{}, fmt.Errorf("failed to create order after %d number collisions", maxOrderNumberAttempts)
}

func (s *OrderService) GetByNumber(ctx context.Context, number domain.OrderNumber) (domain.Order, error) {
	return s.orders.GetByNumber(ctx, number)
}

func (s *OrderService) GetByPatient(ctx context.Context, patientID domain.Identification) ([]domain.Order, error) {
	return s.orders.GetByPatient(ctx, patientID)
}

// AddItems appends line items to an existing order.
func (s *OrderService) AddItems(ctx context.Context, number domain.OrderNumber, items []domain.OrderItem) (domain.Order, error) {
	if len(items) == 0 {
		return domain.Order{}, domain.NewValidationError("order items", "cannot be empty")
	}
	order, err := s.orders.GetByNumber(ctx, number)
	if err != nil {
		return domain.Order{}, err
	}
	for _, item := range items {
		if err := order.AddItem(item); err != nil {
			return domain.Order{}, err
		}
	}
	if err := s.orders.AppendItems(ctx, order, items); err != nil {
		return domain.Order{}, err
	}
	return order, nil
}
