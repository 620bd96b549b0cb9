package services

import (
	"context"
	"time"

	"VidaClinic/domain"
	"VidaClinic/models"
)

// Appointment statuses.
const (
	AppointmentScheduled = "scheduled"
	AppointmentFulfilled = "fulfilled"
	AppointmentCancelled = "cancelled"
)

type AppointmentService struct {
	appointments AppointmentStore
	patients     PatientStore
}

func NewAppointmentService(appointments AppointmentStore, patients PatientStore) *AppointmentService {
	return &AppointmentService{appointments: appointments, patients: patients}
}

func (s *AppointmentService) Schedule(ctx context.Context, patientID, doctorID domain.Identification, at time.Time) (*models.AppointmentRow, error) {
	if exists, err := s.patients.Exists(ctx, patientID); err != nil {
		return nil, err
	} else if !exists {
		return nil, domain.NewEntityNotFoundError("patient", patientID.Value())
	}
	if at.Before(time.Now()) {
		return nil, domain.NewValidationError("appointment", "cannot be scheduled in the past")
	}

	appointment := &models.AppointmentRow{
		PatientID: patientID.Value(),
		DoctorID:  doctorID.Value(),
		DateTime:  at,
		Status:    AppointmentScheduled,
	}
	if err := s.appointments.Create(ctx, appointment); err != nil {
		return nil, err
	}
	return appointment, nil
}

func (s *AppointmentService) GetByPatient(ctx context.Context, patientID domain.Identification) ([]models.AppointmentRow, error) {
	return s.appointments.GetByPatient(ctx, patientID)
}

func (s *AppointmentService) UpdateStatus(ctx context.Context, id uint, status string) error {
	switch status {
	case AppointmentScheduled, AppointmentFulfilled, AppointmentCancelled:
	default:
		return domain.NewValidationError("appointment status", "must be scheduled, fulfilled or cancelled")
	}
	return s.appointments.UpdateStatus(ctx, id, status)
}
