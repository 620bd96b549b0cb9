package services

import (
	"context"

	"VidaClinic/domain"
	"VidaClinic/events"
)

type PatientService struct {
	store     PatientStore
	publisher EventSink
}

func NewPatientService(store PatientStore, publisher EventSink) *PatientService {
	return &PatientService{store: store, publisher: publisher}
}

// Register persists a new patient. A second registration with the same
// identification fails with DuplicateEntityError and leaves the first
// untouched.
func (s *PatientService) Register(ctx context.Context, patient domain.Patient) (domain.Patient, error) {
	exists, err := s.store.Exists(ctx, patient.Identification)
	if err != nil {
		return domain.Patient{}, err
	}
	if exists {
		return domain.Patient{}, domain.NewDuplicateEntityError("patient", patient.Identification.Value())
	}
	if err := s.store.Create(ctx, patient); err != nil {
		return domain.Patient{}, err
	}

	s.publisher.Publish(events.Event{
		Name: events.PatientRegistered,
		Key:  patient.Identification.Value(),
	})
	return patient, nil
}

func (s *PatientService) GetByID(ctx context.Context, id domain.Identification) (domain.Patient, error) {
	return s.store.GetByID(ctx, id)
}

func (s *PatientService) GetAll(ctx context.Context) ([]domain.Patient, error) {
	return s.store.GetAll(ctx)
}

// Update merges the partial update into the stored aggregate; unspecified
// fields keep their prior values and the identification never changes.
func (s *PatientService) Update(ctx context.Context, id domain.Identification, update domain.PatientUpdate) (domain.Patient, error) {
	existing, err := s.store.GetByID(ctx, id)
	if err != nil {
		return domain.Patient{}, err
	}
	merged := existing.Merge(update)
	if err := s.store.Update(ctx, merged); err != nil {
		return domain.Patient{}, err
	}
	return merged, nil
}

func (s *PatientService) Delete(ctx context.Context, id domain.Identification) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.publisher.Publish(events.Event{
		Name: events.PatientDeleted,
		Key:  id.Value(),
	})
	return nil
}
