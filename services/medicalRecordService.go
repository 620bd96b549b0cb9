package services

import (
	"context"
	"time"

	"VidaClinic/domain"
)

type MedicalRecordService struct {
	records  MedicalRecordStore
	patients PatientStore
}

func NewMedicalRecordService(records MedicalRecordStore, patients PatientStore) *MedicalRecordService {
	return &MedicalRecordService{records: records, patients: patients}
}

// AddEntry appends a dated entry to a patient's clinical history. Entries
// are append-only; a second entry on the same day is a conflict.
func (s *MedicalRecordService) AddEntry(ctx context.Context, patientID domain.Identification, date time.Time, entry domain.RecordEntry) error {
	if exists, err := s.patients.Exists(ctx, patientID); err != nil {
		return err
	} else if !exists {
		return domain.NewEntityNotFoundError("patient", patientID.Value())
	}
	if entry.Reason == "" {
		return domain.NewValidationError("record entry", "reason cannot be blank")
	}
	for _, raw := range entry.OrderNumbers {
		if _, err := domain.NewOrderNumber(raw); err != nil {
			return err
		}
	}
	return s.records.AppendEntry(ctx, patientID, date, entry)
}

func (s *MedicalRecordService) GetHistory(ctx context.Context, patientID domain.Identification) (domain.MedicalRecord, error) {
	return s.records.GetByPatient(ctx, patientID)
}
