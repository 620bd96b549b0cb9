package repositories

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"VidaClinic/cache"
	"VidaClinic/database"
	"VidaClinic/domain"
	"VidaClinic/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PatientCacheExpiry = 24 * time.Hour
	patientsCacheKey   = "patients_cache"
)

type PatientRepository struct {
	cache *cache.Cache
}

func NewPatientRepository(cache *cache.Cache) *PatientRepository {
	return &PatientRepository{cache: cache}
}

// Create persists a new patient. The identification is the natural key; a
// Redis lock plus an existence check inside the transaction keep
// concurrent registrations from racing past each other.
func (r *PatientRepository) Create(ctx context.Context, patient domain.Patient) error {
	lockKey := fmt.Sprintf("patient_lock:%s", patient.Identification.Value())
	lockValue := uuid.New().String()

	locked, err := database.NewLock(ctx, lockKey, lockValue, 10*time.Second)
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !locked {
		return domain.NewDuplicateEntityError("patient", patient.Identification.Value())
	}
	defer func() {
		if err := database.ReleaseLock(ctx, lockKey, lockValue); err != nil {
			log.Printf("Failed to release lock: %v", err)
		}
	}()

	row := models.ToPatientRow(patient)
	err = database.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.PatientRow
		err := tx.Select("id").First(&existing, "id = ?", row.ID).Error
		if err == nil {
			return domain.NewDuplicateEntityError("patient", row.ID)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check for existing patient: %w", err)
		}
		if err := tx.Create(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return domain.NewDuplicateEntityError("patient", row.ID)
			}
			return fmt.Errorf("failed to create patient: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.invalidate(ctx, row.ID)
	return nil
}

// GetByID reads through the cache; cache failures degrade to a direct read.
func (r *PatientRepository) GetByID(ctx context.Context, id domain.Identification) (domain.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.patientCacheKey(id.Value())
	var cached models.PatientRow
	if found, err := r.cache.GetJSON(ctx, cacheKey, &cached); err != nil {
		log.Printf("Failed to get patient from cache: %v", err)
	} else if found {
		return models.FromPatientRow(cached)
	}

	var row models.PatientRow
	err := database.DB.WithContext(ctx).First(&row, "id = ?", id.Value()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Patient{}, domain.NewEntityNotFoundError("patient", id.Value())
		}
		return domain.Patient{}, fmt.Errorf("failed to get patient: %w", err)
	}

	if err := r.cache.SetJSON(ctx, cacheKey, row, PatientCacheExpiry); err != nil {
		log.Printf("Failed to set patient in cache: %v", err)
	}
	return models.FromPatientRow(row)
}

func (r *PatientRepository) GetAll(ctx context.Context) ([]domain.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var rows []models.PatientRow
	if found, err := r.cache.GetJSON(ctx, patientsCacheKey, &rows); err != nil {
		log.Printf("Failed to get patients from cache: %v", err)
	} else if !found {
		if err := database.DB.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
			return nil, fmt.Errorf("failed to get all patients: %w", err)
		}
		if err := r.cache.SetJSON(ctx, patientsCacheKey, rows, PatientCacheExpiry); err != nil {
			log.Printf("Failed to set patients in cache: %v", err)
		}
	}

	patients := make([]domain.Patient, 0, len(rows))
	for _, row := range rows {
		patient, err := models.FromPatientRow(row)
		if err != nil {
			return nil, err
		}
		patients = append(patients, patient)
	}
	return patients, nil
}

// Update replaces the stored aggregate. The caller has already merged
// partial fields; the identification never changes.
func (r *PatientRepository) Update(ctx context.Context, patient domain.Patient) error {
	row := models.ToPatientRow(patient)
	result := database.DB.WithContext(ctx).Model(&models.PatientRow{}).Where("id = ?", row.ID).Updates(map[string]interface{}{
		"full_name":            row.FullName,
		"date_of_birth":        row.DateOfBirth,
		"gender":               row.Gender,
		"address":              row.Address,
		"phone":                row.Phone,
		"email":                row.Email,
		"username":             row.Username,
		"password_hash":        row.PasswordHash,
		"contact_name":         row.ContactName,
		"contact_relationship": row.ContactRelationship,
		"contact_phone":        row.ContactPhone,
		"insurance_company":    row.InsuranceCompany,
		"insurance_policy_no":  row.InsurancePolicyNo,
		"insurance_active":     row.InsuranceActive,
		"insurance_end_date":   row.InsuranceEndDate,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update patient: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewEntityNotFoundError("patient", row.ID)
	}

	r.invalidate(ctx, row.ID)
	return nil
}

func (r *PatientRepository) Delete(ctx context.Context, id domain.Identification) error {
	result := database.DB.WithContext(ctx).Delete(&models.PatientRow{}, "id = ?", id.Value())
	if result.Error != nil {
		return fmt.Errorf("failed to delete patient: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewEntityNotFoundError("patient", id.Value())
	}

	r.invalidate(ctx, id.Value())
	return nil
}

// Exists checks presence without loading the aggregate.
func (r *PatientRepository) Exists(ctx context.Context, id domain.Identification) (bool, error) {
	var count int64
	err := database.DB.WithContext(ctx).Model(&models.PatientRow{}).Where("id = ?", id.Value()).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check patient existence: %w", err)
	}
	return count > 0, nil
}

func (r *PatientRepository) invalidate(ctx context.Context, id string) {
	if err := r.cache.DeleteBatch(ctx, r.patientCacheKey(id), patientsCacheKey); err != nil {
		log.Printf("Failed to invalidate patient cache: %v", err)
	}
}

func (r *PatientRepository) patientCacheKey(id string) string {
	return fmt.Sprintf("patient_cache:%s", id)
}
