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

	"gorm.io/gorm"
)

const AppointmentCacheExpiry = 1 * time.Hour

type AppointmentRepository struct {
	cache *cache.Cache
}

func NewAppointmentRepository(cache *cache.Cache) *AppointmentRepository {
	return &AppointmentRepository{cache: cache}
}

func (r *AppointmentRepository) Create(ctx context.Context, appointment *models.AppointmentRow) error {
	if err := database.DB.WithContext(ctx).Create(appointment).Error; err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	r.invalidate(ctx, appointment.PatientID)
	return nil
}

func (r *AppointmentRepository) GetByID(ctx context.Context, id uint) (*models.AppointmentRow, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var row models.AppointmentRow
	err := database.DB.WithContext(ctx).First(&row, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewEntityNotFoundError("appointment", fmt.Sprint(id))
		}
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}
	return &row, nil
}

func (r *AppointmentRepository) GetByPatient(ctx context.Context, patientID domain.Identification) ([]models.AppointmentRow, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.appointmentsCacheKey(patientID.Value())
	var rows []models.AppointmentRow
	if found, err := r.cache.GetJSON(ctx, cacheKey, &rows); err != nil {
		log.Printf("Failed to get appointments from cache: %v", err)
	} else if found {
		return rows, nil
	}

	err := database.DB.WithContext(ctx).
		Where("patient_id = ?", patientID.Value()).
		Order("date_time ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get appointments: %w", err)
	}

	if err := r.cache.SetJSON(ctx, cacheKey, rows, AppointmentCacheExpiry); err != nil {
		log.Printf("Failed to set appointments in cache: %v", err)
	}
	return rows, nil
}

func (r *AppointmentRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	var row models.AppointmentRow
	err := database.DB.WithContext(ctx).First(&row, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NewEntityNotFoundError("appointment", fmt.Sprint(id))
		}
		return fmt.Errorf("failed to get appointment: %w", err)
	}

	if err := database.DB.WithContext(ctx).Model(&row).Update("status", status).Error; err != nil {
		return fmt.Errorf("failed to update appointment status: %w", err)
	}
	r.invalidate(ctx, row.PatientID)
	return nil
}

func (r *AppointmentRepository) invalidate(ctx context.Context, patientID string) {
	if err := r.cache.Delete(ctx, r.appointmentsCacheKey(patientID)); err != nil {
		log.Printf("Failed to delete appointments cache: %v", err)
	}
}

func (r *AppointmentRepository) appointmentsCacheKey(patientID string) string {
	return fmt.Sprintf("appointments_cache:%s", patientID)
}
