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

const InvoiceCacheExpiry = 24 * time.Hour

type InvoiceRepository struct {
	cache *cache.Cache
}

func NewInvoiceRepository(cache *cache.Cache) *InvoiceRepository {
	return &InvoiceRepository{cache: cache}
}

// Save stores the derived snapshot. Invoices are write-once.
func (r *InvoiceRepository) Save(ctx context.Context, invoice domain.Invoice) error {
	row := models.ToInvoiceRow(invoice)
	err := database.DB.WithContext(ctx).Create(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.NewDuplicateEntityError("invoice", row.ID)
		}
		return fmt.Errorf("failed to save invoice: %w", err)
	}
	return nil
}

func (r *InvoiceRepository) GetByID(ctx context.Context, id string) (domain.Invoice, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.invoiceCacheKey(id)
	var cached models.InvoiceRow
	if found, err := r.cache.GetJSON(ctx, cacheKey, &cached); err != nil {
		log.Printf("Failed to get invoice from cache: %v", err)
	} else if found {
		return models.FromInvoiceRow(cached)
	}

	var row models.InvoiceRow
	err := database.DB.WithContext(ctx).Preload("Lines").First(&row, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Invoice{}, domain.NewEntityNotFoundError("invoice", id)
		}
		return domain.Invoice{}, fmt.Errorf("failed to get invoice: %w", err)
	}

	if err := r.cache.SetJSON(ctx, cacheKey, row, InvoiceCacheExpiry); err != nil {
		log.Printf("Failed to set invoice in cache: %v", err)
	}
	return models.FromInvoiceRow(row)
}

// CopayPaidInYear sums the copays already charged to a patient in the
// calendar year of the given date. Feeds the annual-cap rule.
func (r *InvoiceRepository) CopayPaidInYear(ctx context.Context, patientID domain.Identification, at time.Time) (int64, error) {
	yearStart := time.Date(at.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := yearStart.AddDate(1, 0, 0)

	var total int64
	err := database.DB.WithContext(ctx).Model(&models.InvoiceRow{}).
		Where("patient_id = ? AND issued_at >= ? AND issued_at < ?", patientID.Value(), yearStart, yearEnd).
		Select("COALESCE(SUM(copay), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum year-to-date copay: %w", err)
	}
	return total, nil
}

func (r *InvoiceRepository) GetByPatient(ctx context.Context, patientID domain.Identification) ([]domain.Invoice, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var rows []models.InvoiceRow
	err := database.DB.WithContext(ctx).Preload("Lines").
		Where("patient_id = ?", patientID.Value()).
		Order("issued_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get invoices for patient: %w", err)
	}

	invoices := make([]domain.Invoice, 0, len(rows))
	for _, row := range rows {
		invoice, err := models.FromInvoiceRow(row)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, invoice)
	}
	return invoices, nil
}

func (r *InvoiceRepository) invoiceCacheKey(id string) string {
	return fmt.Sprintf("invoice_cache:%s", id)
}
