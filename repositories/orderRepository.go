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

const OrderCacheExpiry = 1 * time.Hour

type OrderRepository struct {
	cache *cache.Cache
}

func NewOrderRepository(cache *cache.Cache) *OrderRepository {
	return &OrderRepository{cache: cache}
}

// Create persists a new order header with its items. The unique index on
// the order number is the real uniqueness guarantee; a constraint hit
// comes back as DuplicateEntityError so the number generator can retry
// with a fresh candidate.
func (r *OrderRepository) Create(ctx context.Context, order domain.Order) error {
	row := models.ToOrderRow(order)
	err := database.DB.WithContext(ctx).Create(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.NewDuplicateEntityError("order", row.Number)
		}
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

func (r *OrderRepository) GetByNumber(ctx context.Context, number domain.OrderNumber) (domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.orderCacheKey(number.Value())
	var cached models.OrderRow
	if found, err := r.cache.GetJSON(ctx, cacheKey, &cached); err != nil {
		log.Printf("Failed to get order from cache: %v", err)
	} else if found {
		return models.FromOrderRow(cached)
	}

	var row models.OrderRow
	err := database.DB.WithContext(ctx).Preload("Items").First(&row, "number = ?", number.Value()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Order{}, domain.NewEntityNotFoundError("order", number.Value())
		}
		return domain.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	if err := r.cache.SetJSON(ctx, cacheKey, row, OrderCacheExpiry); err != nil {
		log.Printf("Failed to set order in cache: %v", err)
	}
	return models.FromOrderRow(row)
}

func (r *OrderRepository) GetByPatient(ctx context.Context, patientID domain.Identification) ([]domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var rows []models.OrderRow
	err := database.DB.WithContext(ctx).Preload("Items").
		Where("patient_id = ?", patientID.Value()).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get orders for patient: %w", err)
	}

	orders := make([]domain.Order, 0, len(rows))
	for _, row := range rows {
		order, err := models.FromOrderRow(row)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

// NumberExists checks whether an order number is already taken.
func (r *OrderRepository) NumberExists(ctx context.Context, number domain.OrderNumber) (bool, error) {
	var count int64
	err := database.DB.WithContext(ctx).Model(&models.OrderRow{}).
		Where("number = ?", number.Value()).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check order number: %w", err)
	}
	return count > 0, nil
}

// AppendItems adds line items to an existing order and advances its status.
func (r *OrderRepository) AppendItems(ctx context.Context, order domain.Order, newItems []domain.OrderItem) error {
	row := models.ToOrderRow(order)
	err := database.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		startIdx := len(order.Items) - len(newItems)
		for _, itemRow := range row.Items[startIdx:] {
			item := itemRow
			if err := tx.Create(&item).Error; err != nil {
				return fmt.Errorf("failed to append order item: %w", err)
			}
		}
		result := tx.Model(&models.OrderRow{}).Where("number = ?", row.Number).Update("status", row.Status)
		if result.Error != nil {
			return fmt.Errorf("failed to update order status: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.NewEntityNotFoundError("order", row.Number)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := r.cache.Delete(ctx, r.orderCacheKey(row.Number)); err != nil {
		log.Printf("Failed to delete order cache: %v", err)
	}
	return nil
}

// UpdateStatus records a lifecycle transition, e.g. to INVOICED.
func (r *OrderRepository) UpdateStatus(ctx context.Context, number domain.OrderNumber, status domain.OrderStatus) error {
	result := database.DB.WithContext(ctx).Model(&models.OrderRow{}).
		Where("number = ?", number.Value()).Update("status", string(status))
	if result.Error != nil {
		return fmt.Errorf("failed to update order status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewEntityNotFoundError("order", number.Value())
	}

	if err := r.cache.Delete(ctx, r.orderCacheKey(number.Value())); err != nil {
		log.Printf("Failed to delete order cache: %v", err)
	}
	return nil
}

func (r *OrderRepository) orderCacheKey(number string) string {
	return fmt.Sprintf("order_cache:%s", number)
}
