package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"VidaClinic/database"
	"VidaClinic/domain"
	"VidaClinic/models"

	"gorm.io/gorm"
)

type InventoryRepository struct{}

func NewInventoryRepository() *InventoryRepository {
	return &InventoryRepository{}
}

func (r *InventoryRepository) Create(ctx context.Context, item *models.InventoryItem) error {
	err := database.DB.WithContext(ctx).Create(item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.NewDuplicateEntityError("inventory item", item.Name)
		}
		return fmt.Errorf("failed to create inventory item: %w", err)
	}
	return nil
}

func (r *InventoryRepository) GetByID(ctx context.Context, id uint) (*models.InventoryItem, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var item models.InventoryItem
	err := database.DB.WithContext(ctx).First(&item, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewEntityNotFoundError("inventory item", fmt.Sprint(id))
		}
		return nil, fmt.Errorf("failed to get inventory item: %w", err)
	}
	return &item, nil
}

func (r *InventoryRepository) GetAll(ctx context.Context) ([]models.InventoryItem, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var items []models.InventoryItem
	if err := database.DB.WithContext(ctx).Order("name ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to get inventory items: %w", err)
	}
	return items, nil
}

// AdjustQuantity applies a delta to the stock level, refusing to go
// negative.
func (r *InventoryRepository) AdjustQuantity(ctx context.Context, id uint, delta int) error {
	return database.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item models.InventoryItem
		err := tx.First(&item, "id = ?", id).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.NewEntityNotFoundError("inventory item", fmt.Sprint(id))
			}
			return fmt.Errorf("failed to get inventory item: %w", err)
		}
		if item.Quantity+delta < 0 {
			return domain.NewValidationError("inventory quantity", "cannot go below zero")
		}
		return tx.Model(&item).Update("quantity", item.Quantity+delta).Error
	})
}

func (r *InventoryRepository) Delete(ctx context.Context, id uint) error {
	result := database.DB.WithContext(ctx).Delete(&models.InventoryItem{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete inventory item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewEntityNotFoundError("inventory item", fmt.Sprint(id))
	}
	return nil
}
