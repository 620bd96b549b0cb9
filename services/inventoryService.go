package services

import (
	"context"

	"VidaClinic/models"
)

type InventoryService struct {
	store InventoryStore
}

func NewInventoryService(store InventoryStore) *InventoryService {
	return &InventoryService{store: store}
}

func (s *InventoryService) Create(ctx context.Context, item *models.InventoryItem) error {
	return s.store.Create(ctx, item)
}

func (s *InventoryService) GetByID(ctx context.Context, id uint) (*models.InventoryItem, error) {
	return s.store.GetByID(ctx, id)
}

func (s *InventoryService) GetAll(ctx context.Context) ([]models.InventoryItem, error) {
	return s.store.GetAll(ctx)
}

func (s *InventoryService) AdjustQuantity(ctx context.Context, id uint, delta int) error {
	return s.store.AdjustQuantity(ctx, id, delta)
}

func (s *InventoryService) Delete(ctx context.Context, id uint) error {
	return s.store.Delete(ctx, id)
}
