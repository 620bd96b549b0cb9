package models

import "time"

// InventoryItem tracks consumables and medication stock.
type InventoryItem struct {
	ID        uint      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name      string    `gorm:"column:name;unique;not null;index" json:"name"`
	Quantity  int       `gorm:"column:quantity;not null" json:"quantity"`
	UnitCost  int64     `gorm:"column:unit_cost;not null" json:"unit_cost"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (InventoryItem) TableName() string {
	return "inventory_item"
}
