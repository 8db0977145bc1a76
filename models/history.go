package models

import (
	"time"
)

// InventoryHistory is one append-only audit entry for a product's stock
// or descriptive-field change. ProductId is a weak reference: entries are
// kept after the product itself is deleted, so there is no foreign key.
type InventoryHistory struct {
	Id          uint      `gorm:"primaryKey" json:"id"`
	ProductId   uint      `gorm:"index;not null" json:"product_id"`
	OldQuantity int       `json:"old_quantity"`
	NewQuantity int       `json:"new_quantity"`
	ChangeDate  time.Time `gorm:"index" json:"change_date"`
	UserInfo    string    `gorm:"size:255" json:"user_info"`
}

func (InventoryHistory) TableName() string {
	return "inventory_history"
}
