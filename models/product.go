package models

import (
	"time"
)

const (
	StatusInStock    = "In Stock"
	StatusOutOfStock = "Out of Stock"
)

// Product corresponds to the 'products' table in the database.
// Status is display-only: it is recomputed from Stock on every read and
// never written to storage.
type Product struct {
	Id        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:255;not null" json:"name"`
	Unit      string    `gorm:"size:100" json:"unit"`
	Category  string    `gorm:"size:100" json:"category"`
	Brand     string    `gorm:"size:100" json:"brand"`
	Stock     int       `gorm:"not null" json:"stock"`
	Status    string    `gorm:"-" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DeriveStatus fills Status from the stored stock count.
func (p *Product) DeriveStatus() {
	if p.Stock == 0 {
		p.Status = StatusOutOfStock
	} else {
		p.Status = StatusInStock
	}
}
