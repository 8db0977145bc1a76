package inventory

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/umar710/Inventory-Management-Backend/models"
)

// Ledger is the append-only inventory history store. Entries are never
// updated or deleted and outlive the product they describe.
type Ledger struct {
	db *gorm.DB
}

func NewLedger(db *gorm.DB) *Ledger {
	return &Ledger{db: db}
}

// Append records one stock transition. The timestamp comes from the
// caller, not the store, so the ledger reflects when the mutation
// actually happened.
func (l *Ledger) Append(ctx context.Context, productID uint, oldQty, newQty int, actor string, at time.Time) (*models.InventoryHistory, error) {
	entry := &models.InventoryHistory{
		ProductId:   productID,
		OldQuantity: oldQty,
		NewQuantity: newQty,
		ChangeDate:  at,
		UserInfo:    actor,
	}
	if err := l.db.WithContext(ctx).Create(entry).Error; err != nil {
		return nil, translate(err)
	}
	return entry, nil
}

// ListFor returns the product's history, most recent first. Unknown
// product ids yield an empty slice, not an error.
func (l *Ledger) ListFor(ctx context.Context, productID uint) ([]models.InventoryHistory, error) {
	entries := []models.InventoryHistory{}
	err := l.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("change_date DESC").
		Find(&entries).Error
	if err != nil {
		return nil, translate(err)
	}
	return entries, nil
}
