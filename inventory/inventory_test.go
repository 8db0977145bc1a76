package inventory

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/umar710/Inventory-Management-Backend/models"
)

var testDBSeq atomic.Int64

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// One named in-memory database per open; shared cache keeps it alive
	// across the pool's connections. The sequence number keeps stores
	// separate when a test opens more than one.
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"), testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}, &models.InventoryHistory{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	db := newTestDB(t)
	svc := NewService(NewCatalog(db), NewLedger(db), nil, slog.New(slog.NewTextHandler(io.Discard, nil)))

	// Deterministic, strictly increasing clock so change_date ordering
	// is stable within a test.
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	var tick int
	svc.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}
	return svc
}

func mustCreate(t *testing.T, svc *Service, in ProductInput, actor string) *models.Product {
	t.Helper()
	p, err := svc.CreateProduct(context.Background(), in, actor)
	if err != nil {
		t.Fatalf("create %q: %v", in.Name, err)
	}
	return p
}

func historyFor(t *testing.T, svc *Service, id uint) []models.InventoryHistory {
	t.Helper()
	entries, err := svc.GetHistory(context.Background(), id)
	if err != nil {
		t.Fatalf("get history: %v", err)
	}
	return entries
}
