package inventory

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/umar710/Inventory-Management-Backend/models"
)

const (
	// Actor fallbacks differ between the create and update/delete paths.
	// The asymmetry is inherited behavior and kept on purpose.
	DefaultCreateActor = "System"
	DefaultMutateActor = "Unknown User"

	// EventChannel is the redis pub/sub channel mutation events go to.
	EventChannel = "inventory_updates"
)

// Service glues the catalog and the ledger together. Every successful
// mutating catalog call yields at most one history entry, written before
// the call returns; a failed catalog call yields none.
type Service struct {
	catalog *Catalog
	ledger  *Ledger
	events  *redis.Client // nil disables event publishing
	log     *slog.Logger
	now     func() time.Time
}

func NewService(catalog *Catalog, ledger *Ledger, events *redis.Client, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		catalog: catalog,
		ledger:  ledger,
		events:  events,
		log:     log,
		now:     time.Now,
	}
}

// CreateProduct creates the product and records an initial 0 -> stock
// history entry attributed to the actor.
func (s *Service) CreateProduct(ctx context.Context, in ProductInput, actor string) (*models.Product, error) {
	if actor == "" {
		actor = DefaultCreateActor
	}
	product, err := s.catalog.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	s.appendHistory(ctx, product.Id, 0, product.Stock, actor+" - Created")
	s.publish(ctx, "product_created", product.Id)
	return product, nil
}

// UpdateProduct snapshots the row first, applies the update, then records
// at most one history entry: a stock transition when the quantity moved,
// otherwise a single descriptive-fields entry, otherwise nothing. A stock
// change and a field change in the same call log only the stock entry.
func (s *Service) UpdateProduct(ctx context.Context, id uint, in ProductInput, actor string) (*models.Product, error) {
	if actor == "" {
		actor = DefaultMutateActor
	}
	before, err := s.catalog.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	product, err := s.catalog.Update(ctx, id, in)
	if err != nil {
		return nil, err
	}

	if before.Stock != product.Stock {
		s.appendHistory(ctx, id, before.Stock, product.Stock, actor+" - Stock Update")
	} else if changed := changedFields(before, in); len(changed) > 0 {
		s.appendHistory(ctx, id, before.Stock, product.Stock, actor+" - Updated "+strings.Join(changed, ", "))
	}
	s.publish(ctx, "product_updated", id)
	return product, nil
}

// DeleteProduct removes the product and records a final stock -> 0 entry.
// The entry outlives the product row.
func (s *Service) DeleteProduct(ctx context.Context, id uint, actor string) error {
	if actor == "" {
		actor = DefaultMutateActor
	}
	snapshot, err := s.catalog.Delete(ctx, id)
	if err != nil {
		return err
	}
	s.appendHistory(ctx, id, snapshot.Stock, 0, actor+" - Product Deleted")
	s.publish(ctx, "product_deleted", id)
	return nil
}

func (s *Service) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	return s.catalog.Get(ctx, id)
}

func (s *Service) ListProducts(ctx context.Context, opts ListOptions) (*ListResult, error) {
	return s.catalog.List(ctx, opts)
}

func (s *Service) Categories(ctx context.Context) ([]string, error) {
	return s.catalog.Categories(ctx)
}

// GetHistory returns the audit trail, including entries for products that
// no longer exist.
func (s *Service) GetHistory(ctx context.Context, productID uint) ([]models.InventoryHistory, error) {
	return s.ledger.ListFor(ctx, productID)
}

// changedFields reports which descriptive fields an update touched, in a
// fixed order so the history text is stable.
func changedFields(before *models.Product, in ProductInput) []string {
	var changed []string
	if before.Name != in.Name {
		changed = append(changed, "name")
	}
	if before.Category != in.Category {
		changed = append(changed, "category")
	}
	if before.Brand != in.Brand {
		changed = append(changed, "brand")
	}
	if before.Unit != in.Unit {
		changed = append(changed, "unit")
	}
	return changed
}

// appendHistory records the transition for an already-committed catalog
// write. The write is not rolled back if the append fails; the gap is
// logged so operators can reconcile.
func (s *Service) appendHistory(ctx context.Context, productID uint, oldQty, newQty int, actor string) {
	if _, err := s.ledger.Append(ctx, productID, oldQty, newQty, actor, s.now()); err != nil {
		s.log.Error("history append failed",
			"product_id", productID,
			"old_quantity", oldQty,
			"new_quantity", newQty,
			"error", err,
		)
	}
}

// publish emits a best-effort mutation event for interested subscribers
// (the frontend listens for cache busts). Failures are logged, never
// surfaced.
func (s *Service) publish(ctx context.Context, event string, productID uint) {
	if s.events == nil {
		return
	}
	payload, err := json.Marshal(map[string]interface{}{
		"event":      event,
		"product_id": productID,
	})
	if err != nil {
		return
	}
	if err := s.events.Publish(ctx, EventChannel, payload).Err(); err != nil {
		s.log.Warn("event publish failed", "event", event, "error", err)
	}
}
