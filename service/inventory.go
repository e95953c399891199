package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/blakekali/blakeprintz/domain"
	"github.com/blakekali/blakeprintz/pkg/idx"
	"github.com/blakekali/blakeprintz/pkg/slogx"
	"github.com/blakekali/blakeprintz/store"
	"github.com/shopspring/decimal"
)

// InventoryService owns the `stock` collection: create, update, delete, and
// the derived low-stock and search views. Same whole-collection
// read-modify-write discipline as UserService, serialized by mu.
type InventoryService struct {
	Store store.Store

	mu sync.Mutex

	// now is swappable in tests.
	now func() time.Time
}

func NewInventoryService(st store.Store) *InventoryService {
	return &InventoryService{Store: st, now: time.Now}
}

// Load returns the stock collection, installing the default seed set the
// first time no collection exists.
func (s *InventoryService) Load(ctx context.Context) ([]domain.StockItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked(ctx)
}

func (s *InventoryService) loadLocked(ctx context.Context) ([]domain.StockItem, error) {
	items, found, err := loadJSON[[]domain.StockItem](ctx, s.Store, keyStock)
	if err != nil {
		return nil, err
	}
	if found {
		return items, nil
	}

	items = seedStock(s.now().UTC())
	if err := storeJSON(ctx, s.Store, keyStock, items); err != nil {
		return nil, err
	}
	slogx.FromContext(ctx).Info("stock seeded", slog.Int("count", len(items)))
	return items, nil
}

// Save upserts a stock item: an id matching an existing record replaces it
// in place, anything else appends as a new record with a generated id.
// Either way LastUpdated is refreshed. Validation failures write nothing.
func (s *InventoryService) Save(ctx context.Context, item domain.StockItem) (domain.StockItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := validateStockItem(item); err != nil {
		return domain.StockItem{}, err
	}

	items, err := s.loadLocked(ctx)
	if err != nil {
		return domain.StockItem{}, err
	}

	item.Name = strings.TrimSpace(item.Name)
	item.LastUpdated = s.now().UTC()

	replaced := false
	for i := range items {
		if items[i].ID == item.ID {
			items[i] = item
			replaced = true
			break
		}
	}
	if !replaced {
		item.ID = idx.New()
		items = append(items, item)
	}

	if err := storeJSON(ctx, s.Store, keyStock, items); err != nil {
		return domain.StockItem{}, err
	}

	slogx.FromContext(ctx).Info("stock item saved",
		slog.String("item_id", item.ID),
		slog.Bool("updated", replaced),
	)
	return item, nil
}

// Remove deletes the item with the given id. Removing an absent id is a
// no-op, matching how the inventory screen behaves on a stale tap.
func (s *InventoryService) Remove(ctx context.Context, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.loadLocked(ctx)
	if err != nil {
		return err
	}

	remaining := items[:0:0]
	for _, it := range items {
		if it.ID != itemID {
			remaining = append(remaining, it)
		}
	}
	if len(remaining) == len(items) {
		return nil
	}

	if err := storeJSON(ctx, s.Store, keyStock, remaining); err != nil {
		return err
	}
	slogx.FromContext(ctx).Info("stock item removed", slog.String("item_id", itemID))
	return nil
}

// LowStock returns the items at or below their minimum quantity. Derived on
// every call; never persisted.
func (s *InventoryService) LowStock(ctx context.Context) ([]domain.StockItem, error) {
	items, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	return LowStockOf(items), nil
}

// Search filters by case-insensitive substring match on the item name.
func (s *InventoryService) Search(ctx context.Context, query string) ([]domain.StockItem, error) {
	items, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return items, nil
	}

	matched := items[:0:0]
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.Name), query) {
			matched = append(matched, it)
		}
	}
	return matched, nil
}

// ParseQuantity converts a form field into a quantity, rejecting malformed
// numbers and negatives.
func ParseQuantity(field, raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Decimal{}, fmt.Errorf("%w: %s is required", domain.ErrValidation, field)
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %s is not a number", domain.ErrValidation, field)
	}
	if d.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("%w: %s must not be negative", domain.ErrValidation, field)
	}
	return d, nil
}

func validateStockItem(item domain.StockItem) error {
	switch {
	case strings.TrimSpace(item.Name) == "":
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	case !domain.ValidStockCategory(item.Category):
		return fmt.Errorf("%w: unknown category %q", domain.ErrValidation, item.Category)
	case !domain.ValidStockUnit(item.Unit):
		return fmt.Errorf("%w: unknown unit %q", domain.ErrValidation, item.Unit)
	case item.Quantity.IsNegative():
		return fmt.Errorf("%w: quantity must not be negative", domain.ErrValidation)
	case item.MinQuantity.IsNegative():
		return fmt.Errorf("%w: minimum quantity must not be negative", domain.ErrValidation)
	}
	return nil
}
