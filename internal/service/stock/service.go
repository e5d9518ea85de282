package stock

import (
	"errors"

	"go.uber.org/zap"

	"github.com/mdiallo/stockroom/internal/domain/models"
)

// ErrInvalidItem indicates an item name that is not a non-empty string.
var ErrInvalidItem = errors.New("invalid item name")

// ErrInvalidQuantity indicates a non-positive quantity.
var ErrInvalidQuantity = errors.New("invalid quantity")

// ErrItemNotFound indicates a removal against an item not in stock.
var ErrItemNotFound = errors.New("item not found")

// Service applies validated mutations to a stock mapping. It keeps no state
// of its own; the mapping is passed explicitly to every operation.
//
// Operations absorb their failures: a rejected mutation is logged and the
// mapping is left untouched, so callers always continue with a valid stock.
// The sentinel errors above classify log records, they are never returned.
type Service struct {
	logger *zap.Logger
}

// NewService wires a new stock mutation service.
func NewService(logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{logger: logger}
}

// Add records qty additional units of item. An empty item name or a
// non-positive qty is rejected without mutating the stock.
func (s *Service) Add(stock *models.Stock, item string, qty int) {
	if item == "" {
		s.logger.Error("invalid item name, item must be a non-empty string",
			zap.Error(ErrInvalidItem))
		return
	}
	if qty <= 0 {
		s.logger.Warn("quantity to add must be positive, no action taken",
			zap.String("item", item), zap.Int("qty", qty), zap.Error(ErrInvalidQuantity))
		return
	}

	stock.Set(item, stock.Quantity(item)+qty)
	s.logger.Info("added stock",
		zap.String("item", item), zap.Int("qty", qty), zap.Int("total", stock.Quantity(item)))
}

// Remove takes qty units of item out of stock. Removing the full quantity
// deletes the entry; asking for more than is held removes everything that is
// there and logs the over-removal. Argument validation matches Add.
func (s *Service) Remove(stock *models.Stock, item string, qty int) {
	if item == "" {
		s.logger.Error("invalid item name, item must be a non-empty string",
			zap.Error(ErrInvalidItem))
		return
	}
	if qty <= 0 {
		s.logger.Warn("quantity to remove must be positive, no action taken",
			zap.String("item", item), zap.Int("qty", qty), zap.Error(ErrInvalidQuantity))
		return
	}

	if !stock.Has(item) {
		s.logger.Warn("attempted to remove non-existent item",
			zap.String("item", item), zap.Error(ErrItemNotFound))
		return
	}

	current := stock.Quantity(item)
	switch {
	case qty > current:
		s.logger.Warn("over-removal clamped to available stock",
			zap.String("item", item), zap.Int("qty", qty), zap.Int("available", current))
		stock.Delete(item)
		s.logger.Info("removed all stock", zap.String("item", item), zap.Int("qty", current))
	case qty == current:
		stock.Delete(item)
		s.logger.Info("removed all stock, item is now out of stock",
			zap.String("item", item), zap.Int("qty", qty))
	default:
		stock.Set(item, current-qty)
		s.logger.Info("removed stock",
			zap.String("item", item), zap.Int("qty", qty), zap.Int("total", stock.Quantity(item)))
	}
}

// Quantity returns the units held for item, 0 when absent. Pure lookup, no
// failure mode.
func (s *Service) Quantity(stock *models.Stock, item string) int {
	return stock.Quantity(item)
}
