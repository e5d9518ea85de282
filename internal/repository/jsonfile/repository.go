package jsonfile

import (
	"encoding/json"
	"errors"
	"os"

	"go.uber.org/zap"

	"github.com/mdiallo/stockroom/internal/domain/models"
)

// Repository defines the persistence operations for the stock mapping.
//
// Neither operation returns an error: every failure path is logged and
// absorbed, and Load degrades to an empty stock. Startup is never blocked by
// a missing or corrupt inventory file, and callers always hold a valid
// mapping. Corruption therefore costs the previous contents; the trade is
// availability over failure signaling, inherited from the original design.
type Repository interface {
	Load() *models.Stock
	Save(stock *models.Stock)
}

// JSONFileRepository implements Repository on a single human-readable JSON
// file, read and written whole.
type JSONFileRepository struct {
	path   string
	logger *zap.Logger
}

// NewJSONFileRepository builds a repository persisting to the given path.
func NewJSONFileRepository(path string, logger *zap.Logger) *JSONFileRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &JSONFileRepository{path: path, logger: logger}
}

// Load reads the inventory file and returns the decoded stock mapping.
// A missing or empty file yields an empty stock with a warning; a corrupt
// file or any other read fault yields an empty stock with an error log.
func (r *JSONFileRepository) Load() *models.Stock {
	stock := models.NewStock()

	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			r.logger.Warn("inventory file not found, starting with an empty inventory", zap.String("path", r.path))
			return stock
		}
		r.logger.Error("failed to read inventory file, starting with an empty inventory", zap.String("path", r.path), zap.Error(err))
		return stock
	}

	if len(data) == 0 {
		r.logger.Warn("inventory file is empty, initializing empty inventory", zap.String("path", r.path))
		return stock
	}

	if err := json.Unmarshal(data, stock); err != nil {
		r.logger.Error("failed to decode inventory file, file may be corrupt, starting with an empty inventory", zap.String("path", r.path), zap.Error(err))
		return models.NewStock()
	}

	r.logger.Info("inventory loaded", zap.String("path", r.path), zap.Int("items", stock.Len()))
	return stock
}

// Save writes the stock mapping to the inventory file as indented JSON with
// keys in insertion order. On failure it logs an error and returns; the
// in-memory stock is unaffected.
func (r *JSONFileRepository) Save(stock *models.Stock) {
	data, err := json.MarshalIndent(stock, "", "    ")
	if err != nil {
		r.logger.Error("failed to encode inventory", zap.String("path", r.path), zap.Error(err))
		return
	}

	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		r.logger.Error("failed to write inventory file", zap.String("path", r.path), zap.Error(err))
		return
	}

	r.logger.Info("inventory saved", zap.String("path", r.path), zap.Int("items", stock.Len()))
}
