package reporting

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/mdiallo/stockroom/internal/domain/models"
)

const (
	reportHeader = "--- Items Report ---"
	reportFooter = "--------------------"
)

// DefaultLowThreshold is the quantity below which an item counts as low when
// the caller does not supply a threshold of its own.
const DefaultLowThreshold = 5

// Service derives read-only views over a stock mapping.
type Service struct {
	logger *zap.Logger
}

// NewService wires a new reporting service instance.
func NewService(logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{logger: logger}
}

// LowItems returns the names of items whose quantity is strictly below
// threshold, in stock insertion order. Pure, no side effects.
func (s *Service) LowItems(stock *models.Stock, threshold int) []string {
	result := []string{}
	for _, item := range stock.Items() {
		if item.Quantity < threshold {
			result = append(result, item.Name)
		}
	}
	return result
}

// Render produces the plain-text inventory report: a header line, one
// "item -> quantity" line per entry in insertion order (or an explicit
// empty-inventory message), and a footer line.
func (s *Service) Render(stock *models.Stock) string {
	var b strings.Builder
	b.WriteString(reportHeader)
	b.WriteByte('\n')

	if stock.Len() == 0 {
		b.WriteString("Inventory is empty.")
		b.WriteByte('\n')
	} else {
		for _, item := range stock.Items() {
			fmt.Fprintf(&b, "%s -> %d\n", item.Name, item.Quantity)
		}
	}

	b.WriteString(reportFooter)
	return b.String()
}
