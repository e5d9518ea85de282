package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/mdiallo/stockroom/internal/domain/models"
	"github.com/mdiallo/stockroom/internal/repository/jsonfile"
	reportingsvc "github.com/mdiallo/stockroom/internal/service/reporting"
	stocksvc "github.com/mdiallo/stockroom/internal/service/stock"
)

// ErrInvalidArguments indicates the command payload could not be parsed.
var ErrInvalidArguments = errors.New("invalid command arguments")

// ErrUnsupportedCommand indicates we do not support the requested command.
var ErrUnsupportedCommand = errors.New("unsupported command")

// Dispatcher executes parsed commands against the persisted stock.
type Dispatcher interface {
	HandleCommand(cmd models.Command) (string, error)
}

// Service implements the Dispatcher interface. Each command loads the stock,
// applies the operation and saves back when the operation mutates. The text
// returned is what the caller prints to stdout.
type Service struct {
	repo         jsonfile.Repository
	stock        *stocksvc.Service
	reporting    *reportingsvc.Service
	lowThreshold int
	logger       *zap.Logger
}

// NewService constructs a command dispatcher.
func NewService(repo jsonfile.Repository, stock *stocksvc.Service, reporting *reportingsvc.Service, lowThreshold int, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		repo:         repo,
		stock:        stock,
		reporting:    reporting,
		lowThreshold: lowThreshold,
		logger:       logger,
	}
}

// HandleCommand applies the command and returns the output to print.
// Usage problems return ErrInvalidArguments; anything unrecognized returns
// ErrUnsupportedCommand. Mutation and persistence failures do not surface
// here, they are absorbed and logged by the underlying services.
func (s *Service) HandleCommand(cmd models.Command) (string, error) {
	s.logger.Debug("dispatching command", zap.String("command", string(cmd.Type)), zap.Strings("args", cmd.Args))

	switch cmd.Type {
	case models.CommandAdd:
		item, qty, err := itemAndQuantity(cmd.Args)
		if err != nil {
			return "", err
		}
		stock := s.repo.Load()
		s.stock.Add(stock, item, qty)
		s.repo.Save(stock)
		return fmt.Sprintf("%s -> %d", item, stock.Quantity(item)), nil

	case models.CommandRemove:
		item, qty, err := itemAndQuantity(cmd.Args)
		if err != nil {
			return "", err
		}
		stock := s.repo.Load()
		s.stock.Remove(stock, item, qty)
		s.repo.Save(stock)
		return fmt.Sprintf("%s -> %d", item, stock.Quantity(item)), nil

	case models.CommandQty:
		if len(cmd.Args) != 1 {
			return "", fmt.Errorf("%w: qty expects exactly one item name", ErrInvalidArguments)
		}
		stock := s.repo.Load()
		item := cmd.Args[0]
		return fmt.Sprintf("%s -> %d", item, s.stock.Quantity(stock, item)), nil

	case models.CommandLow:
		threshold := s.lowThreshold
		if len(cmd.Args) > 0 {
			parsed, err := strconv.Atoi(cmd.Args[0])
			if err != nil {
				return "", fmt.Errorf("%w: threshold %q is not an integer", ErrInvalidArguments, cmd.Args[0])
			}
			threshold = parsed
		}
		stock := s.repo.Load()
		low := s.reporting.LowItems(stock, threshold)
		return fmt.Sprintf("Low items (threshold %d): [%s]", threshold, strings.Join(low, " ")), nil

	case models.CommandReport:
		return s.reporting.Render(s.repo.Load()), nil

	case models.CommandDemo:
		return s.runDemo(), nil

	default:
		return "", ErrUnsupportedCommand
	}
}

func itemAndQuantity(args []string) (string, int, error) {
	if len(args) != 2 {
		return "", 0, fmt.Errorf("%w: expected <item> <qty>", ErrInvalidArguments)
	}
	qty, err := strconv.Atoi(args[1])
	if err != nil {
		return "", 0, fmt.Errorf("%w: quantity %q is not an integer", ErrInvalidArguments, args[1])
	}
	return args[0], qty, nil
}

// runDemo replays the original demo sequence: a report of whatever was
// persisted, a batch of valid and invalid mutations, quantity checks, a
// low-stock check and a final report, saved at the end.
func (s *Service) runDemo() string {
	stock := s.repo.Load()

	var out strings.Builder
	out.WriteString(s.reporting.Render(stock))
	out.WriteByte('\n')

	s.stock.Add(stock, "apple", 10)
	s.stock.Add(stock, "banana", 20)
	s.stock.Add(stock, "apple", 5)

	// Invalid inputs, logged and skipped.
	s.stock.Add(stock, "banana", -2)
	s.stock.Add(stock, "", 10)
	if _, _, err := itemAndQuantity([]string{"pear", "ten"}); err != nil {
		s.logger.Error("rejected demo input", zap.Error(err))
	}

	s.stock.Remove(stock, "apple", 3)
	s.stock.Remove(stock, "orange", 1)
	s.stock.Remove(stock, "banana", 25)

	fmt.Fprintf(&out, "Apple stock: %d\n", s.stock.Quantity(stock, "apple"))
	fmt.Fprintf(&out, "Banana stock: %d\n", s.stock.Quantity(stock, "banana"))
	fmt.Fprintf(&out, "Orange stock: %d\n", s.stock.Quantity(stock, "orange"))

	low := s.reporting.LowItems(stock, 15)
	fmt.Fprintf(&out, "Low items (threshold 15): [%s]\n", strings.Join(low, " "))

	out.WriteString(s.reporting.Render(stock))
	s.repo.Save(stock)

	return out.String()
}
