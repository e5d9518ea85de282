package main

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/mdiallo/stockroom/internal/config"
	"github.com/mdiallo/stockroom/internal/domain/models"
	"github.com/mdiallo/stockroom/internal/repository/jsonfile"
	commandsvc "github.com/mdiallo/stockroom/internal/service/commands"
	reportingsvc "github.com/mdiallo/stockroom/internal/service/reporting"
	stocksvc "github.com/mdiallo/stockroom/internal/service/stock"
	"github.com/mdiallo/stockroom/pkg/logger"
)

const usage = `usage: stockroom [command]

commands:
  add <item> <qty>     add units of an item to stock
  remove <item> <qty>  remove units of an item from stock
  qty <item>           show the quantity held for an item
  low [threshold]      list items below the low-stock threshold
  report               print the inventory report
  demo                 run the demo sequence (default)

The inventory file defaults to inventory.json; set STOCKROOM_FILE to
override it.`

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintln(os.Stderr, "stockroom:", err)
		return 1
	}

	baseLogger := logger.Must(logger.New(cfg.Logging.Level))
	defer func() { _ = baseLogger.Sync() }()

	repo := jsonfile.NewJSONFileRepository(cfg.Inventory.Path, baseLogger.Named("repo.jsonfile"))
	stockSvc := stocksvc.NewService(baseLogger.Named("svc.stock"))
	reportingSvc := reportingsvc.NewService(baseLogger.Named("svc.reporting"))
	dispatcher := commandsvc.NewService(repo, stockSvc, reportingSvc, cfg.Inventory.LowThreshold, baseLogger.Named("svc.commands"))

	output, err := dispatcher.HandleCommand(models.ParseCommand(args))
	if err != nil {
		baseLogger.Error("command failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, usage)
		if errors.Is(err, commandsvc.ErrInvalidArguments) || errors.Is(err, commandsvc.ErrUnsupportedCommand) {
			return 2
		}
		return 1
	}

	fmt.Println(output)
	return 0
}
