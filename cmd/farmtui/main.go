// farmtui is a terminal front-end for the farm management backend:
// egg production, sales, feed, tasks and finances in one place.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/NirunaShyamal/farm-sub001/internal/api"
	"github.com/NirunaShyamal/farm-sub001/internal/config"
	"github.com/NirunaShyamal/farm-sub001/internal/models"
	"github.com/NirunaShyamal/farm-sub001/internal/store"
	"github.com/NirunaShyamal/farm-sub001/internal/tui"
)

// Build information (set via ldflags)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	var (
		configPath  = flag.String("config", "", "Path to configuration file")
		showVersion = flag.Bool("version", false, "Show version and exit")
		debugMode   = flag.Bool("debug", false, "Enable debug logging")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("farmtui version %s (built %s)\n", Version, BuildTime)
		os.Exit(0)
	}

	// Optional .env for FARM_API_URL and friends.
	_ = godotenv.Load()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		slog.Info("received shutdown signal", "signal", sig)
		cancel()

		time.AfterFunc(10*time.Second, func() {
			slog.Error("forced shutdown after timeout")
			os.Exit(1)
		})
	}()

	if err := run(ctx, *configPath, *debugMode); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath string, debugMode bool) error {
	cfg, cfgPath, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	logLevel := slog.LevelInfo
	if debugMode {
		logLevel = slog.LevelDebug
	} else {
		switch cfg.Logging.Level {
		case "debug":
			logLevel = slog.LevelDebug
		case "warn":
			logLevel = slog.LevelWarn
		case "error":
			logLevel = slog.LevelError
		}
	}

	// The TUI owns the terminal, so logs go to a file.
	var logHandler slog.Handler
	if cfg.Logging.File != "" {
		logFile, err := os.OpenFile(cfg.Logging.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0640)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer logFile.Close()

		if cfg.Logging.JSON {
			logHandler = slog.NewJSONHandler(logFile, &slog.HandlerOptions{Level: logLevel})
		} else {
			logHandler = slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: logLevel})
		}
	} else {
		logHandler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})
	}
	slog.SetDefault(slog.New(logHandler))

	slog.Info("farmtui starting",
		"version", Version,
		"build_time", BuildTime,
		"config_path", cfgPath,
		"api", cfg.API.BaseURL,
	)

	client := api.NewClient(cfg.API.BaseURL)

	tui.Version = Version
	tui.BuildTime = BuildTime

	if err := tui.Run(ctx, client, cfg, buildStores(client)); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	slog.Info("farmtui shutdown complete")
	return nil
}

// buildStores wires each collection to its store. Egg production and
// feed inventory live on the backend; sales, tasks and finances are
// session-local with starter records.
func buildStores(client *api.Client) tui.Stores {
	return tui.Stores{
		Production: store.NewRemote[models.ProductionRecord](client, api.CollectionEggProduction),
		Feed:       store.NewRemote[models.FeedItem](client, api.CollectionFeedInventory),
		Sales: store.NewLocal(seedSales(), func(o models.SalesOrder, id string) models.SalesOrder {
			o.ID = id
			return o
		}),
		Tasks: store.NewLocal(seedTasks(), func(t models.Task, id string) models.Task {
			t.ID = id
			return t
		}),
		Finance: store.NewLocal(seedFinance(), func(r models.FinancialRecord, id string) models.FinancialRecord {
			r.ID = id
			return r
		}),
	}
}

func seedSales() []models.SalesOrder {
	return []models.SalesOrder{
		{ID: "1", Date: "2026-08-13", Customer: "Sunrise Grocers", Product: models.ProductFreshEggs, Quantity: 60, Price: decimal.NewFromFloat(45), Status: models.OrderCompleted},
		{ID: "2", Date: "2026-08-14", Customer: "Hilltop Bakery", Product: models.ProductOrganicEggs, Quantity: 30, Price: decimal.NewFromFloat(62.50), Status: models.OrderPending},
	}
}

func seedTasks() []models.Task {
	return []models.Task{
		{ID: "1", Date: "15/08/26", TaskDescription: "Morning egg collection", Category: models.TaskCollection, AssignedTo: "Kasun", Time: "06:00 AM", Status: models.TaskPending},
		{ID: "2", Date: "15/08/26", TaskDescription: "Clean coop 2", Category: models.TaskCleaning, AssignedTo: "Nimal", Time: "02:00 PM", Status: models.TaskInProgress},
	}
}

func seedFinance() []models.FinancialRecord {
	return []models.FinancialRecord{
		{ID: "1", Date: "2026-08-13", Description: "Egg sales - Sunrise Grocers", Category: models.CategoryIncome, Amount: decimal.NewFromFloat(2700), PaymentMethod: models.PaymentBankTransfer, Reference: "INV-0081"},
		{ID: "2", Date: "2026-08-10", Description: "Layer mash restock", Category: models.CategoryExpense, Amount: decimal.NewFromFloat(1850), PaymentMethod: models.PaymentCash},
	}
}
