package routes

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"

	"github.com/tinsise/borderless/internal/config"
	"github.com/tinsise/borderless/internal/fx"
	"github.com/tinsise/borderless/internal/journal"
	"github.com/tinsise/borderless/internal/ledger"
	"github.com/tinsise/borderless/internal/middleware"
	"github.com/tinsise/borderless/internal/notification"
	"github.com/tinsise/borderless/internal/wallet"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	Cache  *redis.Client
	Logger *slog.Logger
}

// Setup configures middlewares and all application routes. The rate table,
// wallet store and journal are built here and live for the process lifetime.
func Setup(app *fiber.App, d Deps) error {
	pairs, err := fx.ParsePairs(d.Cfg.FXRates)
	if err != nil {
		return err
	}
	rates, err := fx.NewTable(fx.ParseCurrencies(d.Cfg.Currencies), pairs)
	if err != nil {
		return err
	}

	// Middlewares
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(cors.New())
	app.Use(middleware.Audit(d.Logger))
	if d.Cache != nil {
		app.Use(middleware.Idempotency(d.Cache, d.Cfg.IdempotencyTTL, d.Logger))
	}

	RegisterHealthRoutes(app, d)

	// Services and handlers
	store := wallet.NewMemoryStore(rates.Currencies())
	jrnl := journal.New()
	notifier := notification.NewLoggerNotifier(d.Logger)
	ledgerSvc := ledger.NewService(store, rates, jrnl, notifier)

	ledgerHandler := ledger.NewHandler(ledgerSvc)
	journalHandler := journal.NewHandler(jrnl)

	// API routes
	api := app.Group("/api/v1")
	api.Get("/ping", func(c *fiber.Ctx) error {
		reqID, _ := c.Locals("X-Request-ID").(string)
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"status":     "ok",
			"request_id": reqID,
			"timestamp":  time.Now().UTC().Format(time.RFC3339Nano),
		})
	})

	RegisterWalletRoutes(api, ledgerHandler)
	RegisterLedgerRoutes(api, ledgerHandler)
	RegisterTransactionRoutes(api, journalHandler)

	return nil
}
