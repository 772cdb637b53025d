package routes

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/mistrimandi/mistri/internal/cart"
	"github.com/mistrimandi/mistri/internal/config"
	"github.com/mistrimandi/mistri/internal/identity"
	"github.com/mistrimandi/mistri/internal/middleware"
	"github.com/mistrimandi/mistri/internal/notification"
	"github.com/mistrimandi/mistri/internal/routing"
	"github.com/mistrimandi/mistri/internal/session"
	"github.com/mistrimandi/mistri/internal/verification"
	"github.com/mistrimandi/mistri/internal/wallet"
	"github.com/mistrimandi/mistri/internal/worker"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	DB     *pgxpool.Pool
	Cache  *redis.Client
	Logger *slog.Logger
}

// Setup is the composition root. It builds one explicit instance of every
// store, the session manager and the routing guard (no package-level
// singletons), restores the persisted session, binds the guard, and wires
// the HTTP surface.
func Setup(app *fiber.App, d Deps) error {
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.Audit(d.Logger))
	if d.Cache != nil {
		app.Use(middleware.Idempotency(d.Cache, d.Cfg.IdempotencyTTL, d.Logger))
	}

	RegisterHealthRoutes(app, d)

	var directory identity.Directory
	if d.DB != nil {
		directory = identity.NewPostgresDirectory(d.DB)
	} else {
		directory = identity.NewMemoryDirectory(identity.SeedDemo()...)
	}

	var sessionStore session.Store
	if d.Cache != nil {
		sessionStore = session.NewRedisStore(d.Cache, "")
	} else {
		sessionStore = session.NewFileStore(d.Cfg.SessionFile)
	}

	fixedCode := ""
	if d.Cfg.IsDev() {
		fixedCode = session.DevOTPCode
	}
	issuer := session.NewOTPIssuer(d.Cfg.OTPTTL, fixedCode)
	notifier := notification.NewLoggerNotifier(d.Logger)

	sessions := session.NewManager(session.Deps{
		Store:       sessionStore,
		Directory:   directory,
		Issuer:      issuer,
		Notifier:    notifier,
		Logger:      d.Logger,
		SendLatency: d.Cfg.OTPLatency,
		DevLogin:    d.Cfg.DevLogin,
	})

	carts := cart.NewStore()
	wallets := wallet.NewStore()
	availability := worker.NewStore()
	counters := notification.NewCounters()
	queue := verification.NewQueue()

	nav := routing.NewMemoryNavigator(routing.GroupOther)
	guard := routing.NewGuard(sessions, nav, d.Logger)

	// One storage consultation per process start, then the guard reacts to
	// every session transition from here on.
	sessions.Restore(context.Background())
	guard.Bind(context.Background())

	api := app.Group("/api/v1")
	api.Get("/ping", func(c *fiber.Ctx) error {
		reqID, _ := c.Locals("X-Request-ID").(string)
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"status":     "ok",
			"request_id": reqID,
			"timestamp":  time.Now().UTC().Format(time.RFC3339Nano),
		})
	})

	RegisterAuthRoutes(api, session.NewHandler(sessions), middleware.OTPRateLimit(d.Cache, 5), d.Cfg.DevLogin)
	RegisterCartRoutes(api, cart.NewHandler(carts))
	RegisterWalletRoutes(api, wallet.NewHandler(wallets))
	RegisterWorkerRoutes(api, worker.NewHandler(availability))
	RegisterNotificationRoutes(api, notification.NewHandler(counters))
	RegisterAdminRoutes(api, verification.NewHandler(queue, counters))
	RegisterNavigationRoutes(api, routing.NewHandler(nav, guard))

	return nil
}
