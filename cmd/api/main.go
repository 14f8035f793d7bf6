// @title           Stockwatch API
// @version         1.0
// @description     Existencias, historial de auditoría y alertas de stock bajo.
// @BasePath        /
// @securityDefinitions.apikey Bearer
// @in              header
// @name            Authorization
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	_ "github.com/jhoicas/stockwatch-api/docs"
	"github.com/jhoicas/stockwatch-api/internal/application/audit"
	"github.com/jhoicas/stockwatch-api/internal/application/auth"
	"github.com/jhoicas/stockwatch-api/internal/application/enquiry"
	"github.com/jhoicas/stockwatch-api/internal/application/inventory"
	"github.com/jhoicas/stockwatch-api/internal/application/notify"
	"github.com/jhoicas/stockwatch-api/internal/application/ports"
	"github.com/jhoicas/stockwatch-api/internal/application/usecase"
	domaininv "github.com/jhoicas/stockwatch-api/internal/domain/inventory"
	"github.com/jhoicas/stockwatch-api/internal/infrastructure/mail"
	"github.com/jhoicas/stockwatch-api/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/stockwatch-api/internal/infrastructure/pdf"
	"github.com/jhoicas/stockwatch-api/internal/infrastructure/session"
	"github.com/jhoicas/stockwatch-api/internal/infrastructure/store"
	httpRouter "github.com/jhoicas/stockwatch-api/internal/interfaces/http"
	"github.com/jhoicas/stockwatch-api/pkg/config"
	"github.com/jhoicas/stockwatch-api/pkg/logger"
	"github.com/shopspring/decimal"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Str("mail", cfg.Mail.Driver).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET requerido")
	}
	if cfg.Mail.AlertRecipient == "" {
		log.Warn().Msg("MAIL_ALERT_RECIPIENT vacío: las alertas se guardan pero no se envían")
	}

	ctx := context.Background()
	repos, err := store.Open(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión al almacén")
	}

	// Sesiones revocadas: Redis si está configurado, si no en memoria (un solo proceso).
	var sessions ports.SessionStore
	if cfg.Redis.Addr != "" {
		redisStore, err := session.NewRedisStore(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer redisStore.Close()
		sessions = redisStore
	} else {
		log.Warn().Msg("REDIS_ADDR vacío: sesiones revocadas en memoria")
		sessions = session.NewMemoryStore()
	}

	mailer, err := mail.NewMailer(cfg.Mail, log)
	if err != nil {
		log.Fatal().Err(err).Msg("transporte de correo")
	}

	recorder := metrics.NewRecorder()
	notifier := notify.NewNotifier(mailer, recorder, log)
	enquiryStore := enquiry.NewStore(repos.Enquiries, repos.Staff, notifier, cfg.Mail.AlertRecipient, log)

	policy := domaininv.NewThresholdPolicy(
		decimal.NewFromInt(int64(cfg.Stock.LowThreshold)),
		decimal.NewFromInt(int64(cfg.Stock.CriticalThreshold)),
	)
	monitor := inventory.NewThresholdMonitor(policy, enquiryStore, repos.Staff, notifier, cfg.Mail.AlertRecipient, recorder, log)
	ledger := inventory.NewLedger(repos.Products, audit.NewWriter(repos.Audit, log), monitor, recorder, log, cfg.Stock.MaxRetries)

	// PDF: reporte de existencias con estado por producto
	reportUC := inventory.NewReportUseCase(repos.Products, policy, infrapdf.NewMarotoStockReport(cfg.App.Name))

	authUC := auth.NewAuthUseCase(repos.Staff, sessions, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(recorder.Middleware())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Stockwatch API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "store": repos.Driver})
	})
	app.Get("/metrics", recorder.Handler())

	httpRouter.Router(app, httpRouter.RouterDeps{
		Ledger:  ledger,
		Report:  reportUC,
		History: audit.NewHistory(repos.Audit),
		Enquiry: enquiryStore,
		StaffUC: usecase.NewStaffUseCase(repos.Staff),
		AuthUC:  authUC,
		Session: httpRouter.SessionConfig{
			Secret:     cfg.JWT.Secret,
			CookieName: cfg.JWT.CookieName,
			Sessions:   sessions,
			Log:        log,
		},
		Cookie: httpRouter.CookieConfig{
			Name:   cfg.JWT.CookieName,
			Secure: cfg.JWT.CookieSecure,
		},
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	if err := repos.Close(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("cierre del almacén")
	}

	log.Info().Msg("aplicación detenida")
}
