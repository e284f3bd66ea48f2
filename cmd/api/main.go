package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"papergenius_backend/internal/assistant"
	"papergenius_backend/internal/assistant/gemini"
	assistantsvc "papergenius_backend/internal/assistant/service"
	"papergenius_backend/internal/auth"
	authsvc "papergenius_backend/internal/auth/service"
	"papergenius_backend/internal/cart"
	"papergenius_backend/internal/catalog"
	catalogsvc "papergenius_backend/internal/catalog/service"
	apphttp "papergenius_backend/internal/http"
	"papergenius_backend/internal/http/router"
	"papergenius_backend/internal/notify"
	"papergenius_backend/internal/orders"
	ordersvc "papergenius_backend/internal/orders/service"
	"papergenius_backend/internal/storage"
	"papergenius_backend/internal/worker"
	"papergenius_backend/platform/config"
	"papergenius_backend/platform/db"
	"papergenius_backend/platform/events"
	"papergenius_backend/platform/logger"
	"papergenius_backend/platform/validator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	if err := withRetry(ctx, log, "database migrations", 5, 2*time.Second, func() error {
		return db.RunMigrations(ctx, cfg, "migrations")
	}); err != nil {
		log.Error("failed to run database migrations", "error", err)
		panic("failed to run database migrations: " + err.Error())
	}
	log.Info("database migrations complete")

	var pool *pgxpool.Pool
	if err := withRetry(ctx, log, "database connection", 5, 2*time.Second, func() error {
		p, err := db.NewPool(ctx, cfg)
		if err != nil {
			return err
		}
		pool = p
		return nil
	}); err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()
	log.Info("database connection established")

	eventBus := events.NewInMemoryBus(log)
	val := validator.New()

	imageStore, err := storage.NewImageStore(ctx, cfg, log)
	if err != nil {
		log.Error("failed to initialize image storage", "error", err)
		panic("failed to initialize image storage: " + err.Error())
	}
	if imageStore == nil {
		log.Warn("MINIO_ENDPOINT not configured; image uploads disabled")
	}

	taskClient, err := worker.NewClient(cfg)
	if err != nil {
		log.Error("failed to initialize task queue client", "error", err)
		panic("failed to initialize task queue client: " + err.Error())
	}
	if taskClient == nil {
		log.Warn("REDIS_URL not configured; background notifications disabled")
	} else {
		defer taskClient.Close()
	}

	geminiClient, err := gemini.NewClient(ctx, cfg)
	if err != nil {
		log.Error("failed to initialize gemini client", "error", err)
		panic("failed to initialize gemini client: " + err.Error())
	}
	if geminiClient == nil {
		log.Warn("GENAI_API_KEY not configured; chat assistant disabled")
	}

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	var images catalogsvc.ImageStore
	if imageStore != nil {
		images = imageStore
	}
	catalogModule := catalog.NewModule(pool, images, val, log)

	cartModule := cart.NewModule(pool, catalogModule.Repository(), val, log)
	authModule := auth.NewModule(pool, cartModule.Repository(), cfg, cfg.GetDefaultPhoneRegion(), val, log)
	ordersModule := orders.NewModule(pool, cartModule.Repository(), customerDirectory{auth: authModule.Service()}, eventBus, val, log)

	var gen assistantsvc.Generator
	if geminiClient != nil {
		gen = geminiClient
	}
	assistantModule := assistant.NewModule(catalogModule.Repository(), cartModule.Repository(), gen, log)

	var enqueuer notify.Enqueuer
	if taskClient != nil {
		enqueuer = taskClient
	}
	notifyModule := notify.NewModule(enqueuer, val, cfg.GetDefaultPhoneRegion(), log)
	notifyModule.Subscribe(eventBus)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config:   cfg,
		Logger:   log,
		Health:   db.NewPoolAdapter(pool),
		EventBus: eventBus,
		Modules: []apphttp.Module{
			authModule,
			catalogModule,
			cartModule,
			ordersModule,
			assistantModule,
			notifyModule,
		},
	}

	engine := router.New(app)

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err)
		panic("server error: " + err.Error())
	}
	log.Info("server stopped")
}

// customerDirectory adapts the auth service to the orders checkout port.
type customerDirectory struct {
	auth *authsvc.Service
}

func (d customerDirectory) GetCustomer(ctx context.Context, userID int64) (ordersvc.Customer, error) {
	customer, err := d.auth.GetCustomer(ctx, userID)
	if err != nil {
		return ordersvc.Customer{}, err
	}
	return ordersvc.Customer{Name: customer.Name, Number: customer.Number}, nil
}

func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return fmt.Errorf("%s: invalid retry attempts", name)
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := fn(); err == nil {
			return nil
		} else {
			lastErr = err
			log.Warn("retryable operation failed", "operation", name, "attempt", attempt, "error", err)
		}

		if attempt < attempts {
			delay := time.Duration(attempt*attempt) * baseDelay
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return errors.New(name + ": " + lastErr.Error())
}
