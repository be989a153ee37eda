package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/Memex-200/Abutig-sub000/internal/adapter/notify"
	"github.com/Memex-200/Abutig-sub000/internal/adapter/postgres"
	"github.com/Memex-200/Abutig-sub000/internal/adapter/postgres/complainant"
	complaintrepo "github.com/Memex-200/Abutig-sub000/internal/adapter/postgres/complaint"
	"github.com/Memex-200/Abutig-sub000/internal/adapter/postgres/complaintlog"
	"github.com/Memex-200/Abutig-sub000/internal/adapter/postgres/complainttype"
	userrepo "github.com/Memex-200/Abutig-sub000/internal/adapter/postgres/user"
	"github.com/Memex-200/Abutig-sub000/internal/auth"
	"github.com/Memex-200/Abutig-sub000/internal/config"
	"github.com/Memex-200/Abutig-sub000/internal/metrics"
	"github.com/Memex-200/Abutig-sub000/internal/service/admin"
	"github.com/Memex-200/Abutig-sub000/internal/service/complaint"
	"github.com/Memex-200/Abutig-sub000/internal/service/identity"
	"github.com/Memex-200/Abutig-sub000/internal/transport/middleware"
	"github.com/Memex-200/Abutig-sub000/internal/transport/rest"
	"github.com/Memex-200/Abutig-sub000/internal/transport/rest/loader"
)

// Run is the server entry point. It loads configuration, connects to
// PostgreSQL and optionally Redis, then serves HTTP and delivers
// notifications until ctx is cancelled. Shutdown drains in-flight requests
// first, then queued notifications.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		n, err := postgres.Migrate(ctx, pool)
		if err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied", slog.Int("count", n))
	}

	// Repositories.
	complaints := complaintrepo.New(pool)
	logs := complaintlog.New(pool)
	complainants := complainant.New(pool)
	types := complainttype.New(pool)
	users := userrepo.New(pool)
	txm := postgres.NewTxManager(pool, postgres.WithLockTimeout(cfg.Database.LockTimeout))

	m := metrics.New()

	// Notifications.
	var (
		notifier notify.Notifier = notify.NewLogNotifier(logger)
		rdb      *redis.Client
	)
	if cfg.Redis.Enabled() {
		rdb, err = notify.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return fmt.Errorf("connect to redis: %w", err)
		}
		defer rdb.Close()
		notifier = notify.NewRedisPublisher(rdb, cfg.Redis.Channel)
		logger.Info("notifications via redis", slog.String("channel", cfg.Redis.Channel))
	}
	dispatcher := notify.NewDispatcher(notifier, logger, cfg.Notify,
		notify.WithRecorder(m),
		notify.WithComplainants(complainants),
	)

	// Services.
	jwtMgr := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	identitySvc := identity.NewService(logger, jwtMgr, users, complainants)
	complaintSvc := complaint.NewService(logger, complaints, logs, types, users, dispatcher, m, txm)
	adminSvc := admin.NewService(logger, users, types, complainants, complaints)

	// HTTP.
	health := rest.NewHealthHandler(pool, BuildVersion())
	if rdb != nil {
		health.WithComponent("redis", rest.PingFunc(func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		}))
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit)
	defer limiter.Stop()

	handler := rest.NewRouter(rest.RouterDeps{
		Logger:      logger,
		CORS:        cfg.CORS,
		RateLimiter: limiter,
		Resolver:    identitySvc,
		Metrics:     m,
		Loaders:     &loader.Repos{Types: types, Users: users},
		Health:      health,
		Complaints:  rest.NewComplaintHandler(complaintSvc, logger),
		Admin:       rest.NewAdminHandler(adminSvc, logger),
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return serve(ctx, logger, srv, dispatcher, cfg.Server)
}

type runner interface {
	Run(ctx context.Context) error
}

// serve runs the HTTP server and the notification workers side by side.
// The dispatcher outlives the server so transitions committed by the last
// requests are still delivered.
func serve(ctx context.Context, logger *slog.Logger, srv *http.Server, workers runner, cfg config.ServerConfig) error {
	workerCtx, stopWorkers := context.WithCancel(context.WithoutCancel(ctx))
	defer stopWorkers()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return workers.Run(workerCtx)
	})

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
		defer cancel()
		err := srv.Shutdown(shutdownCtx)
		stopWorkers()
		if err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("stopped")
	return nil
}
