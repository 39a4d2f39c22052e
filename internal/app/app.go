package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"

	config "github.com/snackhub/catalog-backend/internal/cfg"
	v1Http "github.com/snackhub/catalog-backend/internal/delivery/v1/http"
	"github.com/snackhub/catalog-backend/internal/infrastructure/kafka"
	"github.com/snackhub/catalog-backend/internal/repository/pgdb"
	"github.com/snackhub/catalog-backend/internal/repository/pgdb/converter"
	"github.com/snackhub/catalog-backend/internal/usecase"
	"github.com/snackhub/catalog-backend/pkg/clients"
	"github.com/snackhub/catalog-backend/pkg/closer"
	"github.com/snackhub/catalog-backend/pkg/e"
	"github.com/snackhub/catalog-backend/pkg/jitter"
	"github.com/snackhub/catalog-backend/pkg/logger"
	"github.com/snackhub/catalog-backend/pkg/postgres"
)

// App держит собранные ресурсы приложения и управляет их жизненным циклом.
type App struct {
	cfg     *config.Config
	logger  logger.Logger
	closer  *closer.Closer
	httpSrv *v1Http.Server
}

func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	cl := closer.New()

	db, err := initPGDB(log, cfg)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add("postgres pool", func(ctx context.Context) error {
		db.Close()
		return nil
	})

	redisClient := clients.NewRedisClient(cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer redisCancel()
	if err := redisClient.Ping(redisCtx); err != nil {
		log.Errorf(err, "failed to connect to redis")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add("redis client", func(ctx context.Context) error {
		return redisClient.Close()
	})

	producer, err := kafka.NewProducer(log, cfg.Kafka)
	if err != nil {
		log.Errorf(err, "failed to initialize kafka producer")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add("kafka producer", func(ctx context.Context) error {
		return producer.Close()
	})

	if err := ensureKafkaTopic(log, producer); err != nil {
		log.Errorf(err, "failed to ensure kafka topic")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	productRepo := pgdb.NewProductRepo(db.Pool, converter.NewProductConverter())
	productService := usecase.NewProductService(productRepo, producer, log)

	var rateLimiter *v1Http.RateLimiter
	if cfg.RateLimit.Enabled {
		rateLimiter = v1Http.NewRateLimiter(redisClient.Client, cfg.RateLimit, log)
	}

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, log)
	router.Init(productService, rateLimiter)

	return &App{
		cfg:     cfg,
		logger:  log,
		closer:  cl,
		httpSrv: v1Http.NewServer(r, cfg.Http),
	}, nil
}

// Run запускает HTTP-сервер и блокируется до сигнала остановки
// или фатальной ошибки сервера.
func (a *App) Run() error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Errorf(err, "HTTP server failed")
			errCh <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := a.httpSrv.Stop(shutdownCtx); err != nil {
		a.logger.Errorf(err, "HTTP server shutdown error")
	} else {
		a.logger.Infof("HTTP server stopped")
	}

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Errorf(err, "resource shutdown error")
	}

	a.logger.Infof("Application shutdown complete")
	return appErr
}

func initPGDB(logger logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(cfg.Db)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(logger); err != nil {
		logger.Errorf(err, "failed to run migrations")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.Ping(); err != nil {
		logger.Errorf(err, "failed to ping database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}

// ensureKafkaTopic создаёт топик событий с повторами: при старте docker-compose
// брокер может подняться позже приложения.
func ensureKafkaTopic(logger logger.Logger, producer *kafka.Producer) error {
	const (
		attempts    = 5
		baseBackoff = time.Second
		maxBackoff  = 15 * time.Second
		timeout     = 10 * time.Second
	)

	var err error
	for attempt := 0; attempt < attempts; attempt++ {
		if err = producer.EnsureTopic(timeout); err == nil {
			return nil
		}

		delay := jitter.Backoff(baseBackoff, maxBackoff, attempt, jitter.DefaultFactor)
		logger.Warnf("ensure kafka topic attempt %d failed: %s, retrying in %s", attempt+1, err.Error(), delay)
		time.Sleep(delay)
	}

	return err
}
