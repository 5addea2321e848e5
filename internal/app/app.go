package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/exaring/otelpgx"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-booking/internal/booking"
	"github.com/metinatakli/cinema-booking/internal/config"
	"github.com/metinatakli/cinema-booking/internal/domain"
	"github.com/metinatakli/cinema-booking/internal/handler"
	"github.com/metinatakli/cinema-booking/internal/payment"
	"github.com/metinatakli/cinema-booking/internal/repository"
	appvalidator "github.com/metinatakli/cinema-booking/internal/validator"
	"github.com/metinatakli/cinema-booking/internal/vcs"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
)

const serviceName = "cinema-booking-api"

var (
	version = vcs.Version()
)

type catalogLoader interface {
	Load(ctx context.Context) (*domain.Catalog, error)
}

type Application struct {
	config    config.Config
	logger    *slog.Logger
	db        *pgxpool.Pool
	redis     redis.UniversalClient
	validator *validator.Validate

	movieRepo    domain.MovieRepository
	showtimeRepo domain.ShowtimeRepository
	ticketRepo   domain.TicketRepository
	customerRepo domain.CustomerRepository

	bookings *booking.Service
	payments *payment.Processor
	health   *handler.HealthcheckHandler
}

func Run() error {
	cfg, err := config.Parse(os.Args[1:])
	if err != nil {
		return err
	}

	if cfg.DisplayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	shutdownTelemetry, err := InitTelemetry(cfg, logger)
	if err != nil {
		return err
	}
	defer shutdownTelemetry(context.Background())

	logger = newLogger(cfg, logger)

	app, err := New(context.Background(), cfg, logger)
	if err != nil {
		return err
	}
	defer app.Close()

	return app.serve()
}

// New wires the application for cfg: it opens the configured backing stores,
// loads the catalog and builds the booking and payment services.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Application, error) {
	app := &Application{
		config:    cfg,
		logger:    logger,
		validator: appvalidator.NewValidator(),
	}

	if cfg.NeedsDB() {
		db, err := newDatabasePool(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("connecting to postgres: %w", err)
		}
		app.db = db
	}

	if cfg.NeedsRedis() {
		rdb, err := newRedisClient(ctx, cfg)
		if err != nil {
			app.Close()
			return nil, fmt.Errorf("connecting to redis: %w", err)
		}
		app.redis = rdb
	}

	catalog, err := app.catalogLoader().Load(ctx)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	memoryCatalog, err := repository.NewMemoryCatalog(catalog)
	if err != nil {
		app.Close()
		return nil, err
	}

	app.movieRepo = memoryCatalog
	app.showtimeRepo = memoryCatalog.Showtimes()
	app.ticketRepo = repository.NewMemoryTicketRepository()

	customers, err := repository.NewJSONCustomerStore(cfg.CustomersDir)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("opening customer store: %w", err)
	}
	app.customerRepo = customers

	bookings, err := booking.NewService(app.movieRepo, app.showtimeRepo, app.seatRepository(),
		booking.WithLogger(logger))
	if err != nil {
		app.Close()
		return nil, err
	}

	app.bookings = bookings
	app.payments = payment.NewProcessor()
	app.health = handler.NewHealthcheckHandler(cfg, app.dependencies())

	logger.Info("catalog loaded",
		"source", cfg.Catalog.Source,
		"movies", len(catalog.Movies),
		"halls", len(catalog.Halls),
		"showtimes", len(catalog.Showtimes),
		"seat_store", cfg.SeatStore,
	)

	return app, nil
}

func (app *Application) catalogLoader() catalogLoader {
	if app.config.Catalog.Source == config.CatalogSourcePostgres {
		return repository.NewPostgresCatalogLoader(app.db)
	}

	return repository.NewJSONCatalogLoader(app.config.Catalog.File)
}

func (app *Application) seatRepository() domain.SeatRepository {
	switch app.config.SeatStore {
	case config.SeatStoreRedis:
		return repository.NewRedisSeatRepository(app.redis)
	case config.SeatStorePostgres:
		return repository.NewPostgresSeatRepository(app.db)
	default:
		return repository.NewMemorySeatRepository(repository.WithReserveTimeout(app.config.ReserveTimeout))
	}
}

func (app *Application) dependencies() map[string]handler.PingFunc {
	deps := make(map[string]handler.PingFunc)

	if app.db != nil {
		deps["postgres"] = app.db.Ping
	}

	if app.redis != nil {
		deps["redis"] = func(ctx context.Context) error {
			return app.redis.Ping(ctx).Err()
		}
	}

	return deps
}

// Close releases the connections opened by New.
func (app *Application) Close() {
	if app.redis != nil {
		if err := app.redis.Close(); err != nil {
			app.logger.Error("failed to close redis client", "error", err)
		}
	}

	if app.db != nil {
		app.db.Close()
	}
}

var instrumentRedis = func(rdb *redis.Client) error {
	if err := redisotel.InstrumentTracing(rdb); err != nil {
		return err
	}

	return redisotel.InstrumentMetrics(rdb)
}

func newRedisClient(ctx context.Context, cfg config.Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:            cfg.Redis.URL,
		MaxIdleConns:    cfg.Redis.MaxIdleConns,
		MaxActiveConns:  cfg.Redis.MaxOpenConns,
		ConnMaxIdleTime: cfg.Redis.MaxIdleTime,
	})

	if err := instrumentRedis(rdb); err != nil {
		rdb.Close()
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	err := rdb.Ping(ctx).Err()
	if err != nil {
		rdb.Close()
		return nil, err
	}

	return rdb, nil
}

func newDatabasePool(ctx context.Context, cfg config.Config) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(cfg.DB.DSN)
	if err != nil {
		return nil, err
	}

	config.MaxConnIdleTime = cfg.DB.MaxIdleTime
	config.MaxConns = int32(cfg.DB.MaxOpenConns)
	config.ConnConfig.Tracer = otelpgx.NewTracer()

	db, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	err = db.Ping(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func (app *Application) serve() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.Port),
		Handler:      app.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		shutdownError <- srv.Shutdown(ctx)
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.Env, "version", version)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}
