package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dlaan/geopoint/configs"
	"github.com/dlaan/geopoint/internal/application/usecase/location"
	"github.com/dlaan/geopoint/internal/infra/auth"
	"github.com/dlaan/geopoint/internal/infra/database"
	"github.com/dlaan/geopoint/internal/infra/event"
	"github.com/dlaan/geopoint/internal/infra/web/handler"
	"github.com/dlaan/geopoint/internal/infra/web/middleware"
	"github.com/dlaan/geopoint/pkg/events"
	"github.com/dlaan/geopoint/pkg/logger"
	"github.com/dlaan/geopoint/pkg/metrics"
	"github.com/dlaan/geopoint/pkg/otel"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/riandyrn/otelchi"
	"golang.org/x/sync/errgroup"
)

const serviceName = "geopoint-api"

func main() {
	config, err := configs.LoadConfig(".")
	if err != nil {
		panic(err)
	}

	isProd := config.AppEnv == "production"
	log := logger.NewLogger(serviceName, isProd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if config.OTELCollector != "" {
		shutdown, err := otel.InitProvider(ctx, serviceName, config.OTELCollector)
		if err != nil {
			log.Error(ctx, "failed to init tracing", logger.WithError(err))
			os.Exit(1)
		}
		defer shutdown()
	}

	db, err := database.OpenPostgres(config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName)
	if err != nil {
		log.Error(ctx, "failed to open postgres", logger.WithError(err))
		os.Exit(1)
	}
	defer db.Close()

	if err := database.InitSchema(db); err != nil {
		log.Error(ctx, "failed to init schema", logger.WithError(err))
		os.Exit(1)
	}

	rdb := redis.NewClient(&redis.Options{Addr: config.RedisHost + ":" + config.RedisPort})
	defer rdb.Close()

	registry := prometheus.NewRegistry()
	m := metrics.NewPrometheusMetrics(registry, serviceName)

	var dispatcher events.EventDispatcher
	if config.AMQPURL != "" {
		conn, err := amqp.Dial(config.AMQPURL)
		if err != nil {
			log.Error(ctx, "failed to connect to rabbitmq", logger.WithError(err))
			os.Exit(1)
		}
		defer conn.Close()

		ch, err := conn.Channel()
		if err != nil {
			log.Error(ctx, "failed to open rabbitmq channel", logger.WithError(err))
			os.Exit(1)
		}
		defer ch.Close()

		dispatcher = event.NewDispatcher(ch)
	}

	locationRepository := database.NewLocationRepository(db)
	tokenDirectory := auth.NewRedisTokenDirectory(rdb, log, m)

	createUseCase := &location.CreateMetricsDecorator{
		Next:    location.NewCreateLocationUseCase(locationRepository, dispatcher, log),
		Metrics: m,
	}
	listUseCase := &location.ListMetricsDecorator{
		Next:    location.NewListLocationsUseCase(locationRepository),
		Metrics: m,
	}
	getUseCase := &location.GetMetricsDecorator{
		Next:    location.NewGetLocationUseCase(locationRepository),
		Metrics: m,
	}

	locationHandler := handler.NewLocationHandler(createUseCase, listUseCase, getUseCase, log)

	limiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: config.RateLimitRPS,
		Burst:             config.RateLimitBurst,
		CleanupInterval:   time.Minute,
		ClientTimeout:     3 * time.Minute,
	})

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.StripSlashes)
	r.Use(otelchi.Middleware(serviceName, otelchi.WithChiRoutes(r)))
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.MetricsWrapper(m))
	r.Use(limiter.Handler(log))
	r.Use(middleware.Authenticator(tokenDirectory, log))

	r.Get("/api/v1/locations", locationHandler.List)
	r.Post("/api/v1/locations", locationHandler.Create)
	r.Get("/api/v1/locations/{id}", locationHandler.Get)

	r.Method(http.MethodGet, "/healthz", handler.NewHealthHandler(serviceName,
		handler.WithPostgres(db),
		handler.WithRedis(rdb),
		handler.WithRabbitMQ(config.AMQPURL),
	))
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	srv := &http.Server{
		Addr:              ":" + config.WebServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info(ctx, "server running", logger.String("port", config.WebServerPort))
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		shutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return srv.Shutdown(shutCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error(ctx, "server stopped", logger.WithError(err))
		os.Exit(1)
	}
}
