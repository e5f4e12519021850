package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/BruksfildServices01/salon-agenda/internal/audit"
	"github.com/BruksfildServices01/salon-agenda/internal/config"
	dbpkg "github.com/BruksfildServices01/salon-agenda/internal/db"
	"github.com/BruksfildServices01/salon-agenda/internal/infra/cache"
	"github.com/BruksfildServices01/salon-agenda/internal/infra/storage"
	"github.com/BruksfildServices01/salon-agenda/internal/logging"
	"github.com/BruksfildServices01/salon-agenda/internal/middleware"
	"github.com/BruksfildServices01/salon-agenda/internal/routes"
	"github.com/BruksfildServices01/salon-agenda/internal/telemetry"
	"github.com/BruksfildServices01/salon-agenda/internal/timezone"
	"github.com/BruksfildServices01/salon-agenda/internal/validators"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logging.New(cfg.LogLevel)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, telemetry.Config{
		Enabled:      cfg.OTelEnabled,
		OTLPEndpoint: cfg.OTelEndpoint,
		SampleRatio:  cfg.OTelSampleRatio,
	})
	if err != nil {
		return err
	}

	db, err := dbpkg.Open(ctx, cfg, log)
	if err != nil {
		return err
	}

	// ------------------------------
	// Audit
	// ------------------------------
	sinks := []audit.Sink{audit.NewGormSink(db)}
	kafkaSink := audit.NewKafkaSink(cfg.KafkaBrokers, cfg.KafkaAuditTopic)
	if kafkaSink != nil {
		sinks = append(sinks, kafkaSink)
		log.Info("audit events mirrored to kafka", "topic", cfg.KafkaAuditTopic)
	}
	dispatcher := audit.NewDispatcher(log, sinks...)

	// ------------------------------
	// Cache and rate limiting
	// ------------------------------
	clock := timezone.NewClock(cfg.Timezone)

	deps := routes.Deps{
		DB:               db,
		Config:           cfg,
		Log:              log,
		Audit:            dispatcher,
		CheckEmailDomain: validators.LookupEmailDomain,
		Location:         clock.Location(),
		Now:              clock.Now,
	}

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return err
		}
		rdb = redis.NewClient(opts)
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Warn("redis unreachable, cache and rate limit degrade until it returns", "err", err)
		}
		deps.Cache = cache.NewAgendaRedisCache(rdb, cfg.AgendaCacheTTL, log)
		deps.RateCounter = middleware.NewRedisCounter(rdb)
	} else {
		deps.Cache = cache.NewAgendaMemoryCache(cfg.AgendaCacheTTL)
	}

	// ------------------------------
	// Object storage
	// ------------------------------
	if cfg.S3Bucket != "" {
		deps.Store = storage.NewS3Store(storage.Config{
			Bucket:        cfg.S3Bucket,
			Region:        cfg.S3Region,
			Endpoint:      cfg.S3Endpoint,
			AccessKey:     cfg.S3AccessKey,
			SecretKey:     cfg.S3SecretKey,
			PublicBaseURL: cfg.S3PublicBaseURL,
		})
	} else {
		log.Warn("S3_BUCKET not set, photos and backups are disabled")
	}

	// ------------------------------
	// HTTP
	// ------------------------------
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.AccessLog(log),
		middleware.CORSMiddleware(cfg.CORSAllowedOrigins),
	)

	routes.RegisterRoutes(r, deps)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           otelhttp.NewHandler(r, telemetry.ServiceName),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server running", "addr", cfg.Addr(), "db_driver", cfg.DBDriver, "timezone", cfg.Timezone)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
	}

	// ------------------------------
	// Shutdown
	// ------------------------------
	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown", "err", err)
	}
	if err := dispatcher.Close(shutdownCtx); err != nil {
		log.Error("audit drain", "err", err)
	}
	if kafkaSink != nil {
		if err := kafkaSink.Close(); err != nil {
			log.Error("kafka close", "err", err)
		}
	}
	if rdb != nil {
		_ = rdb.Close()
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error("tracer shutdown", "err", err)
	}
	return nil
}
