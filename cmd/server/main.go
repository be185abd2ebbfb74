package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"homeprice/internal/config"
	"homeprice/internal/handler"
	"homeprice/internal/logger"
	"homeprice/internal/metrics"
	"homeprice/internal/repository"
	"homeprice/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog, err := logger.New(cfg.Logging)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	zlog.Info("home price prediction server",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
		zap.String("git_commit", GitCommit),
	)

	gin.SetMode(cfg.Server.GinMode)

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		m = metrics.New(reg)
	}

	source, closeSource, err := newArtifactSource(cfg)
	if err != nil {
		zlog.Fatal("failed to initialize artifact source", zap.Error(err))
	}
	defer closeSource()

	store := service.NewArtifactStore(source, zlog.Named("artifacts"), m)
	predictor := service.NewPredictor(store, zlog.Named("predictor"), m)

	// Load artifacts before accepting traffic
	loadCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	err = store.Load(loadCtx)
	cancel()
	if err != nil {
		zlog.Fatal("failed to load artifacts", zap.Error(err))
	}

	locationHandler := handler.NewLocationHandler(store)
	predictHandler := handler.NewPredictHandler(predictor, cfg.Server.MaxBodyBytes, zlog.Named("handler"))

	router := gin.New()
	router.Use(logger.GinRecovery(zlog), logger.GinLogger(zlog.Named("http")))
	if m != nil {
		router.Use(m.Middleware())
	}

	corsConfig := cors.DefaultConfig()
	if len(cfg.Server.AllowedOrigins) == 1 && cfg.Server.AllowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.Server.AllowedOrigins
	}
	corsConfig.AllowMethods = cfg.Server.AllowedMethods
	corsConfig.AllowHeaders = cfg.Server.AllowedHeaders
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		status, code := "healthy", http.StatusOK
		if !store.Loaded() {
			status, code = "degraded", http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{
			"status":           status,
			"service":          "home-price-prediction",
			"version":          Version,
			"build_time":       BuildTime,
			"git_commit":       GitCommit,
			"artifacts_loaded": store.Loaded(),
		})
	})

	router.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	if m != nil {
		router.GET("/metrics", m.Handler())
	}

	handler.RegisterRoutes(router, locationHandler, predictHandler)

	// Serve the web UI
	// This function is implemented in embed.go (production) or static_dev.go (development)
	setupStaticFiles(router, cfg.Server.StaticDir, zlog)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		zlog.Info("starting server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zlog.Error("server forced to shutdown", zap.Error(err))
	}
	zlog.Info("server stopped")
}

// newArtifactSource picks the configured artifact backend. The returned
// close function releases any connection the source holds.
func newArtifactSource(cfg *config.Config) (service.ArtifactSource, func(), error) {
	switch cfg.Artifacts.Source {
	case config.ArtifactSourcePostgres:
		src, err := repository.NewPostgresSource(
			cfg.GetPostgreSQLDSN(),
			cfg.PostgreSQL.MaxConnections,
			cfg.PostgreSQL.MaxIdleConnections,
			cfg.Artifacts.ModelName,
		)
		if err != nil {
			return nil, nil, err
		}
		return src, func() { _ = src.Close() }, nil
	default:
		dir := repository.ResolveDir(cfg.Artifacts.Dir)
		return repository.NewFileSource(dir, cfg.Artifacts.ColumnsFile, cfg.Artifacts.ModelFile), func() {}, nil
	}
}
