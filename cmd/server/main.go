package main

// @title           Bookify Catalog API
// @version         1.0
// @description     Public book catalog with an authenticated admin dashboard.

// @contact.name   Sina Niyavarzi
// @contact.email  sinaniya@gmail.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

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
	"github.com/snnyvrz/bookify/internal/auth"
	"github.com/snnyvrz/bookify/internal/catalog"
	"github.com/snnyvrz/bookify/internal/config"
	"github.com/snnyvrz/bookify/internal/db"
	docs "github.com/snnyvrz/bookify/internal/docs"
	"github.com/snnyvrz/bookify/internal/handler"
	"github.com/snnyvrz/bookify/internal/logger"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const appVersion = "0.1.0"

func main() {
	startTime := time.Now()

	cfg := config.Load()
	log := logger.New(cfg.Log)
	slog.SetDefault(log)

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := db.Open(ctx, cfg, log, db.DefaultRetry)
	if err != nil {
		log.Error("could not open store", "driver", cfg.Driver, "error", err)
		os.Exit(1)
	}

	e := handler.NewRouter(handler.RouterDeps{
		Logger:    log,
		Books:     catalog.NewService(store.Books, log, catalog.Options{FilteredTotals: cfg.FilteredTotals}),
		Carousel:  catalog.NewCarouselService(store.Carousels, log),
		Verifier:  auth.NewStaticCredentials(cfg.AdminUsername, cfg.AdminPassword),
		Tokens:    auth.NewTokenManager(cfg.JWTSecret, cfg.JWTExpiration),
		Cookies:   auth.Cookies{Secure: cfg.SecureCookies},
		Store:     store,
		StartTime: startTime,
		Version:   appVersion,
	})

	e.SetTrustedProxies([]string{
		"127.0.0.1",
		"::1",
	})

	docs.SwaggerInfo.BasePath = "/"
	docs.SwaggerInfo.Version = appVersion
	e.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("listening", "addr", srv.Addr, "driver", cfg.Driver, "version", appVersion)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("listen", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down", "timeout", cfg.ShutdownTimeout)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown", "error", err)
	}
	if err := store.Close(shutdownCtx); err != nil {
		log.Error("store close", "error", err)
	}

	log.Info("server exiting")
}
