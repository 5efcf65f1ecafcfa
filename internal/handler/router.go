package handler

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/bookify/internal/auth"
	"github.com/snnyvrz/bookify/internal/catalog"
	"github.com/snnyvrz/bookify/internal/logger"
	"github.com/snnyvrz/bookify/internal/validation"
)

type RouterDeps struct {
	Logger    *slog.Logger
	Books     *catalog.Service
	Carousel  *catalog.CarouselService
	Verifier  auth.CredentialVerifier
	Tokens    *auth.TokenManager
	Cookies   auth.Cookies
	Store     Pinger
	StartTime time.Time
	Version   string
}

// NewRouter assembles the full HTTP surface on a fresh gin engine.
func NewRouter(d RouterDeps) *gin.Engine {
	validation.RegisterRules()

	e := gin.New()
	e.Use(gin.Recovery(), logger.Middleware(d.Logger), ErrorHandler(d.Logger))
	e.NoRoute(NotFound)

	NewHealthHandler(d.Store, d.StartTime, d.Version).RegisterRoutes(e)

	bookHandler := NewBookHandler(d.Books, d.Logger)
	carouselHandler := NewCarouselHandler(d.Carousel, d.Logger)
	authHandler := NewAuthHandler(d.Verifier, d.Tokens, d.Cookies, d.Logger)

	public := e.Group("")
	{
		bookHandler.RegisterRoutes(public)
		carouselHandler.RegisterRoutes(public)
		authHandler.RegisterRoutes(public)
	}

	dashboard := e.Group("/dashboard", auth.Middleware(d.Tokens, d.Cookies))
	{
		bookHandler.RegisterDashboardRoutes(dashboard)
		carouselHandler.RegisterDashboardRoutes(dashboard)
		authHandler.RegisterDashboardRoutes(dashboard)
	}

	return e
}
