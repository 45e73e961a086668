package handler

import (
	"time"

	"github.com/ParthPatil-04/API-demo/internal/docs"
	"github.com/ParthPatil-04/API-demo/internal/middleware"
	"github.com/ParthPatil-04/API-demo/internal/repository"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

type RouterOptions struct {
	DB             *gorm.DB
	StartTime      time.Time
	Version        string
	TrustedProxies []string
	// RateLimiter is optional; nil disables rate limiting.
	RateLimiter *middleware.RateLimiter
}

// NewRouter builds the engine serving the books API, the health probes
// and the swagger UI.
func NewRouter(opts RouterOptions) (*gin.Engine, error) {
	e := gin.New()

	if err := e.SetTrustedProxies(opts.TrustedProxies); err != nil {
		return nil, err
	}

	e.Use(middleware.RequestID(), middleware.Logger(), middleware.Recovery())
	if opts.RateLimiter != nil {
		e.Use(opts.RateLimiter.Middleware())
	}

	docs.SwaggerInfo.Version = opts.Version
	docs.SwaggerInfo.BasePath = "/"

	healthHandler := NewHealthHandler(opts.DB, opts.StartTime, opts.Version)
	healthHandler.RegisterRoutes(e)

	bookHandler := NewBookHandler(repository.NewGormBookRepository(opts.DB))
	bookHandler.RegisterRoutes(e.Group(""))

	e.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return e, nil
}
