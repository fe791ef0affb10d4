package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/nekogravitycat/shareit-backend/internal/auth"
	"github.com/nekogravitycat/shareit-backend/internal/booking"
	bookingHttp "github.com/nekogravitycat/shareit-backend/internal/booking/http"
	"github.com/nekogravitycat/shareit-backend/internal/comment"
	commentHttp "github.com/nekogravitycat/shareit-backend/internal/comment/http"
	"github.com/nekogravitycat/shareit-backend/internal/item"
	itemHttp "github.com/nekogravitycat/shareit-backend/internal/item/http"
	"github.com/nekogravitycat/shareit-backend/internal/itemrequest"
	itemRequestHttp "github.com/nekogravitycat/shareit-backend/internal/itemrequest/http"
	"github.com/nekogravitycat/shareit-backend/internal/logging"
	"github.com/nekogravitycat/shareit-backend/internal/metrics"
	"github.com/nekogravitycat/shareit-backend/internal/user"
	userHttp "github.com/nekogravitycat/shareit-backend/internal/user/http"
)

// Config holds the dependencies needed to build the router.
type Config struct {
	IsProduction   bool
	ProdOrigins    string
	Logger         zerolog.Logger
	RateLimitRPS   float64
	RateLimitBurst int
	TrustedProxies []string
	DB             Pinger

	UserService        user.Service
	ItemService        item.Service
	BookingService     booking.Service
	CommentService     comment.Service
	ItemRequestService itemrequest.Service
}

// NewRouter initializes the HTTP router engine.
// It assembles middleware (request logging, metrics, recovery, CORS, rate
// limiting) and registers the routes of every module.
func NewRouter(cfg Config) *gin.Engine {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// ClientIP keys the rate limiter, so forwarded headers are honoured only
	// from listed proxies.
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		cfg.Logger.Error().Err(err).Msg("invalid trusted proxies, trusting none")
		_ = r.SetTrustedProxies(nil)
	}

	r.Use(logging.RequestLogger(cfg.Logger), metrics.Middleware(), gin.Recovery())

	if corsMiddleware := newCORS(cfg); corsMiddleware != nil {
		r.Use(corsMiddleware)
	}

	r.GET("/health", healthHandler(cfg.DB))
	r.GET("/metrics", metrics.Handler())

	limiter := newRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	callerMiddleware := auth.CallerRequired()

	// Initialize HTTP Handlers for each module (injecting Service dependencies).
	userHandler := userHttp.NewHandler(cfg.UserService)
	itemHandler := itemHttp.NewHandler(cfg.ItemService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)
	commentHandler := commentHttp.NewHandler(cfg.CommentService)
	itemRequestHandler := itemRequestHttp.NewHandler(cfg.ItemRequestService)

	api := r.Group("")
	api.Use(limiter.Middleware())
	{
		userHttp.RegisterRoutes(api, userHandler)
		itemHttp.RegisterRoutes(api, itemHandler, callerMiddleware)
		commentHttp.RegisterRoutes(api, commentHandler, callerMiddleware)
		bookingHttp.RegisterRoutes(api, bookingHandler, callerMiddleware)
		itemRequestHttp.RegisterRoutes(api, itemRequestHandler, callerMiddleware)
	}

	return r
}

// newCORS allows any origin in development. In production only PROD_ORIGINS
// are allowed, and CORS is off when none are configured.
func newCORS(cfg Config) gin.HandlerFunc {
	config := cors.DefaultConfig()
	config.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", auth.CallerHeader, logging.RequestIDHeader}
	config.ExposeHeaders = []string{logging.RequestIDHeader}

	if !cfg.IsProduction {
		config.AllowAllOrigins = true
		return cors.New(config)
	}

	var origins []string
	for _, o := range strings.Split(cfg.ProdOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return nil
	}
	config.AllowOrigins = origins
	return cors.New(config)
}
