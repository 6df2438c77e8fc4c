package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/nekogravitycat/petcare-booking-backend/internal/auth"
	"github.com/nekogravitycat/petcare-booking-backend/internal/booking"
	bookingHttp "github.com/nekogravitycat/petcare-booking-backend/internal/booking/http"
	"github.com/nekogravitycat/petcare-booking-backend/internal/catalog"
	catalogHttp "github.com/nekogravitycat/petcare-booking-backend/internal/catalog/http"
	"github.com/nekogravitycat/petcare-booking-backend/internal/file"
	fileHttp "github.com/nekogravitycat/petcare-booking-backend/internal/file/http"
	"github.com/nekogravitycat/petcare-booking-backend/internal/pet"
	petHttp "github.com/nekogravitycat/petcare-booking-backend/internal/pet/http"
	"github.com/nekogravitycat/petcare-booking-backend/internal/pkg/response"
	"github.com/nekogravitycat/petcare-booking-backend/internal/pkg/validate"
	"github.com/nekogravitycat/petcare-booking-backend/internal/user"
	userHttp "github.com/nekogravitycat/petcare-booking-backend/internal/user/http"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Config struct {
	IsProduction   bool
	BaseURL        string
	MaxUploadBytes int64

	UserService    user.Service
	CatalogService catalog.Service
	BookingService booking.Service
	PetService     pet.Service
	FileService    file.Service
	JWTManager     *auth.JWTManager
	Pinger         Pinger
}

// NewRouter initializes the HTTP router engine.
// It assembles middleware (request id, logger, recovery, CORS, auth) and registers routes for every module.
func NewRouter(cfg Config) *gin.Engine {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	if err := validate.RegisterBindings(); err != nil {
		panic(err)
	}

	r := gin.New()
	r.Use(RequestID(), gin.LoggerWithFormatter(logFormatter), gin.Recovery())
	r.Use(cors.New(corsConfig(cfg)))

	authMiddleware := auth.AuthRequired(cfg.JWTManager, roleResolver(cfg.UserService))
	adminMiddleware := RequireAdmin()

	userHandler := userHttp.NewHandler(cfg.UserService, cfg.JWTManager)
	catalogHandler := catalogHttp.NewHandler(cfg.CatalogService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)
	fileHandler := fileHttp.NewHandler(cfg.FileService)
	petHandler := petHttp.NewHandler(cfg.PetService, fileHandler, cfg.MaxUploadBytes)

	r.GET("/healthz", healthHandler(cfg.Pinger))
	fileHttp.RegisterRoutes(r, fileHandler)

	v1 := r.Group("/api/v1")
	{
		userHttp.RegisterRoutes(v1, userHandler, authMiddleware)
		catalogHttp.RegisterRoutes(v1, catalogHandler, authMiddleware, adminMiddleware)
		bookingHttp.RegisterRoutes(v1, bookingHandler, authMiddleware, adminMiddleware)
		petHttp.RegisterRoutes(v1, petHandler, authMiddleware)
	}

	r.NoRoute(func(c *gin.Context) {
		response.Fail(c, http.StatusNotFound, "Route not found")
	})

	return r
}

func corsConfig(cfg Config) cors.Config {
	config := cors.DefaultConfig()
	origin := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if origin == "" {
		origin = "http://localhost:5173"
	}
	config.AllowOrigins = []string{origin}
	config.AllowCredentials = true
	config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "x-access-token", requestIDHeader}
	config.ExposeHeaders = []string{requestIDHeader}
	return config
}

func logFormatter(p gin.LogFormatterParams) string {
	requestID, _ := p.Keys[requestIDHeader].(string)
	return fmt.Sprintf("[%s] %s %s %s %d %s %s\n",
		p.TimeStamp.Format(time.RFC3339),
		requestID,
		p.Method,
		p.Path,
		p.StatusCode,
		p.Latency,
		p.ErrorMessage,
	)
}

func healthHandler(pinger Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if pinger != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := pinger.Ping(ctx); err != nil {
				response.Fail(c, http.StatusServiceUnavailable, "Store unavailable", err.Error())
				return
			}
		}
		response.OK(c, "OK", nil)
	}
}
