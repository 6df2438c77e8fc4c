package app

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nekogravitycat/petcare-booking-backend/internal/api"
	"github.com/nekogravitycat/petcare-booking-backend/internal/auth"
	"github.com/nekogravitycat/petcare-booking-backend/internal/booking"
	"github.com/nekogravitycat/petcare-booking-backend/internal/catalog"
	"github.com/nekogravitycat/petcare-booking-backend/internal/file"
	"github.com/nekogravitycat/petcare-booking-backend/internal/pet"
	"github.com/nekogravitycat/petcare-booking-backend/internal/pkg/storage"
	"github.com/nekogravitycat/petcare-booking-backend/internal/store/memory"
	"github.com/nekogravitycat/petcare-booking-backend/internal/user"
)

// Repositories groups the persistence implementation of every module.
type Repositories struct {
	Users    user.Repository
	Services catalog.Repository
	Bookings booking.Repository
	Pets     pet.Repository
	Files    file.Repository
	Pinger   api.Pinger
}

// NewPgxRepositories backs every module with Postgres.
func NewPgxRepositories(pool *pgxpool.Pool) Repositories {
	return Repositories{
		Users:    user.NewPgxRepository(pool),
		Services: catalog.NewPgxRepository(pool),
		Bookings: booking.NewPgxRepository(pool),
		Pets:     pet.NewPgxRepository(pool),
		Files:    file.NewPgxRepository(pool),
		Pinger:   pool,
	}
}

// NewMemoryRepositories backs every module with one in-memory store.
func NewMemoryRepositories() Repositories {
	store := memory.NewStore()
	return Repositories{
		Users:    store.Users(),
		Services: store.Services(),
		Bookings: store.Bookings(),
		Pets:     store.Pets(),
		Files:    store.Files(),
		Pinger:   store,
	}
}

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction   bool
	BaseURL        string
	Repos          Repositories
	Storage        storage.Storage
	JWTSecret      string
	JWTTTL         time.Duration
	BcryptCost     int
	MaxUploadBytes int64
	// Clock overrides the booking time source. Nil means time.Now.
	Clock func() time.Time
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router      *gin.Engine
	JWTManager  *auth.JWTManager
	UserService user.Service
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	userService := user.NewService(cfg.Repos.Users, passwordHasher)
	catalogService := catalog.NewService(cfg.Repos.Services)

	var bookingOpts []booking.Option
	if cfg.Clock != nil {
		bookingOpts = append(bookingOpts, booking.WithClock(cfg.Clock))
	}
	bookingService := booking.NewService(cfg.Repos.Bookings, catalogService, bookingOpts...)

	petService := pet.NewService(cfg.Repos.Pets)
	fileService := file.NewService(cfg.Repos.Files, cfg.Storage)

	router := api.NewRouter(api.Config{
		IsProduction:   cfg.IsProduction,
		BaseURL:        cfg.BaseURL,
		MaxUploadBytes: cfg.MaxUploadBytes,
		UserService:    userService,
		CatalogService: catalogService,
		BookingService: bookingService,
		PetService:     petService,
		FileService:    fileService,
		JWTManager:     jwtManager,
		Pinger:         cfg.Repos.Pinger,
	})

	return &Container{
		Router:      router,
		JWTManager:  jwtManager,
		UserService: userService,
	}
}

// Bootstrap creates or promotes the configured admin account. Empty credentials skip it.
func (c *Container) Bootstrap(ctx context.Context, adminUsername, adminPassword string) error {
	if adminUsername == "" || adminPassword == "" {
		return nil
	}
	_, err := c.UserService.EnsureAdmin(ctx, adminUsername, adminPassword)
	return err
}
