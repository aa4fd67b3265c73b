package main

import (
	"hotelbooking/internal/cache"
	"hotelbooking/internal/config"
	"hotelbooking/internal/database"
	"hotelbooking/internal/logger"
	"hotelbooking/internal/middleware"
	"hotelbooking/internal/modules/admin"
	"hotelbooking/internal/modules/auth"
	"hotelbooking/internal/modules/availability"
	"hotelbooking/internal/modules/booking"
	"hotelbooking/internal/modules/catalog"
	"hotelbooking/internal/modules/review"
	jwtsvc "hotelbooking/internal/pkg/jwt"
	"hotelbooking/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	defer func() { _ = log.Sync() }()

	db, err := database.Connect(cfg.Database.DSN)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("schema migration failed", zap.Error(err))
	}

	userRepo := repository.NewUserRepository(db)
	hotelRepo := repository.NewHotelRepository(db)
	roomTypeRepo := repository.NewRoomTypeRepository(db)
	roomRateRepo := repository.NewRoomRateRepository(db)
	blockRepo := repository.NewAvailabilityBlockRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	translationRepo := repository.NewTranslationRepository(db)

	var prices *cache.PriceCache
	if cfg.Redis.Enabled {
		prices = cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.PriceCacheTTL)
		defer func() { _ = prices.Close() }()
	}

	j := jwtsvc.New(cfg.JWT.Secret, cfg.JWT.TTL)

	availabilityService := availability.NewService(roomTypeRepo, bookingRepo, blockRepo, roomRateRepo)
	availabilityHandler := availability.NewHandler(availabilityService)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	bookingService := booking.NewService(bookingRepo, availabilityService)
	bookingHandler := booking.NewHandler(bookingService)

	catalogService := catalog.NewService(hotelRepo, roomTypeRepo, availabilityService, prices, log)
	catalogHandler := catalog.NewHandler(catalogService)

	reviewService := review.NewService(reviewRepo, bookingRepo, hotelRepo)
	reviewHandler := review.NewHandler(reviewService)

	adminService := admin.NewService(roomRateRepo, blockRepo, userRepo, reviewRepo, translationRepo, bookingService)
	adminHandler := admin.NewHandler(adminService)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.Recovery(log))
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORS())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		catalogHandler.RegisterPublicRoutes(v1)
		availabilityHandler.RegisterRoutes(v1)
		reviewHandler.RegisterPublicRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
			reviewHandler.RegisterProtectedRoutes(protected)

			owner := protected.Group("/owner")
			owner.Use(middleware.HotelOwnerOnly())
			catalogHandler.RegisterOwnerRoutes(owner)

			adminGroup := protected.Group("/admin")
			adminGroup.Use(middleware.AdminOnly())
			adminHandler.RegisterRoutes(adminGroup)
		}
	}

	log.Info("starting server", zap.String("port", cfg.App.Port), zap.String("env", cfg.App.Env))
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
