package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/time/rate"

	"qrgen/internal/config"
	"qrgen/internal/database"
	"qrgen/internal/domain"
	"qrgen/internal/encoder"
	"qrgen/internal/middleware"
	"qrgen/internal/modules/auth"
	"qrgen/internal/modules/qrcode"
	jwtsvc "qrgen/internal/pkg/jwt"
	"qrgen/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := db.AutoMigrate(&domain.User{}, &domain.QRCode{}); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	qrRepo := repository.NewQRCodeRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)
	enc := encoder.NewPNGEncoder()

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	qrService := qrcode.NewService(qrRepo, enc)
	qrHandler := qrcode.NewHandler(qrService)

	r := gin.Default()
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.RateLimit(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		// public
		authHandler.RegisterPublicRoutes(api)

		// protected
		protected := api.Group("/")
		protected.Use(middleware.Auth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			qrHandler.RegisterRoutes(protected)
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
