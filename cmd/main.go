package main

import (
	"context"
	"log"

	"github.com/DivyanshuDubey17/ai-voice-detection-platform/config"
	"github.com/DivyanshuDubey17/ai-voice-detection-platform/db"
	"github.com/DivyanshuDubey17/ai-voice-detection-platform/internal/auth/domain"
	"github.com/DivyanshuDubey17/ai-voice-detection-platform/internal/auth/handler"
	"github.com/DivyanshuDubey17/ai-voice-detection-platform/internal/auth/hasher"
	"github.com/DivyanshuDubey17/ai-voice-detection-platform/internal/auth/repository/memory"
	"github.com/DivyanshuDubey17/ai-voice-detection-platform/internal/auth/repository/postgres"
	"github.com/DivyanshuDubey17/ai-voice-detection-platform/internal/auth/service"
	"github.com/DivyanshuDubey17/ai-voice-detection-platform/internal/detect"
	"github.com/DivyanshuDubey17/ai-voice-detection-platform/internal/signinlog"
	"github.com/gofiber/fiber/v2"
)

func main() {
	cfg := config.Load()

	var userRepo domain.UserRepository
	if cfg.DBURL != "" {
		pool, err := db.NewPostgresPool(context.Background(), cfg.DBURL)
		if err != nil {
			log.Fatalf("database init failed: %v", err)
		}
		defer pool.Close()
		userRepo = postgres.NewRepository(pool)
	} else {
		log.Println("DB_URL not set, using in-memory user store")
		userRepo = memory.NewStore()
	}

	scrypt, err := hasher.NewScrypt()
	if err != nil {
		log.Fatalf("hasher init failed: %v", err)
	}

	credentials, err := service.NewCredentialService(userRepo, scrypt)
	if err != nil {
		log.Fatalf("credential service init failed: %v", err)
	}

	tokenService := service.NewTokenService(cfg.AccessTokenSecret, cfg.RefreshTokenSecret,
		cfg.AccessExpiryMin, cfg.RefreshExpiryMin)
	signInLog := signinlog.NewLog(cfg.SignInLogCap)

	authHandler := handler.NewAuthHandler(credentials, tokenService, signInLog)
	detectHandler := handler.NewDetectHandler(detect.NewAnalyzer())

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler, detectHandler)

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
