package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"lpg-backoffice/internal/api/routes"
	"lpg-backoffice/internal/cache"
	"lpg-backoffice/internal/config"
	"lpg-backoffice/internal/database"
	"lpg-backoffice/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "lpg-backoffice/docs" // This is needed for swag
)

//	@title			LPG Back Office API
//	@version		1.0
//	@description	Back office API for LPG distributors: customers, cylinder stock, billing, payments, staff permissions and backups.

//	@host		localhost:7010
//	@BasePath	/api

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and the session token. Browsers use the session cookie instead.

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file, reading the process environment only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load configuration: %v", err)
	}

	logger.Setup(cfg.LogLevel)

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.WithError(err).Fatal("database unavailable")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	redisClient, err := cache.Connect(ctx, cfg.RedisURL)
	if err != nil {
		logrus.WithError(err).Warn("redis unavailable, OTP resend cooldown disabled")
		redisClient = nil
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router, err := routes.SetupRoutes(db, cfg, redisClient)
	if err != nil {
		logrus.WithError(err).Fatal("route setup failed")
	}

	port := cfg.Port
	if port == "" {
		port = "7010"
	}
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logrus.WithFields(logrus.Fields{"port": port, "environment": cfg.Environment}).Info("lpg back office listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Fatal("http server stopped")
		}
	}()

	<-ctx.Done()
	logrus.Info("shutdown requested, draining connections")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("graceful shutdown incomplete")
	}
	if err := database.Close(db); err != nil {
		logrus.WithError(err).Warn("close database pool")
	}
}
