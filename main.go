package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"hotel-booking/config"
	"hotel-booking/controllers"
	"hotel-booking/routes"
	"hotel-booking/services"
)

func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if parsed, err := zerolog.ParseLevel(strings.ToLower(config.EnvOrDefault("LOG_LEVEL", "info"))); err == nil {
		level = parsed
	}

	var out = zerolog.MultiLevelWriter(os.Stdout)
	if strings.EqualFold(config.EnvOrDefault("LOG_FORMAT", "json"), "console") {
		out = zerolog.MultiLevelWriter(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	return zerolog.New(out).Level(level).With().Timestamp().Str("app", "hotel-booking").Logger()
}

func main() {
	// .env is optional; real deployments set env vars directly.
	_ = godotenv.Load()

	logger := newLogger()

	if err := config.ConnectDatabase(); err != nil {
		logger.Fatal().Err(err).Msg("database connect failed")
	}
	db := config.DB
	logger.Info().Msg("database connection established, migrations applied")

	roomService := services.NewRoomService(db)
	bookingService := services.NewBookingService(db)

	roomController := controllers.NewRoomController(roomService, bookingService)
	bookingController := controllers.NewBookingController(bookingService, roomService)

	router := routes.SetupRouter(roomController, bookingController, logger)

	addr := ":" + config.EnvOrDefault("PORT", "8080")
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", addr).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("listen and serve failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("forced shutdown")
	}
	logger.Info().Msg("server stopped gracefully")
}
