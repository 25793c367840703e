package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/viniciusbarbosa/agendabarber-api/internal/config"
	"github.com/viniciusbarbosa/agendabarber-api/internal/database"
	"github.com/viniciusbarbosa/agendabarber-api/internal/handler"
	"github.com/viniciusbarbosa/agendabarber-api/internal/mailer"
	"github.com/viniciusbarbosa/agendabarber-api/internal/repository"
	"github.com/viniciusbarbosa/agendabarber-api/internal/server"
	"github.com/viniciusbarbosa/agendabarber-api/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg := config.Load(&logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := database.Migrate(ctx, cfg.DatabaseURL); err != nil {
		logger.Fatal().Err(err).Msg("failed to run migrations")
	}

	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()

	userRepo := repository.NewUserPostgresRepository(pool)
	bookingRepo := repository.NewBookingPostgresRepository(pool)

	mail := mailer.New(cfg.SMTP)

	authUsecase := usecase.NewAuthUsecase(userRepo)
	passwordResetUsecase := usecase.NewPasswordResetUsecase(userRepo, mail, cfg)
	bookingUsecase := usecase.NewBookingUsecase(bookingRepo)

	h := handler.New(&logger, cfg.RequestTimeout, authUsecase, passwordResetUsecase, bookingUsecase)
	srv := server.New(cfg, &logger, h)

	go func() {
		logger.Info().Str("addr", cfg.ServerAddr).Msg("starting server")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("server stopped unexpectedly")
			stop()
		}
	}()

	<-ctx.Done()

	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}
}
