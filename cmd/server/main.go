package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/signsyncapp/signsync-api/internal/config"
	"github.com/signsyncapp/signsync-api/internal/handler"
	"github.com/signsyncapp/signsync-api/internal/repository"
	"github.com/signsyncapp/signsync-api/internal/server"
	"github.com/signsyncapp/signsync-api/internal/usecase"
	"github.com/signsyncapp/signsync-api/shared/auth"
	"github.com/signsyncapp/signsync-api/shared/logger"
	"github.com/signsyncapp/signsync-api/shared/mailer"
	"github.com/signsyncapp/signsync-api/shared/validator"
)

func main() {
	log := logger.New("signsync-api")

	cfg := config.Load(&log)

	client, err := mongo.Connect(options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("failed to disconnect from MongoDB")
		}
	}()

	startupCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.Ping(startupCtx, readpref.Primary()); err != nil {
		log.Fatal().Err(err).Msg("failed to ping MongoDB")
	}

	db := client.Database(cfg.Mongo.Database)
	userRepo := repository.NewUserMongoRepository(startupCtx, &log, db)

	jwtAuth := auth.NewJWTAuthenticator(cfg.Token.Issuer, cfg.Token.Issuer)
	m := mailer.NewMailer(&log)

	v, err := validator.New()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize validator")
	}

	accountUsecase := usecase.NewAccountUsecase(userRepo, m, jwtAuth, cfg)
	profileUsecase := usecase.NewProfileUsecase(userRepo)

	h := handler.New(cfg, accountUsecase, profileUsecase, jwtAuth, v, &log)
	srv := server.New(cfg, h, &log)

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("server listening")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	stopCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-stopCtx.Done()

	log.Info().Msg("shutting down")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancelShutdown()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
