package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/xavierca1/lead-scoring/internal/config"
	"github.com/xavierca1/lead-scoring/internal/entity"
	"github.com/xavierca1/lead-scoring/internal/infra/csvio"
	"github.com/xavierca1/lead-scoring/internal/infra/http/handlers"
	"github.com/xavierca1/lead-scoring/internal/infra/http/middleware"
	"github.com/xavierca1/lead-scoring/internal/infra/http/router"
	"github.com/xavierca1/lead-scoring/internal/infra/integration/openai"
	"github.com/xavierca1/lead-scoring/internal/infra/memory"
	"github.com/xavierca1/lead-scoring/internal/infra/queue"
	"github.com/xavierca1/lead-scoring/internal/logging"
	"github.com/xavierca1/lead-scoring/internal/usecase"
)

var version = "v0.0.1-default"

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	logging.Setup(cfg.LogLevel, cfg.IsDevelopment())
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	// 1. Session state
	session := memory.NewSession()

	// 2. Intent model (optional)
	var model usecase.IntentModel
	var modelStatus handlers.ModelStatus
	if cfg.ModelEnabled() {
		client := openai.NewClient(openai.Config{
			APIKey:            cfg.OpenAI.APIKey,
			BaseURL:           cfg.OpenAI.BaseURL,
			Model:             cfg.OpenAI.Model,
			Timeout:           cfg.OpenAI.Timeout,
			RequestsPerSecond: cfg.OpenAI.RequestsPerSecond,
			Burst:             cfg.OpenAI.Burst,
		})
		model, modelStatus = client, client
		log.Info().Str("model", client.Model()).Msg("intent model enabled")
	} else {
		log.Warn().Msg("OPENAI_API_KEY not set, intent classification uses the heuristic only")
	}

	// 3. Batch scored events (optional)
	var publisher entity.ResultPublisher
	var brokerStatus handlers.BrokerStatus
	if cfg.AMQPURL != "" {
		mq, err := queue.NewRabbitMQ(cfg.AMQPURL)
		if err != nil {
			log.Fatal().Err(err).Msg("rabbitmq setup failed")
		}
		defer mq.Close()
		publisher, brokerStatus = queue.NewProducer(mq.Ch), mq
		log.Info().Str("exchange", queue.ExchangeName).Msg("batch scored events enabled")
	}

	// 4. UseCases
	classifier := usecase.NewIntentClassifier(model, cfg.OpenAI.Timeout)
	engine := usecase.NewScoringEngine(classifier, cfg.ScoreWorkers)

	setOfferUC := usecase.NewSetOfferUseCase(session)
	uploadLeadsUC := usecase.NewUploadLeadsUseCase(session, csvio.LeadReader{})
	scoreLeadsUC := usecase.NewScoreLeadsUseCase(session, engine, publisher)
	resultsUC := usecase.NewResultsUseCase(session)

	// 5. Router
	handler := router.New(router.Handlers{
		Offer:   handlers.NewOfferHandler(setOfferUC),
		Leads:   handlers.NewLeadHandler(uploadLeadsUC, cfg.MaxUploadBytes),
		Score:   handlers.NewScoreHandler(scoreLeadsUC),
		Results: handlers.NewResultsHandler(resultsUC),
		Health:  handlers.NewHealthHandler(modelStatus, brokerStatus, version),
	}, router.Options{
		AllowedOrigins: cfg.CORSOrigins,
		ScoreLimiter:   middleware.NewRateLimiter(cfg.ScorePerMinute, cfg.ScorePerMinute),
	})

	srv := &http.Server{
		Addr:              cfg.ListenAddr(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Str("version", version).Msg("lead scoring service listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	case err := <-errCh:
		log.Fatal().Err(err).Msg("server error")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownWait)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("error shutting down server")
	}
}
