package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"

	"github.com/lanai-bot/whatsapp-llm-bot/ai"
	"github.com/lanai-bot/whatsapp-llm-bot/ai/whatsappchat"
	"github.com/lanai-bot/whatsapp-llm-bot/config"
	"github.com/lanai-bot/whatsapp-llm-bot/database"
	"github.com/lanai-bot/whatsapp-llm-bot/logging"
	"github.com/lanai-bot/whatsapp-llm-bot/metrics"
	"github.com/lanai-bot/whatsapp-llm-bot/sports"
	"github.com/lanai-bot/whatsapp-llm-bot/sports/basketball"
	"github.com/lanai-bot/whatsapp-llm-bot/sports/football"
	"github.com/lanai-bot/whatsapp-llm-bot/whatsapp"
	"github.com/lanai-bot/whatsapp-llm-bot/whatsapp/twilio"
)

func main() {
	cfg := config.FromEnv()
	logger := logging.NewLogger(logging.LogLevel(cfg.LogLevel), os.Stdout)

	if err := cfg.ValidateWebhook(); err != nil {
		logger.Error("invalid configuration", "error", err.Error())
		os.Exit(1)
	}

	// listen and serve for metrics server.
	server := metrics.SetupServer()
	go server.Run()

	// setup postgres connection and run migrations
	db, err := database.NewPostgres(cfg.PostgresURL, logger)
	if err != nil {
		logger.Error("failed to connect to postgres", "error", err.Error())
		os.Exit(1)
	}
	defer db.Close()

	// the long-term memory file seeds the companion persona
	persona, err := ai.LoadPersona(cfg.MemoryFile)
	if err != nil {
		logger.Error("failed to load persona memory", "error", err.Error())
		os.Exit(1)
	}

	llm, err := whatsappchat.Setup(db, persona, cfg.OpenAIKey, cfg.OpenAIModel, logger)
	if err != nil {
		logger.Error("failed to set up LLM client", "error", err.Error())
		os.Exit(1)
	}

	// a sport without a key stays nil and is skipped by the pipeline
	var footballClient sports.Provider
	if cfg.FootballAPIKey != "" {
		footballClient = football.NewClient(cfg.FootballAPIKey, cfg.FootballAPIHost, logger)
	}
	var basketballClient sports.Provider
	if cfg.BasketballAPIKey != "" {
		basketballClient = basketball.NewClient(cfg.BasketballAPIKey, cfg.BasketballAPIHost, logger)
	}
	pipeline := sports.NewPipeline(footballClient, basketballClient, logger)

	sender := twilio.NewClient(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioWhatsAppNumber, logger)
	handler := whatsapp.NewHandler(db, llm, pipeline, sender, logger)
	webhookServer := whatsapp.NewServer(cfg.ListenAddr, handler)

	go func() {
		logger.Info("starting webhook server", "addr", cfg.ListenAddr)
		if err := webhookServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("webhook server stopped", "error", err.Error())
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	logger.Info("Press Ctrl+C to exit")
	<-stop

	logger.Info("shutting down")
	if err := webhookServer.Shutdown(context.Background()); err != nil {
		logger.Error("error during shutdown", "error", err.Error())
	}
}
