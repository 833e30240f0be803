// The cron binary runs the daily push jobs: weather forecast, sports
// results digest, and the inspirational content message. It either runs
// one job immediately (-job) or schedules all of them (-schedule).
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"time"

	"github.com/lanai-bot/whatsapp-llm-bot/ai"
	"github.com/lanai-bot/whatsapp-llm-bot/config"
	"github.com/lanai-bot/whatsapp-llm-bot/content"
	"github.com/lanai-bot/whatsapp-llm-bot/database"
	"github.com/lanai-bot/whatsapp-llm-bot/logging"
	"github.com/lanai-bot/whatsapp-llm-bot/metrics"
	"github.com/lanai-bot/whatsapp-llm-bot/results"
	"github.com/lanai-bot/whatsapp-llm-bot/sports/basketball"
	"github.com/lanai-bot/whatsapp-llm-bot/sports/football"
	"github.com/lanai-bot/whatsapp-llm-bot/weather"
	"github.com/lanai-bot/whatsapp-llm-bot/whatsapp/twilio"
	"github.com/robfig/cron/v3"
	"github.com/tmc/langchaingo/llms/openai"
)

// the cities the weather push reports on
var cities = []weather.City{
	{Name: "Loffre", Lat: 50.3844, Lon: 3.1069},
	{Name: "Le Cannet", Lat: 43.5769, Lon: 7.0191},
}

type pusher struct {
	db     database.MessageWriter
	sender *twilio.Client
	to     string
	logger *logging.Logger
}

// push sends the message and records it as an assistant turn. The store's
// day+source+hash unique index drops the record when the same push already
// went out today, which keeps a re-run cron job from spamming the history.
func (p *pusher) push(ctx context.Context, body, source string) {
	sid, err := p.sender.SendMessage(ctx, p.to, body)
	if err != nil {
		p.logger.Error("failed to send push", "source", source, "error", err.Error())
		metrics.PushesTotal.WithLabelValues(source, "error").Inc()
		return
	}
	metrics.PushesTotal.WithLabelValues(source, "ok").Inc()
	metrics.CronMessageSentCount.Add(1)

	_, err = p.db.InsertMessage(ctx, database.Message{
		UserPhone: p.to,
		Role:      database.RoleAssistant,
		Content:   body,
		MsgSID:    database.NullString(sid),
		Direction: database.NullString(database.DirectionOut),
		Source:    database.NullString(source),
	})
	if err != nil {
		p.logger.Error("failed to record push", "source", source, "error", err.Error())
	}
	p.logger.Info("push sent", "source", source, "sid", sid)
}

func main() {
	var job string
	var schedule bool
	flag.StringVar(&job, "job", "", "run one job now: weather | results | content")
	flag.BoolVar(&schedule, "schedule", false, "run the daily schedule in the foreground")
	flag.Parse()

	cfg := config.FromEnv()
	logger := logging.NewLogger(logging.LogLevel(cfg.LogLevel), os.Stdout)

	if cfg.OwnerWhatsAppNumber == "" {
		logger.Error("MY_WHATSAPP_NUMBER is required for the daily pushes")
		os.Exit(1)
	}

	db, err := database.NewPostgres(cfg.PostgresURL, logger)
	if err != nil {
		logger.Error("failed to connect to postgres", "error", err.Error())
		os.Exit(1)
	}
	defer db.Close()

	sender := twilio.NewClient(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioWhatsAppNumber, logger)
	p := &pusher{db: db, sender: sender, to: cfg.OwnerWhatsAppNumber, logger: logger}

	weatherJob := func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		client := weather.NewClient(cfg.WeatherAPIKey, logger)
		msg := client.ComposeMessage(ctx, cities, time.Now().AddDate(0, 0, 1))
		p.push(ctx, msg, database.SourceCronWeather)
	}

	resultsJob := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		var footballSource results.FootballSource
		if cfg.FootballAPIKey != "" {
			footballSource = football.NewClient(cfg.FootballAPIKey, cfg.FootballAPIHost, logger)
		}
		var basketballSource results.BasketballSource
		if cfg.BasketballAPIKey != "" {
			basketballSource = basketball.NewClient(cfg.BasketballAPIKey, cfg.BasketballAPIHost, logger)
		}
		digest := results.NewDigest(footballSource, basketballSource, nil, logger)
		msg := digest.Compose(ctx, time.Now().AddDate(0, 0, -1))
		p.push(ctx, msg, database.SourceCronResults)
	}

	contentJob := func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		persona, err := ai.LoadPersona(cfg.MemoryFile)
		if err != nil {
			logger.Error("failed to load persona memory", "error", err.Error())
			return
		}
		bank, err := content.LoadBank(cfg.ContentFile)
		if err != nil {
			logger.Error("failed to load content bank", "error", err.Error())
			return
		}
		llm, err := openai.New(openai.WithToken(cfg.OpenAIKey), openai.WithModel(cfg.OpenAIModel))
		if err != nil {
			logger.Error("failed to create OpenAI LLM", "error", err.Error())
			return
		}
		composer := content.NewComposer(bank, llm, persona, content.ModeHybrid, logger)
		msg, err := composer.Compose(ctx)
		if err != nil {
			logger.Error("failed to compose content push", "error", err.Error())
			return
		}
		p.push(ctx, msg, database.SourceCronContent)
	}

	switch job {
	case "weather":
		weatherJob()
		return
	case "results":
		resultsJob()
		return
	case "content":
		contentJob()
		return
	case "":
		// fall through to the schedule
	default:
		logger.Error("unknown job", "job", job)
		os.Exit(1)
	}

	if !schedule && job == "" {
		flag.Usage()
		os.Exit(2)
	}

	c := cron.New()
	mustAdd := func(spec string, fn func()) {
		if _, err := c.AddFunc(spec, fn); err != nil {
			logger.Error("failed to schedule job", "spec", spec, "error", err.Error())
			os.Exit(1)
		}
	}
	mustAdd("0 7 * * *", contentJob)
	mustAdd("30 7 * * *", resultsJob)
	mustAdd("0 19 * * *", weatherJob)
	c.Start()
	logger.Info("cron schedule started")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop
	<-c.Stop().Done()
	logger.Info("cron schedule stopped")
}
