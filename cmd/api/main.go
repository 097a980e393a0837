// @title EcoTrack API
// @description API for the EcoTrack waste-management portal
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/suryalaha/EcoTrack-app-manage/internal/api"
	"github.com/suryalaha/EcoTrack-app-manage/internal/assistant"
	"github.com/suryalaha/EcoTrack-app-manage/internal/metrics"
	"github.com/suryalaha/EcoTrack-app-manage/internal/repository"
	"github.com/suryalaha/EcoTrack-app-manage/internal/service"
	"github.com/suryalaha/EcoTrack-app-manage/pkg/cleanup"
	"github.com/suryalaha/EcoTrack-app-manage/pkg/config"
	jwtservice "github.com/suryalaha/EcoTrack-app-manage/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.GetLogLevel("LOG_LEVEL"),
	})))
	defer cleanup.CleanUp()

	pool := repository.NewPool(&repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	})

	kolkata, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		kolkata = time.FixedZone("IST", 5*60*60+30*60)
	}
	clock := service.LocalClock(cfg.GetLocation("APP_TIMEZONE", kolkata))
	m := metrics.New()

	accountsRepo := repository.NewAccountsRepoWithConn(pool)
	settingsRepo := repository.NewSettingsRepoWithConn(pool)

	bot := assistant.New(newProvider(cfg), m)
	if !bot.Enabled() {
		slog.Warn("assistant API key is not set, chat and ETA are disabled")
	}

	paymentService := service.NewPaymentService(
		repository.NewPaymentsRepoWithConn(pool),
		service.NewSimulatedVerifier(
			cfg.GetDuration("PAYMENT_VERIFY_DELAY", 3*time.Second),
			cfg.GetFloat("PAYMENT_SUCCESS_RATE", 0.8),
		),
		m,
	)
	cleanup.Register(&cleanup.Job{
		Name: "waiting payment verifications",
		F: func() error {
			paymentService.Wait()
			return nil
		},
	})

	serv := api.New(&api.ServicesList{
		AccountService:   service.NewAccountService(accountsRepo, settingsRepo, clock, m),
		WasteLogService:  service.NewWasteLogService(accountsRepo, repository.NewWasteLogsRepoWithConn(pool), clock, m),
		BookingService:   service.NewBookingService(repository.NewBookingsRepoWithConn(pool), clock, m),
		PaymentService:   paymentService,
		MessageService:   service.NewMessageService(repository.NewMessagesRepoWithConn(pool), settingsRepo),
		SettingsService:  service.NewSettingsService(settingsRepo),
		TrackingService:  service.NewTrackingService(repository.NewLocationsRepoWithConn(pool), bot, clock),
		ComplaintService: service.NewComplaintService(repository.NewComplaintsRepoWithConn(pool)),
		FeedbackService:  service.NewFeedbackService(repository.NewFeedbackRepoWithConn(pool)),
		ChatService:      bot,
		JwtService:       jwtservice.New(cfg.GetString("JWT_SECRET"), cfg.GetDuration("TOKEN_TTL", time.Hour)),
		MetricsHandler:   m.Handler(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return serv.Run(gctx, cfg.GetStringOr("API_ADDRESS", ":8080"))
	})
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Println("Server error: " + err.Error())
	}
}

// newProvider picks the language model behind the assistant. A missing key
// leaves the assistant disabled.
func newProvider(cfg *config.Config) assistant.Provider {
	switch cfg.GetStringOr("ASSISTANT_PROVIDER", "gemini") {
	case "openai":
		key := cfg.GetString("OPENAI_API_KEY")
		if key == "" {
			return nil
		}
		return assistant.NewOpenAIProvider(key, cfg.GetStringOr("OPENAI_MODEL", assistant.DefaultOpenAIModel))
	default:
		key := cfg.GetString("GEMINI_API_KEY")
		if key == "" {
			return nil
		}
		gp, err := assistant.NewGeminiProvider(context.Background(), key, cfg.GetStringOr("GEMINI_MODEL", assistant.DefaultGeminiModel))
		if err != nil {
			slog.Error("creating gemini client error", slog.String("error", err.Error()))
			return nil
		}
		cleanup.Register(&cleanup.Job{
			Name: "closing gemini client",
			F:    gp.Close,
		})
		return gp
	}
}
