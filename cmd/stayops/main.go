package main

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stayops/internal/app/commands"
	"stayops/internal/app/dto"
	"stayops/internal/app/handlers/calendarapp"
	"stayops/internal/app/handlers/pricingapp"
	appoutbox "stayops/internal/app/outbox"
	"stayops/internal/app/policies"
	"stayops/internal/app/queries"
	"stayops/internal/app/schedule"
	"stayops/internal/domain/pricing"
	"stayops/internal/domain/reservation"
	"stayops/internal/infra/broker/kafka"
	"stayops/internal/infra/config"
	mongoinfra "stayops/internal/infra/db/mongo"
	ginserver "stayops/internal/infra/http/ginserver"
	"stayops/internal/infra/holidays"
	"stayops/internal/infra/notify"
	"stayops/internal/infra/obs"
	infraoutbox "stayops/internal/infra/outbox"
	"stayops/internal/infra/storage/memory"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	env := getenv("APP_ENV", "dev")
	logger := obs.NewLogger(env)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("configuration invalid", "error", err)
		os.Exit(1)
	}

	app, cleanup, err := buildApplication(ctx, cfg, logger)
	if err != nil {
		logger.Error("application bootstrap failed", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	if path := getenv("PRICING_FIXTURES", ""); path != "" {
		if err := loadPricingFixtures(ctx, path, app.configs); err != nil {
			logger.Warn("pricing fixtures load failed", "error", err, "path", path)
		}
	}

	server := ginserver.NewServer(cfg, obs.Middleware{Logger: logger}, obs.HealthHandlers{
		Ready: app.ready,
	}, app.handlers)

	sweeper := &schedule.AdjustmentSweeper{
		Commands: app.commandBus,
		Interval: cfg.SweepInterval,
		Logger:   logger,
	}
	go func() {
		if err := sweeper.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("adjustment sweeper stopped", "error", err)
		}
	}()

	if app.worker != nil {
		go func() {
			if err := app.worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("outbox worker stopped", "error", err)
			}
		}()
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("http shutdown failed", "error", err)
		}
	}()

	logger.Info("HTTP server starting", "addr", cfg.HTTPAddr, "storage", cfg.StorageMode)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("http server failed", "error", err)
		os.Exit(1)
	}
	logger.Info("HTTP server stopped")
}

type application struct {
	handlers   ginserver.Handlers
	commandBus *commands.InMemoryBus
	configs    pricing.Repository
	worker     *infraoutbox.Worker
	ready      func() error
}

func buildApplication(ctx context.Context, cfg config.Config, logger *slog.Logger) (application, func(), error) {
	var (
		app          application
		configs      pricing.Repository
		reservations reservation.Repository
		box          appoutbox.Outbox
		cleanups     []func()
	)
	cleanup := func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}

	app.ready = func() error { return nil }

	switch cfg.StorageMode {
	case config.StorageMongo:
		client, err := mongoinfra.New(cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			return application{}, cleanup, err
		}
		cleanups = append(cleanups, func() {
			closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = client.Close(closeCtx)
		})
		configs = mongoinfra.NewPricingConfigRepository(client.DB)
		reservations = mongoinfra.NewReservationRepository(client.DB)
		store := infraoutbox.NewStore(client.DB)
		box = store
		app.ready = func() error {
			pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return client.Ping(pingCtx)
		}

		if len(cfg.KafkaBrokers) > 0 {
			producer, err := kafka.NewProducer(cfg.KafkaBrokers, nil)
			if err != nil {
				return application{}, cleanup, err
			}
			cleanups = append(cleanups, func() { _ = producer.Close() })
			app.worker = &infraoutbox.Worker{
				Store:       store,
				Producer:    producer,
				Interval:    cfg.OutboxPollInterval,
				TopicPrefix: cfg.KafkaTopicPrefix,
				Backoff:     cfg.RetryBackoff,
			}
		}
	default:
		memConfigs := memory.NewPricingConfigRepository()
		seedDemoConfig(ctx, memConfigs)
		configs = memConfigs
		reservations = memory.NewReservationRepository()
		box = memory.NewOutbox()
	}

	var holidaySource policies.HolidaySource
	if cfg.HolidayFeedURL != "" {
		holidaySource = &holidays.FeedSource{
			Client:   &http.Client{Timeout: 10 * time.Second},
			Endpoint: cfg.HolidayFeedURL,
			Country:  cfg.HolidayCountry,
			Logger:   logger,
		}
	} else {
		holidaySource = memory.NewHolidayTable(nil)
	}

	assembler := calendarapp.Assembler{
		Configs:      configs,
		Holidays:     holidaySource,
		Reservations: reservations,
		Logger:       logger,
	}

	queryBus := queries.NewInMemoryBus()
	queries.RegisterHandler(queryBus, calendarapp.GetMonthCalendarQuery{}.Key(),
		&calendarapp.GetMonthCalendarHandler{Assembler: assembler})
	queries.RegisterHandler(queryBus, calendarapp.AvailableDatesQuery{}.Key(),
		&calendarapp.AvailableDatesHandler{Assembler: assembler})
	queries.RegisterHandler(queryBus, calendarapp.SuggestedPriceQuery{}.Key(),
		&calendarapp.SuggestedPriceHandler{Assembler: assembler})
	queries.RegisterHandler(queryBus, pricingapp.GetConfigQuery{}.Key(),
		&pricingapp.GetConfigHandler{Configs: configs})

	commandBus := commands.NewInMemoryBus()
	commands.RegisterHandler(commandBus, pricingapp.UpdateConfigCommand{}.Key(),
		&pricingapp.UpdateConfigHandler{Configs: configs})
	commands.RegisterHandler(commandBus, pricingapp.ApplyAdjustmentsCommand{}.Key(),
		&pricingapp.ApplyAdjustmentsHandler{
			Configs: configs,
			Outbox:  box,
			Encoder: appoutbox.JSONEventEncoder{},
			Notify:  notify.LogNotifier{Logger: logger},
			Logger:  logger,
		})

	app.commandBus = commandBus
	app.configs = configs
	app.handlers = ginserver.Handlers{
		Calendar: ginserver.CalendarHandler{Queries: queryBus},
		Pricing:  ginserver.PricingHandler{Queries: queryBus, Commands: commandBus},
	}
	return app, cleanup, nil
}

// seedDemoConfig gives the memory backend one priced property so the API is
// explorable without any setup.
func seedDemoConfig(ctx context.Context, repo *memory.PricingConfigRepository) {
	cfg := pricing.DefaultConfig("demo-property")
	cfg.CustomSeasons = []pricing.CustomSeason{
		{Name: "year-end peak", StartMonth: 12, StartDay: 26, EndMonth: 1, EndDay: 5, Multiplier: 2},
	}
	_ = repo.Save(ctx, cfg)
}

func loadPricingFixtures(ctx context.Context, path string, repo pricing.Repository) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var fixtures []dto.PricingConfig
	if err := json.Unmarshal(raw, &fixtures); err != nil {
		return err
	}
	for _, fixture := range fixtures {
		cfg := fixture.ToDomain(0)
		if err := cfg.Validate(); err != nil {
			return err
		}
		if err := repo.Save(ctx, cfg); err != nil {
			return err
		}
	}
	return nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
