package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"github.com/m04kA/SMC-ReservationDesk/internal/api"
	discardDraftHandler "github.com/m04kA/SMC-ReservationDesk/internal/api/handlers/discard_draft"
	getDraftHandler "github.com/m04kA/SMC-ReservationDesk/internal/api/handlers/get_draft"
	listReferencesHandler "github.com/m04kA/SMC-ReservationDesk/internal/api/handlers/list_references"
	navigateStepHandler "github.com/m04kA/SMC-ReservationDesk/internal/api/handlers/navigate_step"
	openDraftHandler "github.com/m04kA/SMC-ReservationDesk/internal/api/handlers/open_draft"
	quickAddGuestHandler "github.com/m04kA/SMC-ReservationDesk/internal/api/handlers/quick_add_guest"
	submitDraftHandler "github.com/m04kA/SMC-ReservationDesk/internal/api/handlers/submit_draft"
	updateDraftHandler "github.com/m04kA/SMC-ReservationDesk/internal/api/handlers/update_draft"
	"github.com/m04kA/SMC-ReservationDesk/internal/config"
	"github.com/m04kA/SMC-ReservationDesk/internal/infra/events"
	draftRepo "github.com/m04kA/SMC-ReservationDesk/internal/infra/storage/draft"
	"github.com/m04kA/SMC-ReservationDesk/internal/integrations/pmsapi"
	draftsService "github.com/m04kA/SMC-ReservationDesk/internal/service/drafts"
	referencesService "github.com/m04kA/SMC-ReservationDesk/internal/service/references"
	navigateStepUC "github.com/m04kA/SMC-ReservationDesk/internal/usecase/navigate_step"
	openDraftUC "github.com/m04kA/SMC-ReservationDesk/internal/usecase/open_draft"
	quickAddGuestUC "github.com/m04kA/SMC-ReservationDesk/internal/usecase/quick_add_guest"
	submitDraftUC "github.com/m04kA/SMC-ReservationDesk/internal/usecase/submit_draft"
	updateDraftUC "github.com/m04kA/SMC-ReservationDesk/internal/usecase/update_draft"
	"github.com/m04kA/SMC-ReservationDesk/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationDesk/pkg/logger"
	"github.com/m04kA/SMC-ReservationDesk/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-ReservationDesk...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Репозиторий черновиков (с метриками запросов или без)
	var draftRepository *draftRepo.Repository
	if cfg.Metrics.Enabled {
		draftRepository = draftRepo.NewRepository(dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh))
		log.Info("Database metrics collection started")
	} else {
		draftRepository = draftRepo.NewRepository(db)
	}

	// Клиент API управления объектами
	pmsClient := pmsapi.NewClient(
		cfg.PMSAPI.URL,
		cfg.PMSAPI.Token,
		time.Duration(cfg.PMSAPI.Timeout)*time.Second,
		metricsCollector,
		log,
	)
	log.Info("PMS API client initialized (url=%s, timeout=%ds)", cfg.PMSAPI.URL, cfg.PMSAPI.Timeout)

	// Публикация событий (необязательна)
	var publisher submitDraftUC.EventPublisher
	if cfg.Events.Enabled {
		rabbit, err := events.NewPublisher(cfg.Events.URL, cfg.Events.Exchange, log)
		if err != nil {
			log.Fatal("Failed to connect to RabbitMQ: %v", err)
		}
		defer rabbit.Close()
		publisher = rabbit
		log.Info("Booking events will be published to exchange %s", cfg.Events.Exchange)
	}

	// Инициализируем сервисы
	loader := referencesService.NewLoader(pmsClient, log)
	referenceSvc := referencesService.NewService(pmsClient, log)
	draftSvc := draftsService.NewService(draftRepository, metricsCollector, log)

	// Инициализируем use cases
	openDraftUseCase := openDraftUC.NewUseCase(draftRepository, pmsClient, loader, metricsCollector, log)
	updateDraftUseCase := updateDraftUC.NewUseCase(draftRepository, loader, metricsCollector, log)
	navigateStepUseCase := navigateStepUC.NewUseCase(draftRepository, log)
	submitDraftUseCase := submitDraftUC.NewUseCase(draftRepository, pmsClient, publisher, metricsCollector, log)
	quickAddGuestUseCase := quickAddGuestUC.NewUseCase(draftRepository, pmsClient, log)

	// Инициализируем handlers
	h := api.Handlers{
		OpenDraft:     openDraftHandler.NewHandler(openDraftUseCase, log),
		GetDraft:      getDraftHandler.NewHandler(draftSvc, log),
		UpdateDraft:   updateDraftHandler.NewHandler(updateDraftUseCase, log),
		NavigateStep:  navigateStepHandler.NewHandler(navigateStepUseCase, log),
		SubmitDraft:   submitDraftHandler.NewHandler(submitDraftUseCase, log),
		QuickAddGuest: quickAddGuestHandler.NewHandler(quickAddGuestUseCase, log),
		DiscardDraft:  discardDraftHandler.NewHandler(draftSvc, log),
		References:    listReferencesHandler.NewHandler(referenceSvc, log),
	}

	opts := api.RouterOptions{}
	if cfg.Metrics.Enabled {
		opts.Metrics = metricsCollector
		opts.MetricsPath = cfg.Metrics.Path
		opts.MetricsHandler = metricsCollector.Handler()
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}
	r := api.NewRouter(h, opts)

	// Очистка брошенных черновиков
	cleanupCtx, stopCleanup := context.WithCancel(context.Background())
	defer stopCleanup()
	go draftSvc.RunCleanup(
		cleanupCtx,
		time.Duration(cfg.Drafts.CleanupInterval)*time.Minute,
		time.Duration(cfg.Drafts.TTL)*time.Minute,
	)
	log.Info("Draft cleanup started (ttl=%dm, interval=%dm)", cfg.Drafts.TTL, cfg.Drafts.CleanupInterval)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	stopCleanup()
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
