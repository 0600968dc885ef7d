package internal

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	logger_adapter "catalog-service/internal/adapters/logger"
	memory_adapter "catalog-service/internal/adapters/memory"
	notifier_adapter "catalog-service/internal/adapters/notifier"
	postgres_adapter "catalog-service/internal/adapters/postgres"
	"catalog-service/internal/adapters/rest"
	"catalog-service/internal/configs"
	"catalog-service/internal/core/port"
	"catalog-service/internal/core/usecase"
	"catalog-service/pkg/fluentlogger"
	"catalog-service/pkg/postgres"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/jackc/pgx/v5/pgxpool"
)

// App – структура приложения
type App struct {
	config       *configs.AppConfig
	dbPool       *pgxpool.Pool
	apiServer    *rest.Server
	fluentClient *fluent.Fluent
	logger       port.LoggerPort
}

// NewApp создает новый экземпляр приложения.
// Это "Composition Root", где все зависимости создаются и связываются.
func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// --- 1. ИНИЦИАЛИЗАЦИЯ ЛОГГЕРОВ ---
	var activeLoggers []port.LoggerPort

	slogCfg := logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   false, // текстовый формат
		UseColor: true,
	}
	stdoutLogger := logger_adapter.NewSlogAdapter(slogCfg)
	activeLoggers = append(activeLoggers, stdoutLogger)

	// Добавляем Fluent Bit логгер, если он включен в конфигурации
	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	// Создаем наш композитный логгер
	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	// --- 2. СОЗДАЕМ БАЗОВЫЙ ЛОГГЕР ПРИЛОЖЕНИЯ С КОНТЕКСТОМ ---
	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})

	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// --- 3. ВЫБОР ХРАНИЛИЩА ---
	// С DATABASE_URL работаем на PostgreSQL, без него поднимаем
	// in-memory хранилище с демонстрационными данными.
	var dbPool *pgxpool.Pool
	var catalogRepository port.CatalogRepositoryPort

	if appConfig.Database.URL != "" {
		dbPool, err = postgres.NewClient(context.Background(), postgres.Config{DatabaseURL: appConfig.Database.URL})
		if err != nil {
			appLogger.Error("Failed to connect to PostgreSQL", err, nil)
			return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		appLogger.Info("Successfully connected to PostgreSQL pool!", nil)

		postgresRepository, err := postgres_adapter.NewPostgresCatalogRepository(dbPool)
		if err != nil {
			appLogger.Error("Failed to create postgres catalog repository", err, nil)
			dbPool.Close()
			return nil, fmt.Errorf("failed to create postgres catalog repository: %w", err)
		}
		if err := postgresRepository.EnsureSchema(context.Background()); err != nil {
			appLogger.Error("Failed to ensure database schema", err, nil)
			dbPool.Close()
			return nil, fmt.Errorf("failed to ensure database schema: %w", err)
		}
		catalogRepository = postgresRepository
		appLogger.Info("Postgres catalog repository initialized.", nil)
	} else {
		catalogRepository = memory_adapter.NewSeededCatalogRepository()
		appLogger.Warn("DATABASE_URL is not set, using seeded in-memory repository", nil)
	}

	// --- 4. УВЕДОМЛЕНИЯ О ЗАЯВКАХ ---
	// Без SMTP-учетки письма не отправляются: заявки просто пишутся в лог.
	var inquiryNotifier port.InquiryNotifierPort
	if appConfig.SMTP.MailEnabled() {
		smtpNotifier, err := notifier_adapter.NewSMTPInquiryNotifier(notifier_adapter.SMTPConfig{
			Host:     appConfig.SMTP.Host,
			Port:     appConfig.SMTP.Port,
			Username: appConfig.SMTP.User,
			Password: appConfig.SMTP.Pass,
			Secure:   appConfig.SMTP.Secure,
			From:     appConfig.SMTP.From,
			To:       appConfig.SMTP.To,
		})
		if err != nil {
			appLogger.Error("Failed to create SMTP notifier", err, nil)
			if dbPool != nil {
				dbPool.Close()
			}
			return nil, fmt.Errorf("failed to create SMTP notifier: %w", err)
		}
		inquiryNotifier = smtpNotifier
		appLogger.Info("SMTP inquiry notifier initialized.", port.Fields{"smtp_host": appConfig.SMTP.Host})
	} else {
		inquiryNotifier = notifier_adapter.NewLogInquiryNotifier(baseLogger)
		appLogger.Info("SMTP credentials are not set, inquiry notifications go to the log only.", nil)
	}

	// --- 5. ИНИЦИАЛИЗАЦИЯ USE CASES (ядра бизнес-логики) ---
	getPropertiesUseCase := usecase.NewGetPropertiesUseCase(catalogRepository)
	getFeaturedPropertiesUseCase := usecase.NewGetFeaturedPropertiesUseCase(catalogRepository)
	searchPropertiesUseCase := usecase.NewSearchPropertiesUseCase(catalogRepository)
	getPropertyDetailsUseCase := usecase.NewGetPropertyDetailsUseCase(catalogRepository)
	createPropertyUseCase := usecase.NewCreatePropertyUseCase(catalogRepository)

	createInquiryUseCase := usecase.NewCreateInquiryUseCase(catalogRepository, inquiryNotifier)
	getInquiriesUseCase := usecase.NewGetInquiriesUseCase(catalogRepository)

	getTeamMembersUseCase := usecase.NewGetTeamMembersUseCase(catalogRepository)
	createTeamMemberUseCase := usecase.NewCreateTeamMemberUseCase(catalogRepository)
	getTestimonialsUseCase := usecase.NewGetTestimonialsUseCase(catalogRepository)
	getFeaturedTestimonialsUseCase := usecase.NewGetFeaturedTestimonialsUseCase(catalogRepository)
	createTestimonialUseCase := usecase.NewCreateTestimonialUseCase(catalogRepository)

	appLogger.Info("All use cases initialized.", nil)

	// --- 6. REST API Server ---
	propertyHandler := rest.NewPropertyHandler(getPropertiesUseCase, getFeaturedPropertiesUseCase,
		searchPropertiesUseCase, getPropertyDetailsUseCase, createPropertyUseCase)
	inquiryHandler := rest.NewInquiryHandler(createInquiryUseCase, getInquiriesUseCase)
	contentHandler := rest.NewContentHandler(getTeamMembersUseCase, createTeamMemberUseCase,
		getTestimonialsUseCase, getFeaturedTestimonialsUseCase, createTestimonialUseCase)

	apiServer := rest.NewServer(appConfig.Rest.PORT, appConfig.Rest.AllowedOrigins,
		propertyHandler, inquiryHandler, contentHandler, baseLogger)
	appLogger.Info("REST API server configured.", nil)

	application := &App{
		config:       appConfig,
		dbPool:       dbPool,
		apiServer:    apiServer,
		fluentClient: fluentClient,
		logger:       appLogger,
	}

	return application, nil
}

// Run запускает все компоненты приложения и управляет их жизненным циклом.
func (a *App) Run() error {
	appCtx, cancelApp := context.WithCancel(context.Background())

	defer func() {
		a.logger.Info("Shutdown sequence initiated...", nil)

		if a.apiServer != nil {
			if err := a.apiServer.Stop(context.Background()); err != nil {
				a.logger.Error("Error during API server shutdown", err, nil)
			}
		}

		if a.dbPool != nil {
			a.dbPool.Close()
			a.logger.Info("PostgreSQL pool closed.", nil)
		}

		a.logger.Info("Application shut down gracefully.", nil)

		if a.fluentClient != nil {
			if err := a.fluentClient.Close(); err != nil {
				// Логируем в stdout, так как fluent может быть уже недоступен
				fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
			}
		}
	}()

	a.logger.Info("Application is starting...", nil)

	errorsCh := make(chan error, 1)

	go func() {
		a.logger.Info("Starting HTTP server...", port.Fields{"port": a.config.Rest.PORT})
		if err := a.apiServer.Start(); err != nil && err != http.ErrServerClosed {
			errorsCh <- fmt.Errorf("failed to start HTTP server: %w", err)
		}
	}()

	// Ожидание сигнала на завершение или ошибки от одного из компонентов
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case err := <-errorsCh:
		a.logger.Error("A critical component failed, shutting down", err, nil)
	case <-appCtx.Done():
		a.logger.Warn("Context was cancelled unexpectedly, shutting down...", nil)
	}

	cancelApp()

	return nil
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		// Возвращаем безопасное значение по умолчанию и логируем предупреждение
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}
