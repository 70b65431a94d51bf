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
	_ "time/tzdata"

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createReservationHandler "github.com/m04kA/LosBucaros-ReservationService/internal/api/handlers/create_reservation"
	healthHandler "github.com/m04kA/LosBucaros-ReservationService/internal/api/handlers/health"
	quotePriceHandler "github.com/m04kA/LosBucaros-ReservationService/internal/api/handlers/quote_price"
	"github.com/m04kA/LosBucaros-ReservationService/internal/api/middleware"
	"github.com/m04kA/LosBucaros-ReservationService/internal/config"
	promotionRepo "github.com/m04kA/LosBucaros-ReservationService/internal/infra/storage/promotion"
	reservationRepo "github.com/m04kA/LosBucaros-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/LosBucaros-ReservationService/internal/integrations/mailer"
	"github.com/m04kA/LosBucaros-ReservationService/internal/service/notification"
	"github.com/m04kA/LosBucaros-ReservationService/internal/service/pricing"
	createReservationUC "github.com/m04kA/LosBucaros-ReservationService/internal/usecase/create_reservation"
	"github.com/m04kA/LosBucaros-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/LosBucaros-ReservationService/pkg/logger"
	"github.com/m04kA/LosBucaros-ReservationService/pkg/metrics"
	"github.com/m04kA/LosBucaros-ReservationService/pkg/txmanager"
)

const dbPingTimeout = 5 * time.Second

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

	log.Info("Starting LosBucaros-ReservationService...")

	location, err := time.LoadLocation(cfg.Reservations.TimeZone)
	if err != nil {
		log.Fatal("Unknown hotel time zone %q: %v", cfg.Reservations.TimeZone, err)
	}

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

	pingCtx, pingCancel := context.WithTimeout(context.Background(), dbPingTimeout)
	err = db.PingContext(pingCtx)
	pingCancel()
	if err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database")

	// Без метрик обёртка просто проксирует запросы
	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}

	// Репозитории и транзакции
	reservationRepository := reservationRepo.NewRepository(wrappedDB)
	promotionRepository := promotionRepo.NewRepository(wrappedDB)

	var txOpts []txmanager.Option
	if cfg.Reservations.SerializableCheck {
		txOpts = append(txOpts, txmanager.WithIsolation(sql.LevelSerializable))
		log.Info("Availability check runs in SERIALIZABLE transactions")
	}
	txMgr := txmanager.NewTransactionManager(wrappedDB, txOpts...)

	// Почта
	mailClient := mailer.NewClient(mailer.Config{
		Host:     cfg.Mail.Host,
		Port:     cfg.Mail.Port,
		Secure:   cfg.Mail.Secure,
		Username: cfg.Mail.User,
		Password: cfg.Mail.Password,
		From:     cfg.Mail.From,
	}, log)
	log.Info("SMTP client initialized (host=%s, port=%d, secure=%t)", cfg.Mail.Host, cfg.Mail.Port, cfg.Mail.Secure)

	logo, err := notification.LoadLogo(cfg.Mail.LogoPath)
	if err != nil {
		log.Warn("Guest emails will be sent without logo: %v", err)
	}

	// Сервисы и use cases
	notificationSvc := notification.NewService(mailClient, cfg.Mail.To, logo, log)
	pricingSvc := pricing.NewService(log)

	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		promotionRepository,
		notificationSvc,
		txMgr,
		metricsCollector,
		location,
		log,
	)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	quotePrice := quotePriceHandler.NewHandler(pricingSvc, log)
	health := healthHandler.NewHandler(wrappedDB, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID, middleware.Logging(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.Use(middleware.Recovery(log))

	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/reserva", createReservation.Handle).Methods(http.MethodPost)
	api.HandleFunc("/cotizacion", quotePrice.Handle).Methods(http.MethodGet)

	// Сайт отеля
	if _, err := os.Stat(cfg.Static.Dir); err != nil {
		log.Warn("Static directory %s is not available: %v", cfg.Static.Dir, err)
	}
	r.PathPrefix("/").Handler(http.FileServer(http.Dir(cfg.Static.Dir))).Methods(http.MethodGet, http.MethodHead)

	cors := gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins(cfg.CORS.AllowedOrigins),
		gorillaHandlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type", middleware.HeaderRequestID}),
		gorillaHandlers.ExposedHeaders([]string{middleware.HeaderRequestID}),
	)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      cors(r),
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

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
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
