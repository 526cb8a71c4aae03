package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	checkAvailabilityHandler "github.com/kartika-hms/booking-gateway/internal/api/handlers/check_availability"
	createBookingHandler "github.com/kartika-hms/booking-gateway/internal/api/handlers/create_booking"
	quoteBookingHandler "github.com/kartika-hms/booking-gateway/internal/api/handlers/quote_booking"
	"github.com/kartika-hms/booking-gateway/internal/api/middleware"
	"github.com/kartika-hms/booking-gateway/internal/config"
	inventoryClient "github.com/kartika-hms/booking-gateway/internal/integrations/inventoryservice"
	checkAvailabilityUC "github.com/kartika-hms/booking-gateway/internal/usecase/check_availability"
	createBookingUC "github.com/kartika-hms/booking-gateway/internal/usecase/create_booking"
	quoteBookingUC "github.com/kartika-hms/booking-gateway/internal/usecase/quote_booking"
	"github.com/kartika-hms/booking-gateway/pkg/logger"
	"github.com/kartika-hms/booking-gateway/pkg/metrics"
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

	log.Info("Starting booking-gateway...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем клиент InventoryService
	credentials := inventoryClient.NewStaticTokenProvider(cfg.InventoryService.APIToken)

	var upstreamMetrics inventoryClient.MetricsRecorder
	if cfg.Metrics.Enabled {
		upstreamMetrics = metricsCollector
	}

	inventory := inventoryClient.NewClient(
		cfg.InventoryService.URL,
		time.Duration(cfg.InventoryService.Timeout)*time.Second,
		credentials,
		upstreamMetrics,
		log,
	)
	log.Info("InventoryService client initialized (url=%s, timeout=%ds)",
		cfg.InventoryService.URL, cfg.InventoryService.Timeout)

	// Инициализируем use cases
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(inventory, log)
	quoteBookingUseCase := quoteBookingUC.NewUseCase(inventory, log)
	createBookingUseCase := createBookingUC.NewUseCase(inventory, log)

	// Инициализируем handlers
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	quoteBooking := quoteBookingHandler.NewHandler(quoteBookingUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Доступность номеров на диапазон дат
	api.HandleFunc("/availability", checkAvailability.Handle).Methods(http.MethodGet)

	// Расчёт стоимости бронирования
	api.HandleFunc("/quotes", quoteBooking.Handle).Methods(http.MethodPost)

	// Создание гостевого бронирования
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

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
