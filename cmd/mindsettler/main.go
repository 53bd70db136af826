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

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	bookSlotHandler "github.com/AnshGupta06/Mindsettler-GWOC-26-sub001/internal/api/handlers/book_slot"
	checkDiscountEligibilityHandler "github.com/AnshGupta06/Mindsettler-GWOC-26-sub001/internal/api/handlers/check_discount_eligibility"
	createDiscountRuleHandler "github.com/AnshGupta06/Mindsettler-GWOC-26-sub001/internal/api/handlers/create_discount_rule"
	createSlotHandler "github.com/AnshGupta06/Mindsettler-GWOC-26-sub001/internal/api/handlers/create_slot"
	deleteDiscountRuleHandler "github.com/AnshGupta06/Mindsettler-GWOC-26-sub001/internal/api/handlers/delete_discount_rule"
	deleteSlotHandler "github.com/AnshGupta06/Mindsettler-GWOC-26-sub001/internal/api/handlers/delete_slot"
	getDiscountStatusHandler "github.com/AnshGupta06/Mindsettler-GWOC-26-sub001/internal/api/handlers/get_discount_status"
	listDiscountRulesHandler "github.com/AnshGupta06/Mindsettler-GWOC-26-sub001/internal/api/handlers/list_discount_rules"
	listSlotsHandler "github.com/AnshGupta06/Mindsettler-GWOC-26-sub001/internal/api/handlers/list_slots"
	toggleDiscountStatusHandler "github.com/AnshGupta06/Mindsettler-GWOC-26-sub001/internal/api/handlers/toggle_discount_status"
	"github.com/AnshGupta06/Mindsettler-GWOC-26-sub001/internal/api/middleware"
	"github.com/AnshGupta06/Mindsettler-GWOC-26-sub001/internal/config"
	ledgerRepo "github.com/AnshGupta06/Mindsettler-GWOC-26-sub001/internal/infra/storage/bookingledger"
	ruleRepo "github.com/AnshGupta06/Mindsettler-GWOC-26-sub001/internal/infra/storage/discountrule"
	slotRepo "github.com/AnshGupta06/Mindsettler-GWOC-26-sub001/internal/infra/storage/slot"
	discountsService "github.com/AnshGupta06/Mindsettler-GWOC-26-sub001/internal/service/discounts"
	slotsService "github.com/AnshGupta06/Mindsettler-GWOC-26-sub001/internal/service/slots"
	checkDiscountUC "github.com/AnshGupta06/Mindsettler-GWOC-26-sub001/internal/usecase/check_discount"
	createSlotUC "github.com/AnshGupta06/Mindsettler-GWOC-26-sub001/internal/usecase/create_slot"
	"github.com/AnshGupta06/Mindsettler-GWOC-26-sub001/pkg/dbmetrics"
	"github.com/AnshGupta06/Mindsettler-GWOC-26-sub001/pkg/logger"
	"github.com/AnshGupta06/Mindsettler-GWOC-26-sub001/pkg/metrics"
	"github.com/AnshGupta06/Mindsettler-GWOC-26-sub001/pkg/simpletxmanager"
	"github.com/AnshGupta06/Mindsettler-GWOC-26-sub001/pkg/txmanager"
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

	log.Info("Starting Mindsettler booking service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозитории (с метриками или без)
	var (
		slotRepository   *slotRepo.Repository
		ruleRepository   *ruleRepo.Repository
		ledgerRepository *ledgerRepo.Repository
	)

	// Интерфейс для transaction manager (используется в сервисах и usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
		DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		slotRepository = slotRepo.NewRepository(wrappedDB)
		ruleRepository = ruleRepo.NewRepository(wrappedDB)
		ledgerRepository = ledgerRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		slotRepository = slotRepo.NewRepository(db)
		ruleRepository = ruleRepo.NewRepository(db)
		ledgerRepository = ledgerRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	slotsSvc := slotsService.NewService(slotRepository, log)
	discountsSvc := discountsService.NewService(ruleRepository, txMgr, log)

	// Инициализируем use cases
	createSlotUseCase := createSlotUC.NewUseCase(slotRepository, txMgr, log)
	checkDiscountUseCase := checkDiscountUC.NewUseCase(ruleRepository, ledgerRepository, txMgr, log)

	// Инициализируем handlers
	listSlots := listSlotsHandler.NewHandler(slotsSvc, log)
	createSlot := createSlotHandler.NewHandler(createSlotUseCase, log)
	deleteSlot := deleteSlotHandler.NewHandler(slotsSvc, log)
	bookSlot := bookSlotHandler.NewHandler(slotsSvc, log)
	getDiscountStatus := getDiscountStatusHandler.NewHandler(discountsSvc, log)
	toggleDiscountStatus := toggleDiscountStatusHandler.NewHandler(discountsSvc, log)
	listDiscountRules := listDiscountRulesHandler.NewHandler(discountsSvc, log)
	createDiscountRule := createDiscountRuleHandler.NewHandler(discountsSvc, log)
	deleteDiscountRule := deleteDiscountRuleHandler.NewHandler(discountsSvc, log)
	checkDiscountEligibility := checkDiscountEligibilityHandler.NewHandler(checkDiscountUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Бронирование свободного слота клиентом
	protected.HandleFunc("/slots/{slotId}/book", bookSlot.Handle).Methods(http.MethodPatch)

	// Проверка скидок клиента по количеству подтвержденных бронирований
	protected.HandleFunc("/discounts/eligibility", checkDiscountEligibility.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (требуют X-User-ID из списка администраторов)
	// ============================================================

	admin := api.PathPrefix("").Subrouter()
	admin.Use(middleware.Auth)
	admin.Use(middleware.AdminOnly(cfg.Auth.AdminIDs))

	// --- Слоты доступности ---
	// Календарь слотов психолога
	admin.HandleFunc("/slots", listSlots.Handle).Methods(http.MethodGet)

	// Публикация нового слота доступности
	admin.HandleFunc("/slots", createSlot.Handle).Methods(http.MethodPost)

	// Снятие свободного слота с публикации
	admin.HandleFunc("/slots/{slotId}", deleteSlot.Handle).Methods(http.MethodDelete)

	// --- Управление скидками ---
	// Глобальный переключатель скидок
	admin.HandleFunc("/discounts/status", getDiscountStatus.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/discounts/status", toggleDiscountStatus.Handle).Methods(http.MethodPatch)

	// Правила скидок
	admin.HandleFunc("/discounts/rules", listDiscountRules.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/discounts/rules", createDiscountRule.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/discounts/rules/{ruleId}", deleteDiscountRule.Handle).Methods(http.MethodDelete)

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

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
