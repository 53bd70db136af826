package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"time"

	_ "github.com/lib/pq"

	"github.com/AnshGupta06/Mindsettler-GWOC-26-sub001/internal/config"
	ruleRepo "github.com/AnshGupta06/Mindsettler-GWOC-26-sub001/internal/infra/storage/discountrule"
	discountsService "github.com/AnshGupta06/Mindsettler-GWOC-26-sub001/internal/service/discounts"
	"github.com/AnshGupta06/Mindsettler-GWOC-26-sub001/pkg/logger"
	"github.com/AnshGupta06/Mindsettler-GWOC-26-sub001/pkg/simpletxmanager"
)

// Операторская утилита: атомарно заменяет все правила скидок дефолтным набором.
// Запускается вручную, вне HTTP-сервера.
func main() {
	configPath := flag.String("config", "config.toml", "путь к файлу конфигурации")
	timeout := flag.Duration("timeout", 30*time.Second, "таймаут операции")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("resetdiscounts: starting")

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}

	ruleRepository := ruleRepo.NewRepository(db)
	txMgr := simpletxmanager.NewTransactionManager(db)
	discountsSvc := discountsService.NewService(ruleRepository, txMgr, log)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	result, err := discountsSvc.ResetToDefaults(ctx)
	if err != nil {
		log.Fatal("resetdiscounts: failed to reset rules: %v", err)
	}

	log.Info("resetdiscounts: seeded %d default rules", len(result.Rules))
	for _, r := range result.Rules {
		log.Info("resetdiscounts: rule id=%d range=[%d..%d] percent=%.2f label=%q",
			r.ID, r.BookingCountFrom, r.BookingCountTo, r.DiscountPercent, r.Label)
	}

	fmt.Printf("Discount rules reset to defaults (%d rules)\n", len(result.Rules))
}
