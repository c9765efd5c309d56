// Auto-completes transactions stuck in accepted for 2+ days. Meant to be
// run from cron; the same sweep is reachable via POST /transactions/auto-complete.
package main

import (
	"log"

	"github.com/dontkeep/order-menu-backend/configs"
	"github.com/dontkeep/order-menu-backend/repository"
	"github.com/dontkeep/order-menu-backend/services"
)

func main() {
	cfg := configs.LoadConfig()

	db, err := configs.Connect(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer func() {
		if err := configs.Close(db); err != nil {
			log.Printf("close database: %v", err)
		}
	}()

	trxSvc := services.NewTransactionService(
		db,
		repository.NewTransactionRepository(db),
		repository.NewCartRepository(db),
		repository.NewMenuRepository(db),
		repository.NewUserRepository(db),
		services.NewShippingService(repository.NewOngkirRepository(db)),
		services.NewPaymentService(cfg.MidtransServerKey, cfg.MidtransBaseURL),
	)

	n, err := trxSvc.AutoComplete()
	if err != nil {
		log.Fatalf("auto-complete sweep: %v", err)
	}
	log.Printf("auto-completed %d transaction(s)", n)
}
