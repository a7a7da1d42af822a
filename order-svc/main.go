package main

import (
	"tableside/config"
	httpapi "tableside/order-svc/internal/api/http"
	"tableside/order-svc/internal/service"
	"tableside/order-svc/internal/storage"
)

func main() {
	config.LoadEnv()

	db := config.MustInitPostgres()
	defer db.Close()

	writer := config.NewKafkaWriter("order-events")
	defer writer.Close()

	repo := storage.NewPostgresRepository(db)
	publisher := storage.NewKafkaPublisher(writer)

	ledger := service.NewLedgerService(repo, service.UUIDTokenIssuer{}, publisher)
	tokens := service.NewTokenService(repo, service.DefaultQRGenerator{})
	scans := service.NewScanSessionManager()

	handler := httpapi.NewHandler(ledger, tokens, scans)
	httpapi.StartServer(":8081", httpapi.NewRouter(handler))
}
