package main

import (
	"context"
	"time"

	"tableside/config"
	httpapi "tableside/loyalty-svc/internal/api/http"
	"tableside/loyalty-svc/internal/service"
	"tableside/loyalty-svc/internal/storage"
)

func main() {
	config.LoadEnv()

	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	reader := config.NewKafkaReader("order-events", "loyalty-svc-consumer")
	defer reader.Close()

	repo := storage.NewPostgresRepository(db)
	cache := storage.NewRedisCache(rdb, 24*time.Hour)
	aggregator := service.NewAggregator(repo, cache)

	consumer := service.NewConsumer(reader, aggregator)
	go consumer.Start(context.Background())

	handler := httpapi.NewHandler(aggregator)
	httpapi.StartServer(":8083", httpapi.NewRouter(handler))
}
