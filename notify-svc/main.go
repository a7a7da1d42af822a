package main

import (
	"context"

	"tableside/config"
	httpapi "tableside/notify-svc/internal/api/http"
	"tableside/notify-svc/internal/service"
	"tableside/notify-svc/internal/storage"
)

func main() {
	config.LoadEnv()

	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	reader := config.NewKafkaReader("order-events", "notify-svc-consumer")
	defer reader.Close()

	repo := storage.NewPostgresRepository(db)
	channel := storage.NewRedisChannel(rdb)
	notifier := service.NewNotificationService(repo, channel)

	consumer := service.NewConsumer(reader, notifier)
	go consumer.Start(context.Background())

	handler := httpapi.NewHandler(notifier)
	httpapi.StartServer(":8082", httpapi.NewRouter(handler))
}
