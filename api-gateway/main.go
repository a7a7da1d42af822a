package main

import (
	"net/http"
	"os"

	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"tableside/api-gateway/internal/gateway"
	"tableside/config"
)

func main() {
	config.LoadEnv()

	cfg := gateway.Config{
		OrderSvcURL:   getEnv("ORDER_SVC_URL", "http://localhost:8081"),
		NotifySvcURL:  getEnv("NOTIFY_SVC_URL", "http://localhost:8082"),
		LoyaltySvcURL: getEnv("LOYALTY_SVC_URL", "http://localhost:8083"),
	}

	gw := gateway.NewGateway(cfg, &http.Client{})

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
	handler := c.Handler(gw.SetupRoutes())

	logrus.Info("API Gateway starting on port 8080")
	logrus.Fatal(http.ListenAndServe(":8080", handler))
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
