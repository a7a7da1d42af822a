package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"tableside/middlewares"
)

func NewRouter(handler *Handler) http.Handler {
	r := mux.NewRouter()
	r.Use(middlewares.Prometheus("notify-svc"))
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")
	handler.RegisterRoutes(r)
	return cors.Default().Handler(r)
}

func StartServer(addr string, handler http.Handler) {
	logrus.Infof("Notification Service starting on %s", addr)
	logrus.Fatal(http.ListenAndServe(addr, handler))
}
