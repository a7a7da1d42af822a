package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"tableside/loyalty-svc/internal/service"
)

type Handler struct {
	Loyalty service.AggregatorInterface
}

func NewHandler(loyalty service.AggregatorInterface) *Handler {
	return &Handler{Loyalty: loyalty}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")
	r.HandleFunc("/api/loyalty/{customerId}", h.getSummary).Methods("GET")
	r.HandleFunc("/api/loyalty/{customerId}/refresh", h.refreshSummary).Methods("POST")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "loyalty-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *Handler) getSummary(w http.ResponseWriter, r *http.Request) {
	customerID, err := strconv.Atoi(mux.Vars(r)["customerId"])
	if err != nil || customerID <= 0 {
		http.Error(w, "Invalid customer id", http.StatusBadRequest)
		return
	}

	summary, err := h.Loyalty.GetSummary(r.Context(), customerID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summary)
}

func (h *Handler) refreshSummary(w http.ResponseWriter, r *http.Request) {
	customerID, err := strconv.Atoi(mux.Vars(r)["customerId"])
	if err != nil || customerID <= 0 {
		http.Error(w, "Invalid customer id", http.StatusBadRequest)
		return
	}

	summary, err := h.Loyalty.Refresh(r.Context(), customerID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summary)
}
