package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"tableside/middlewares"
	"tableside/order-svc/internal/domain"
	"tableside/order-svc/internal/service"
)

type Handler struct {
	Ledger service.LedgerServiceInterface
	Tokens service.TokenServiceInterface
	Scans  *service.ScanSessionManager
}

func NewHandler(ledger service.LedgerServiceInterface, tokens service.TokenServiceInterface, scans *service.ScanSessionManager) *Handler {
	return &Handler{
		Ledger: ledger,
		Tokens: tokens,
		Scans:  scans,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/orders", h.createOrder).Methods("POST")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/status", h.transitionOrder).Methods("POST")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")

	r.HandleFunc("/api/restaurants/{restaurantId}/orders", h.listRestaurantOrders).Methods("GET")
	r.HandleFunc("/api/customers/{customerId}/orders", h.listCustomerOrders).Methods("GET")

	r.HandleFunc("/api/scan", h.resolveScan).Methods("POST")
	r.HandleFunc("/api/scan/sessions", h.startScanSession).Methods("POST")
	r.HandleFunc("/api/scan/sessions/{clientId}", h.stopScanSession).Methods("DELETE")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "order-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// writeServiceError maps the error taxonomy onto status codes so clients can
// tell "already served" (409) apart from "no such order" (404).
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrConflict):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, service.ErrPermission):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, service.ErrTransient):
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func actorRole(r *http.Request, fallback domain.ActorRole) domain.ActorRole {
	if role := r.Header.Get("X-Actor-Role"); role != "" {
		return domain.ActorRole(role)
	}
	return fallback
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var order domain.Order
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	err := h.Ledger.Create(r.Context(), &order)
	middlewares.RecordOrderOperation("create", err == nil)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(order)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	orderID, _ := strconv.Atoi(mux.Vars(r)["id"])
	order, err := h.Ledger.Get(r.Context(), orderID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(order)
}

func (h *Handler) transitionOrder(w http.ResponseWriter, r *http.Request) {
	orderID, _ := strconv.Atoi(mux.Vars(r)["id"])

	var payload struct {
		Status    domain.OrderStatus `json:"status"`
		ActorRole domain.ActorRole   `json:"actor_role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	order, err := h.Ledger.Transition(r.Context(), orderID, payload.Status, actorRole(r, payload.ActorRole))
	middlewares.RecordOrderOperation("transition", err == nil)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(order)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	orderID, _ := strconv.Atoi(mux.Vars(r)["id"])
	png, err := h.Tokens.QRCodePNG(r.Context(), orderID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(png)
}

func orderFilterFromQuery(r *http.Request) domain.OrderFilter {
	query := r.URL.Query()
	return domain.OrderFilter{
		OrderType: domain.OrderType(query.Get("type")),
		Status:    domain.OrderStatus(query.Get("status")),
		Date:      query.Get("date"),
	}
}

func (h *Handler) listRestaurantOrders(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])
	orders, err := h.Ledger.ListByRestaurant(r.Context(), restaurantID, orderFilterFromQuery(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(orders)
}

func (h *Handler) listCustomerOrders(w http.ResponseWriter, r *http.Request) {
	customerID, _ := strconv.Atoi(mux.Vars(r)["customerId"])
	orders, err := h.Ledger.ListByCustomer(r.Context(), customerID, orderFilterFromQuery(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(orders)
}

func (h *Handler) resolveScan(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Value string `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	order, err := h.Tokens.Resolve(r.Context(), payload.Value)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(order)
}

func (h *Handler) startScanSession(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		ClientID string `json:"client_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.ClientID == "" {
		http.Error(w, "Missing client_id", http.StatusBadRequest)
		return
	}

	session := h.Scans.Start(payload.ClientID)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{
		"session_id": session.ID,
		"client_id":  session.ClientID,
	})
}

func (h *Handler) stopScanSession(w http.ResponseWriter, r *http.Request) {
	h.Scans.Stop(mux.Vars(r)["clientId"])
	w.WriteHeader(http.StatusNoContent)
}
