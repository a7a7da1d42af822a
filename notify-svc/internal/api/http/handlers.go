package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"tableside/notify-svc/internal/domain"
	"tableside/notify-svc/internal/service"
)

type Handler struct {
	Notifications service.NotifierInterface
}

func NewHandler(notifications service.NotifierInterface) *Handler {
	return &Handler{Notifications: notifications}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/notifications/comment-reply", h.createCommentReply).Methods("POST")
	r.HandleFunc("/api/notifications/{id}/read", h.markRead).Methods("POST")
	r.HandleFunc("/api/notifications/{scope}/{id}", h.listRecent).Methods("GET")
	r.HandleFunc("/api/notifications/{scope}/{id}/read-all", h.markAllRead).Methods("POST")
	r.HandleFunc("/api/notifications/{scope}/{id}/unread-count", h.unreadCount).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "notify-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

var errBadScope = errors.New("scope must be restaurant or customer")

func scopeFromVars(r *http.Request) (domain.Scope, error) {
	vars := mux.Vars(r)
	kind := domain.ScopeKind(vars["scope"])
	if kind != domain.ScopeRestaurant && kind != domain.ScopeCustomer {
		return domain.Scope{}, errBadScope
	}
	id, err := strconv.Atoi(vars["id"])
	if err != nil || id <= 0 {
		return domain.Scope{}, errors.New("invalid scope id")
	}
	return domain.Scope{Kind: kind, ID: id}, nil
}

func (h *Handler) listRecent(w http.ResponseWriter, r *http.Request) {
	scope, err := scopeFromVars(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	notifications, err := h.Notifications.Recent(r.Context(), scope, limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(notifications)
}

func (h *Handler) markRead(w http.ResponseWriter, r *http.Request) {
	if err := h.Notifications.MarkRead(r.Context(), mux.Vars(r)["id"]); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) markAllRead(w http.ResponseWriter, r *http.Request) {
	scope, err := scopeFromVars(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := h.Notifications.MarkAllRead(r.Context(), scope)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]int64{"marked_read": updated})
}

func (h *Handler) unreadCount(w http.ResponseWriter, r *http.Request) {
	scope, err := scopeFromVars(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	count, err := h.Notifications.UnreadCount(r.Context(), scope)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]int{"unread": count})
}

// createCommentReply is the entry point for the surrounding blog/comment
// surface to notify a customer about a reply.
func (h *Handler) createCommentReply(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		CustomerID   int    `json:"customer_id"`
		BlogPostID   int    `json:"blog_post_id"`
		Title        string `json:"title"`
		Message      string `json:"message"`
		ReplyContent string `json:"reply_content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	if payload.CustomerID <= 0 || payload.BlogPostID <= 0 {
		http.Error(w, "Missing customer_id or blog_post_id", http.StatusBadRequest)
		return
	}

	notification := domain.Notification{
		TargetScope:  domain.ScopeCustomer,
		TargetID:     payload.CustomerID,
		Kind:         domain.KindCommentReply,
		BlogPostID:   payload.BlogPostID,
		Title:        payload.Title,
		Message:      payload.Message,
		ReplyContent: payload.ReplyContent,
	}
	if err := h.Notifications.CreateAndPublish(r.Context(), &notification); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(notification)
}
