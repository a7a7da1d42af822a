package domain

import (
	"strconv"
	"time"
)

type ScopeKind string

const (
	ScopeRestaurant ScopeKind = "restaurant"
	ScopeCustomer   ScopeKind = "customer"
)

// Scope identifies one delivery channel: a restaurant dashboard or a
// customer app.
type Scope struct {
	Kind ScopeKind
	ID   int
}

// Topic is the realtime channel name, e.g. "restaurant:7" or "customer:12".
func (s Scope) Topic() string {
	return string(s.Kind) + ":" + strconv.Itoa(s.ID)
}

type NotificationKind string

const (
	KindOrderCreated  NotificationKind = "order_created"
	KindStatusChanged NotificationKind = "status_changed"
	KindCommentReply  NotificationKind = "comment_reply"
	KindRatingPrompt  NotificationKind = "rating_prompt"
)

type Notification struct {
	ID           string           `json:"id"`
	TargetScope  ScopeKind        `json:"target_scope"`
	TargetID     int              `json:"target_id"`
	Kind         NotificationKind `json:"kind"`
	OrderID      int              `json:"order_id,omitempty"`
	BlogPostID   int              `json:"blog_post_id,omitempty"`
	Title        string           `json:"title"`
	Message      string           `json:"message"`
	ReplyContent string           `json:"reply_content,omitempty"`
	Read         bool             `json:"read"`
	CreatedAt    time.Time        `json:"created_at"`
}

func (n Notification) Scope() Scope {
	return Scope{Kind: n.TargetScope, ID: n.TargetID}
}

// OrderEvent mirrors the producer-side message on the order-events topic.
type OrderEvent struct {
	Type         string    `json:"type"`
	OrderID      int       `json:"order_id"`
	CustomerID   int       `json:"customer_id"`
	RestaurantID int       `json:"restaurant_id"`
	Status       string    `json:"status"`
	TotalAmount  float64   `json:"total_amount"`
	Timestamp    time.Time `json:"timestamp"`
}

const (
	EventOrderCreated  = "order_created"
	EventStatusChanged = "status_changed"
)
