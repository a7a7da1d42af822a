package domain

import "time"

type Badge string

const (
	BadgeNewbie    Badge = "Newbie"
	BadgeExplorer  Badge = "Explorer"
	BadgePreferred Badge = "Preferred"
	BadgeLoyal     Badge = "Loyal Customer"
	BadgeSuper     Badge = "Super Customer"
)

// LoyaltySummary is derived state: completed orders are the ground truth and
// this row is a cache over them. It is never authored directly by a user.
type LoyaltySummary struct {
	CustomerID           int       `json:"customer_id"`
	TotalPoints          int       `json:"total_points"`
	TotalCompletedOrders int       `json:"total_completed_orders"`
	TotalSpent           float64   `json:"total_spent"`
	CurrentBadge         Badge     `json:"current_badge"`
	UpdatedAt            time.Time `json:"updated_at"`
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
	EventStatusChanged = "status_changed"
	StatusCompleted    = "completed"
)
