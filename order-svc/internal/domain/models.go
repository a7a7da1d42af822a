package domain

import "time"

type OrderType string

const (
	OrderTypeDineIn   OrderType = "dine_in"
	OrderTypeTakeaway OrderType = "takeaway"
)

type OrderStatus string

const (
	StatusPaid      OrderStatus = "paid"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusServed    OrderStatus = "served"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

// IsTerminal reports whether no further transition is permitted.
func (s OrderStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

type ActorRole string

const (
	RoleCustomer        ActorRole = "customer"
	RoleRestaurantStaff ActorRole = "restaurant_staff"
	RoleAdmin           ActorRole = "admin"
)

type Order struct {
	ID              int         `json:"id"`
	CustomerID      int         `json:"customer_id"`
	RestaurantID    int         `json:"restaurant_id"`
	OrderType       OrderType   `json:"order_type"`
	TotalAmount     float64     `json:"total_amount"`
	PaymentMethod   string      `json:"payment_method"`
	Status          OrderStatus `json:"status"`
	QRToken         string      `json:"qr_token,omitempty"`
	ReservationDate string      `json:"reservation_date,omitempty"`
	ReservationTime string      `json:"reservation_time,omitempty"`
	PartySize       int         `json:"party_size,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
	Items           []OrderItem `json:"items"`
}

type OrderItem struct {
	ItemID    string  `json:"item_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// OrderFilter narrows list projections. Zero values mean "no filter".
type OrderFilter struct {
	OrderType OrderType
	Status    OrderStatus
	Date      string // calendar date, YYYY-MM-DD
}

// Event types carried on the order-events topic.
const (
	EventOrderCreated  = "order_created"
	EventStatusChanged = "status_changed"
)

type OrderEvent struct {
	Type         string      `json:"type"`
	OrderID      int         `json:"order_id"`
	CustomerID   int         `json:"customer_id"`
	RestaurantID int         `json:"restaurant_id"`
	Status       OrderStatus `json:"status"`
	TotalAmount  float64     `json:"total_amount"`
	Timestamp    time.Time   `json:"timestamp"`
}
