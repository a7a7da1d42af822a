package service

import (
	"context"

	"tableside/order-svc/internal/domain"
)

type OrderRepository interface {
	InsertOrder(ctx context.Context, order *domain.Order) error
	GetOrder(ctx context.Context, orderID int) (*domain.Order, error)
	GetOrderByToken(ctx context.Context, token string) (*domain.Order, error)
	CompareAndSetStatus(ctx context.Context, orderID int, expected, next domain.OrderStatus) (bool, error)
	ListByRestaurant(ctx context.Context, restaurantID int, filter domain.OrderFilter) ([]domain.Order, error)
	ListByCustomer(ctx context.Context, customerID int, filter domain.OrderFilter) ([]domain.Order, error)
}

type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
}

// TokenIssuer mints opaque order tokens. Uniqueness is enforced by the
// data layer, not the issuer.
type TokenIssuer interface {
	Issue() string
}

type QRGenerator interface {
	Encode(token string) ([]byte, error)
}

type LedgerServiceInterface interface {
	Create(ctx context.Context, order *domain.Order) error
	Transition(ctx context.Context, orderID int, requested domain.OrderStatus, actor domain.ActorRole) (*domain.Order, error)
	Get(ctx context.Context, orderID int) (*domain.Order, error)
	ListByRestaurant(ctx context.Context, restaurantID int, filter domain.OrderFilter) ([]domain.Order, error)
	ListByCustomer(ctx context.Context, customerID int, filter domain.OrderFilter) ([]domain.Order, error)
}

type TokenServiceInterface interface {
	Resolve(ctx context.Context, presented string) (*domain.Order, error)
	QRCodePNG(ctx context.Context, orderID int) ([]byte, error)
}

var (
	_ LedgerServiceInterface = (*LedgerService)(nil)
	_ TokenServiceInterface  = (*TokenService)(nil)
)
