package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"tableside/order-svc/internal/domain"
)

// allowedTransitions is the full edge set of the fulfillment state machine.
// Terminal states have no outgoing edges.
var allowedTransitions = map[domain.OrderStatus][]domain.OrderStatus{
	domain.StatusPaid:      {domain.StatusPreparing, domain.StatusCancelled},
	domain.StatusPreparing: {domain.StatusReady, domain.StatusCancelled},
	domain.StatusReady:     {domain.StatusServed, domain.StatusCompleted, domain.StatusCancelled},
	domain.StatusServed:    {domain.StatusCompleted, domain.StatusCancelled},
	domain.StatusCompleted: {},
	domain.StatusCancelled: {},
}

func transitionAllowed(from, to domain.OrderStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func roleMayRequest(actor domain.ActorRole, requested domain.OrderStatus) bool {
	switch actor {
	case domain.RoleRestaurantStaff, domain.RoleAdmin:
		return true
	case domain.RoleCustomer:
		return requested == domain.StatusCancelled
	default:
		return false
	}
}

const maxTransitionAttempts = 3

type LedgerService struct {
	repo      OrderRepository
	tokens    TokenIssuer
	publisher EventPublisher
}

func NewLedgerService(repo OrderRepository, tokens TokenIssuer, publisher EventPublisher) *LedgerService {
	return &LedgerService{
		repo:      repo,
		tokens:    tokens,
		publisher: publisher,
	}
}

const tokenInsertRetries = 3

func (s *LedgerService) Create(ctx context.Context, order *domain.Order) error {
	if err := validateNewOrder(order); err != nil {
		return err
	}

	// The client total is never trusted.
	order.TotalAmount = 0
	for _, item := range order.Items {
		order.TotalAmount += float64(item.Quantity) * item.UnitPrice
	}
	if order.TotalAmount <= 0 {
		return fmt.Errorf("%w: order total must be positive", ErrValidation)
	}

	order.Status = domain.StatusPaid

	// Token collisions are rejected by the unique constraint; retry with a
	// fresh token before surfacing anything to the caller.
	var err error
	for attempt := 0; attempt < tokenInsertRetries; attempt++ {
		order.QRToken = s.tokens.Issue()
		err = s.repo.InsertOrder(ctx, order)
		if err == nil {
			break
		}
		if !errors.Is(err, domain.ErrDuplicateToken) {
			return asTransient(err)
		}
	}
	if err != nil {
		return fmt.Errorf("%w: could not assign a unique qr token", ErrConflict)
	}

	s.publish(ctx, domain.OrderEvent{
		Type:         domain.EventOrderCreated,
		OrderID:      order.ID,
		CustomerID:   order.CustomerID,
		RestaurantID: order.RestaurantID,
		Status:       order.Status,
		TotalAmount:  order.TotalAmount,
		Timestamp:    time.Now(),
	})
	return nil
}

func validateNewOrder(order *domain.Order) error {
	if order.CustomerID <= 0 || order.RestaurantID <= 0 {
		return fmt.Errorf("%w: missing customer or restaurant", ErrValidation)
	}
	if order.OrderType != domain.OrderTypeDineIn && order.OrderType != domain.OrderTypeTakeaway {
		return fmt.Errorf("%w: unknown order type %q", ErrValidation, order.OrderType)
	}
	if len(order.Items) == 0 {
		return fmt.Errorf("%w: empty cart", ErrValidation)
	}
	for _, item := range order.Items {
		if item.Quantity <= 0 {
			return fmt.Errorf("%w: non-positive quantity for item %s", ErrValidation, item.ItemID)
		}
		if item.UnitPrice < 0 {
			return fmt.Errorf("%w: negative price for item %s", ErrValidation, item.ItemID)
		}
	}
	if order.OrderType == domain.OrderTypeTakeaway {
		if order.ReservationDate != "" || order.ReservationTime != "" || order.PartySize != 0 {
			return fmt.Errorf("%w: reservation fields are dine_in only", ErrValidation)
		}
	}
	return nil
}

// Transition applies a status change through compare-and-set against the
// persisted status. A request for the current status is an idempotent no-op
// and emits nothing.
func (s *LedgerService) Transition(ctx context.Context, orderID int, requested domain.OrderStatus, actor domain.ActorRole) (*domain.Order, error) {
	for attempt := 0; attempt < maxTransitionAttempts; attempt++ {
		order, err := s.repo.GetOrder(ctx, orderID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, ErrNotFound
			}
			return nil, asTransient(err)
		}

		if order.Status == requested {
			return order, nil
		}

		if !roleMayRequest(actor, requested) {
			return nil, fmt.Errorf("%w: %s may not request %s", ErrPermission, actor, requested)
		}

		if !transitionAllowed(order.Status, requested) {
			return nil, fmt.Errorf("%w: %s -> %s", ErrConflict, order.Status, requested)
		}

		swapped, err := s.repo.CompareAndSetStatus(ctx, orderID, order.Status, requested)
		if err != nil {
			return nil, asTransient(err)
		}
		if !swapped {
			// Lost the race; re-read and re-evaluate against the new status.
			continue
		}

		order.Status = requested
		order.UpdatedAt = time.Now()

		s.publish(ctx, domain.OrderEvent{
			Type:         domain.EventStatusChanged,
			OrderID:      order.ID,
			CustomerID:   order.CustomerID,
			RestaurantID: order.RestaurantID,
			Status:       requested,
			TotalAmount:  order.TotalAmount,
			Timestamp:    time.Now(),
		})
		return order, nil
	}
	return nil, fmt.Errorf("%w: order %d kept changing underneath the request", ErrConflict, orderID)
}

func (s *LedgerService) Get(ctx context.Context, orderID int) (*domain.Order, error) {
	order, err := s.repo.GetOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, asTransient(err)
	}
	return order, nil
}

func (s *LedgerService) ListByRestaurant(ctx context.Context, restaurantID int, filter domain.OrderFilter) ([]domain.Order, error) {
	orders, err := s.repo.ListByRestaurant(ctx, restaurantID, filter)
	return orders, asTransient(err)
}

func (s *LedgerService) ListByCustomer(ctx context.Context, customerID int, filter domain.OrderFilter) ([]domain.Order, error) {
	orders, err := s.repo.ListByCustomer(ctx, customerID, filter)
	return orders, asTransient(err)
}

// publish is best effort: a broker hiccup must not undo an accepted write.
func (s *LedgerService) publish(ctx context.Context, event domain.OrderEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
		logrus.Warnf("failed to publish %s event for order %d: %v", event.Type, event.OrderID, err)
	}
}
