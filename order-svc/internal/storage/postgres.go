package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"tableside/order-svc/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) InsertOrder(ctx context.Context, order *domain.Order) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (customer_id, restaurant_id, order_type, total_amount,
			payment_method, status, qr_token, reservation_date, reservation_time, party_size)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), NULLIF($9, ''), NULLIF($10, 0))
		RETURNING id, created_at, updated_at
	`, order.CustomerID, order.RestaurantID, order.OrderType, order.TotalAmount,
		order.PaymentMethod, order.Status, order.QRToken,
		order.ReservationDate, order.ReservationTime, order.PartySize).
		Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateToken
		}
		return err
	}

	for _, item := range order.Items {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, item_id, name, quantity, unit_price)
			VALUES ($1, $2, $3, $4, $5)
		`, order.ID, item.ItemID, item.Name, item.Quantity, item.UnitPrice); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func isUniqueViolation(err error) bool {
	pqErr, ok := err.(*pq.Error)
	return ok && pqErr.Code == "23505"
}

const orderColumns = `
	id, customer_id, restaurant_id, order_type, total_amount, payment_method,
	status, qr_token, COALESCE(reservation_date, ''), COALESCE(reservation_time, ''),
	COALESCE(party_size, 0), created_at, updated_at`

func (r *PostgresRepository) scanOrder(row *sql.Row) (*domain.Order, error) {
	var order domain.Order
	err := row.Scan(&order.ID, &order.CustomerID, &order.RestaurantID, &order.OrderType,
		&order.TotalAmount, &order.PaymentMethod, &order.Status, &order.QRToken,
		&order.ReservationDate, &order.ReservationTime, &order.PartySize,
		&order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *PostgresRepository) GetOrder(ctx context.Context, orderID int) (*domain.Order, error) {
	order, err := r.scanOrder(r.DB.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1`, orderID))
	if err != nil {
		return nil, err
	}
	return r.attachItems(ctx, order)
}

func (r *PostgresRepository) GetOrderByToken(ctx context.Context, token string) (*domain.Order, error) {
	order, err := r.scanOrder(r.DB.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE qr_token = $1`, token))
	if err != nil {
		return nil, err
	}
	return r.attachItems(ctx, order)
}

func (r *PostgresRepository) attachItems(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT item_id, name, quantity, unit_price
		FROM order_items
		WHERE order_id = $1
		ORDER BY id
	`, order.ID)
	if err != nil {
		return order, err
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ItemID, &item.Name, &item.Quantity, &item.UnitPrice); err != nil {
			continue
		}
		order.Items = append(order.Items, item)
	}
	return order, nil
}

// CompareAndSetStatus flips status only when the persisted value still
// matches the expectation. This is the sole write path for status.
func (r *PostgresRepository) CompareAndSetStatus(ctx context.Context, orderID int, expected, next domain.OrderStatus) (bool, error) {
	result, err := r.DB.ExecContext(ctx, `
		UPDATE orders SET status = $1, updated_at = now()
		WHERE id = $2 AND status = $3
	`, next, orderID, expected)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *PostgresRepository) ListByRestaurant(ctx context.Context, restaurantID int, filter domain.OrderFilter) ([]domain.Order, error) {
	return r.list(ctx, "restaurant_id", restaurantID, filter)
}

func (r *PostgresRepository) ListByCustomer(ctx context.Context, customerID int, filter domain.OrderFilter) ([]domain.Order, error) {
	return r.list(ctx, "customer_id", customerID, filter)
}

func (r *PostgresRepository) list(ctx context.Context, scopeColumn string, scopeID int, filter domain.OrderFilter) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE ` + scopeColumn + ` = $1`
	args := []interface{}{scopeID}

	if filter.OrderType != "" {
		args = append(args, filter.OrderType)
		query += fmt.Sprintf(" AND order_type = $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.Date != "" {
		args = append(args, filter.Date)
		query += fmt.Sprintf(" AND created_at::date = $%d::date", len(args))
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(&order.ID, &order.CustomerID, &order.RestaurantID, &order.OrderType,
			&order.TotalAmount, &order.PaymentMethod, &order.Status, &order.QRToken,
			&order.ReservationDate, &order.ReservationTime, &order.PartySize,
			&order.CreatedAt, &order.UpdatedAt); err != nil {
			continue
		}
		orders = append(orders, order)
	}
	return orders, nil
}
