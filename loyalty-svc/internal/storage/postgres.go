package storage

import (
	"context"
	"database/sql"

	"tableside/loyalty-svc/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) GetSummary(ctx context.Context, customerID int) (*domain.LoyaltySummary, error) {
	var summary domain.LoyaltySummary
	err := r.DB.QueryRowContext(ctx, `
		SELECT customer_id, total_points, total_completed_orders, total_spent,
			current_badge, updated_at
		FROM loyalty_summaries
		WHERE customer_id = $1
	`, customerID).Scan(&summary.CustomerID, &summary.TotalPoints,
		&summary.TotalCompletedOrders, &summary.TotalSpent,
		&summary.CurrentBadge, &summary.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

func (r *PostgresRepository) UpsertSummary(ctx context.Context, summary *domain.LoyaltySummary) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO loyalty_summaries (customer_id, total_points, total_completed_orders,
			total_spent, current_badge, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (customer_id) DO UPDATE SET
			total_points = EXCLUDED.total_points,
			total_completed_orders = EXCLUDED.total_completed_orders,
			total_spent = EXCLUDED.total_spent,
			current_badge = EXCLUDED.current_badge,
			updated_at = EXCLUDED.updated_at
	`, summary.CustomerID, summary.TotalPoints, summary.TotalCompletedOrders,
		summary.TotalSpent, summary.CurrentBadge, summary.UpdatedAt)
	return err
}

// CompletedOrderTotals scans the ledger directly; completed orders are the
// ground truth the summary derives from.
func (r *PostgresRepository) CompletedOrderTotals(ctx context.Context, customerID int) (int, float64, error) {
	var count int
	var spent float64
	err := r.DB.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(total_amount), 0)
		FROM orders
		WHERE customer_id = $1 AND status = 'completed'
	`, customerID).Scan(&count, &spent)
	return count, spent, err
}
