package storage

import (
	"context"
	"database/sql"

	"tableside/notify-svc/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) Insert(ctx context.Context, n *domain.Notification) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO notifications (id, target_scope, target_id, kind, order_id,
			blog_post_id, title, message, reply_content, read, created_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, 0), NULLIF($6, 0), $7, $8, NULLIF($9, ''), $10, $11)
	`, n.ID, n.TargetScope, n.TargetID, n.Kind, n.OrderID,
		n.BlogPostID, n.Title, n.Message, n.ReplyContent, n.Read, n.CreatedAt)
	return err
}

func (r *PostgresRepository) Recent(ctx context.Context, scope domain.Scope, limit int) ([]domain.Notification, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, target_scope, target_id, kind, COALESCE(order_id, 0),
			COALESCE(blog_post_id, 0), title, message, COALESCE(reply_content, ''),
			read, created_at
		FROM notifications
		WHERE target_scope = $1 AND target_id = $2
		ORDER BY created_at DESC
		LIMIT $3
	`, scope.Kind, scope.ID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []domain.Notification
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(&n.ID, &n.TargetScope, &n.TargetID, &n.Kind, &n.OrderID,
			&n.BlogPostID, &n.Title, &n.Message, &n.ReplyContent,
			&n.Read, &n.CreatedAt); err != nil {
			continue
		}
		notifications = append(notifications, n)
	}
	return notifications, nil
}

// MarkRead only ever flips unread to read; repeating it is a no-op.
func (r *PostgresRepository) MarkRead(ctx context.Context, notificationID string) error {
	_, err := r.DB.ExecContext(ctx, `
		UPDATE notifications SET read = TRUE
		WHERE id = $1 AND read = FALSE
	`, notificationID)
	return err
}

func (r *PostgresRepository) MarkAllRead(ctx context.Context, scope domain.Scope) (int64, error) {
	result, err := r.DB.ExecContext(ctx, `
		UPDATE notifications SET read = TRUE
		WHERE target_scope = $1 AND target_id = $2 AND read = FALSE
	`, scope.Kind, scope.ID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) UnreadCount(ctx context.Context, scope domain.Scope) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM notifications
		WHERE target_scope = $1 AND target_id = $2 AND read = FALSE
	`, scope.Kind, scope.ID).Scan(&count)
	return count, err
}
