package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/RaikyD/charms-admin/internal/domain"
)

// NotificationRepo persists console notifications as an audit trail.
type NotificationRepo interface {
	Publish(ctx context.Context, n domain.Notification) error
	ListRecent(ctx context.Context, limit int) ([]domain.Notification, error)
}

type NotificationRepository struct {
	pool *pgxpool.Pool
}

func NewNotificationRepository(p *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{pool: p}
}

// Publish stores one notification. Replays of the same id are ignored.
func (r *NotificationRepository) Publish(ctx context.Context, n domain.Notification) error {
	var target *int64
	if n.TargetID != 0 {
		id := n.TargetID
		target = &id
	}
	_, err := r.pool.Exec(ctx,
		`INSERT INTO admin.console_events (id, level, action, target_id, message, occurred_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (id) DO NOTHING`,
		n.ID,
		string(n.Level),
		string(n.Action),
		target,
		n.Message,
		n.At,
	)
	if err != nil {
		return fmt.Errorf("insert console event: %w", err)
	}
	return nil
}

// ListRecent returns the newest notifications first.
func (r *NotificationRepository) ListRecent(ctx context.Context, limit int) ([]domain.Notification, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := r.pool.Query(ctx,
		`SELECT id, level, action, target_id, message, occurred_at
		   FROM admin.console_events
		  ORDER BY occurred_at DESC
		  LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("query console events: %w", err)
	}

	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Notification, error) {
		var (
			n      domain.Notification
			level  string
			action string
			target *int64
		)
		if err := row.Scan(&n.ID, &level, &action, &target, &n.Message, &n.At); err != nil {
			return n, err
		}
		n.Level = domain.Level(level)
		n.Action = domain.Action(action)
		if target != nil {
			n.TargetID = *target
		}
		return n, nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan console events: %w", err)
	}
	return out, nil
}
