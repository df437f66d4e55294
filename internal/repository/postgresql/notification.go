package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"

	"github.com/Vedant222005/Messmate/internal/db"
	"github.com/Vedant222005/Messmate/internal/domain"
)

type NotificationRepo struct {
	db db.DB
}

func NewNotificationRepo(db db.DB) *NotificationRepo {
	return &NotificationRepo{db: db}
}

func (r *NotificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO notifications (id, user_id, title, message, read, metadata, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `, n.ID, n.UserID, n.Title, n.Message, n.Read, n.Metadata, n.CreatedAt)
	return err
}

func (r *NotificationRepo) CreateBatch(ctx context.Context, ns []*domain.Notification) error {
	for _, n := range ns {
		if err := r.Create(ctx, n); err != nil {
			return err
		}
	}
	return nil
}

func (r *NotificationRepo) ListByUser(ctx context.Context, userID string) ([]*domain.Notification, error) {
	var notifications []*domain.Notification
	err := r.db.Select(ctx, &notifications,
		"SELECT * FROM notifications WHERE user_id = $1 ORDER BY created_at DESC", userID)
	return notifications, err
}

// MarkRead flips the read flag for the recipient's own notification in a
// single recipient-filtered statement.
func (r *NotificationRepo) MarkRead(ctx context.Context, id, userID string) (*domain.Notification, error) {
	var n domain.Notification
	err := r.db.Get(ctx, &n, `
        UPDATE notifications SET read = TRUE
        WHERE id = $1 AND user_id = $2
        RETURNING *
    `, id, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFoundf("notification %s", id)
		}
		return nil, err
	}
	return &n, nil
}
