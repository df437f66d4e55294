package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"

	"github.com/Vedant222005/Messmate/internal/db"
	"github.com/Vedant222005/Messmate/internal/domain"
)

type OrderRepo struct {
	db db.DB
}

func NewOrderRepo(db db.DB) *OrderRepo {
	return &OrderRepo{db: db}
}

func (r *OrderRepo) Create(ctx context.Context, order *domain.Order) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO orders (
            id, customer_id, mess_id, quantity, price_per_meal, total_price,
            amount_paid, amount_due, status, payment_status, notes,
            subscription_plan_id, subscription_start_date, subscription_end_date,
            total_days, days_remaining, absence_dates, created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
    `, order.ID, order.CustomerID, order.MessID, order.Quantity, order.PricePerMeal, order.TotalPrice,
		order.AmountPaid, order.AmountDue, order.Status, order.PaymentStatus, order.Notes,
		order.SubscriptionPlanID, order.SubscriptionStartDate, order.SubscriptionEndDate,
		order.TotalDays, order.DaysRemaining, order.AbsenceDates, order.CreatedAt, order.UpdatedAt)
	return err
}

func (r *OrderRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	var order domain.Order
	err := r.db.Get(ctx, &order, "SELECT * FROM orders WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFoundf("order %s", id)
		}
		return nil, err
	}
	return &order, nil
}

// Update writes the mutable fields in one statement. Last write wins; there is
// no version check on purpose.
func (r *OrderRepo) Update(ctx context.Context, order *domain.Order) error {
	tag, err := r.db.Exec(ctx, `
        UPDATE orders
        SET
            status = $1,
            payment_status = $2,
            amount_paid = $3,
            amount_due = $4,
            absence_dates = $5,
            updated_at = $6
        WHERE id = $7
    `, order.Status, order.PaymentStatus, order.AmountPaid, order.AmountDue,
		order.AbsenceDates, order.UpdatedAt, order.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFoundf("order %s", order.ID)
	}
	return nil
}

func (r *OrderRepo) ListByCustomer(ctx context.Context, customerID string) ([]*domain.Order, error) {
	var orders []*domain.Order
	err := r.db.Select(ctx, &orders,
		"SELECT * FROM orders WHERE customer_id = $1 ORDER BY created_at DESC", customerID)
	return orders, err
}

// ListByProvider resolves ownership through the mess table so a client-supplied
// provider id is never trusted for filtering.
func (r *OrderRepo) ListByProvider(ctx context.Context, providerID string) ([]*domain.Order, error) {
	var orders []*domain.Order
	err := r.db.Select(ctx, &orders, `
        SELECT o.* FROM orders o
        JOIN messes m ON o.mess_id = m.id
        WHERE m.provider_id = $1
        ORDER BY o.created_at DESC
    `, providerID)
	return orders, err
}

func (r *OrderRepo) ListPendingByProvider(ctx context.Context, providerID string) ([]*domain.Order, error) {
	var orders []*domain.Order
	err := r.db.Select(ctx, &orders, `
        SELECT o.* FROM orders o
        JOIN messes m ON o.mess_id = m.id
        WHERE m.provider_id = $1 AND o.status = $2
        ORDER BY o.created_at ASC
    `, providerID, domain.StatusPending)
	return orders, err
}
