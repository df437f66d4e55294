//go:generate mockgen -source ./service.go -destination=./mocks/service.go -package=mock_subscription
package subscription

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Vedant222005/Messmate/internal/domain"
	"github.com/Vedant222005/Messmate/internal/metrics"
)

type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	Update(ctx context.Context, order *domain.Order) error
	ListByCustomer(ctx context.Context, customerID string) ([]*domain.Order, error)
	ListByProvider(ctx context.Context, providerID string) ([]*domain.Order, error)
	ListPendingByProvider(ctx context.Context, providerID string) ([]*domain.Order, error)
}

type MessRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Mess, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
}

// Service owns the order lifecycle: creation, provider-driven transitions,
// payment bookkeeping and absence handling, with notification side effects.
type Service struct {
	orders        OrderRepository
	messes        MessRepository
	notifications NotificationRepository
	logger        *zap.Logger
}

func New(orders OrderRepository, messes MessRepository, notifications NotificationRepository, logger *zap.Logger) *Service {
	return &Service{
		orders:        orders,
		messes:        messes,
		notifications: notifications,
		logger:        logger,
	}
}

type CreateOrderInput struct {
	MessID             string
	Quantity           int
	SubscriptionPlanID string
	Notes              string
}

func (s *Service) CreateOrder(ctx context.Context, customerID string, in CreateOrderInput) (*domain.Order, error) {
	if in.MessID == "" {
		return nil, domain.Validationf("messId is required")
	}
	quantity := in.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 1 {
		return nil, domain.Validationf("quantity must be at least 1")
	}

	mess, err := s.messes.GetByID(ctx, in.MessID)
	if err != nil {
		return nil, err
	}
	if !mess.IsActive {
		return nil, domain.NotFoundf("mess %s is not available", mess.ID)
	}

	now := time.Now().UTC()
	order := &domain.Order{
		ID:            uuid.New().String(),
		CustomerID:    customerID,
		MessID:        mess.ID,
		Quantity:      quantity,
		PricePerMeal:  mess.PricePerMeal,
		TotalPrice:    mess.PricePerMeal * float64(quantity),
		Status:        domain.StatusPending,
		PaymentStatus: domain.PaymentUnpaid,
		Notes:         in.Notes,
		AbsenceDates:  []domain.AbsenceEntry{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if in.SubscriptionPlanID != "" {
		plan := mess.Plan(in.SubscriptionPlanID)
		if plan == nil {
			return nil, domain.Validationf("subscription plan %s does not exist for mess %s", in.SubscriptionPlanID, mess.ID)
		}
		planID := plan.ID
		totalDays := plan.DurationDays * quantity
		endDate := now.AddDate(0, 0, totalDays)

		order.SubscriptionPlanID = &planID
		order.TotalPrice = plan.Price * float64(quantity)
		order.SubscriptionStartDate = &now
		order.SubscriptionEndDate = &endDate
		order.TotalDays = totalDays
		order.DaysRemaining = totalDays
	}
	order.AmountDue = order.TotalPrice

	if err := s.orders.Create(ctx, order); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("create_order").Inc()
		return nil, err
	}
	metrics.OrdersCreatedTotal.Inc()

	s.notify(ctx, mess.ProviderID, "New Subscription",
		fmt.Sprintf("New subscription request for %d meal(s) at %s", quantity, mess.Name),
		map[string]interface{}{"orderId": order.ID, "type": "order_created"})

	return order, nil
}

type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

func (s *Service) ApproveOrReject(ctx context.Context, orderID, providerID string, decision Decision) (*domain.Order, error) {
	var target domain.OrderStatus
	switch decision {
	case DecisionApprove:
		target = domain.StatusActive
	case DecisionReject:
		target = domain.StatusCancelled
	default:
		return nil, domain.Validationf("decision must be approve or reject")
	}
	return s.transition(ctx, orderID, providerID, target)
}

func (s *Service) UpdateStatus(ctx context.Context, orderID, providerID string, status domain.OrderStatus) (*domain.Order, error) {
	if !status.Valid() {
		return nil, domain.Validationf("invalid status %q", status)
	}
	return s.transition(ctx, orderID, providerID, status)
}

func (s *Service) transition(ctx context.Context, orderID, providerID string, target domain.OrderStatus) (*domain.Order, error) {
	order, mess, err := s.ownedOrder(ctx, orderID, providerID)
	if err != nil {
		return nil, err
	}

	if !domain.CanTransition(order.Status, target) {
		return nil, domain.Validationf("cannot move order from %s to %s", order.Status, target)
	}

	order.Status = target
	order.UpdatedAt = time.Now().UTC()
	if err := s.orders.Update(ctx, order); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("update_status").Inc()
		return nil, err
	}
	metrics.OrderTransitionsTotal.WithLabelValues(string(target)).Inc()

	s.notify(ctx, order.CustomerID, "Order Update",
		fmt.Sprintf("Your order for %d meal(s) at %s is now %s", order.Quantity, mess.Name, target),
		map[string]interface{}{"orderId": order.ID, "type": "status_update"})

	return order, nil
}

// UpdatePaymentStatus records a payment. A paid status is authoritative: it
// forces amountPaid to the full total regardless of any supplied amount.
func (s *Service) UpdatePaymentStatus(ctx context.Context, orderID, providerID string, status domain.PaymentStatus, amountPaid *float64) (*domain.Order, error) {
	if !status.Valid() {
		return nil, domain.Validationf("invalid payment status %q", status)
	}

	order, mess, err := s.ownedOrder(ctx, orderID, providerID)
	if err != nil {
		return nil, err
	}

	if amountPaid != nil {
		if *amountPaid < 0 {
			return nil, domain.Validationf("amountPaid cannot be negative")
		}
		order.AmountPaid = *amountPaid
		order.AmountDue = order.TotalPrice - order.AmountPaid
	}
	if status == domain.PaymentPaid {
		order.AmountPaid = order.TotalPrice
		order.AmountDue = 0
	}
	order.PaymentStatus = status
	order.UpdatedAt = time.Now().UTC()

	if err := s.orders.Update(ctx, order); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("update_payment").Inc()
		return nil, err
	}

	s.notify(ctx, order.CustomerID, "Payment Update",
		fmt.Sprintf("Payment for your order at %s is now %s; amount due %.2f", mess.Name, status, order.AmountDue),
		map[string]interface{}{"orderId": order.ID, "type": "payment_update"})

	return order, nil
}

func (s *Service) RequestAbsence(ctx context.Context, orderID, customerID string, date time.Time, reason string) (*domain.AbsenceEntry, error) {
	if date.IsZero() {
		return nil, domain.Validationf("date is required")
	}

	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.CustomerID != customerID {
		return nil, domain.NotFoundf("order %s", orderID)
	}

	entry := domain.AbsenceEntry{
		ID:     uuid.New().String(),
		Date:   date.UTC(),
		Reason: reason,
		Status: domain.AbsencePending,
	}
	order.AbsenceDates = append(order.AbsenceDates, entry)
	order.UpdatedAt = time.Now().UTC()

	if err := s.orders.Update(ctx, order); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("request_absence").Inc()
		return nil, err
	}

	if mess, err := s.messes.GetByID(ctx, order.MessID); err == nil {
		s.notify(ctx, mess.ProviderID, "Absence Request",
			fmt.Sprintf("Customer has requested absence for %s", entry.Date.Format("2006-01-02")),
			map[string]interface{}{"orderId": order.ID, "type": "absence_request"})
	}

	return &entry, nil
}

func (s *Service) ResolveAbsence(ctx context.Context, orderID, absenceID, providerID string, decision domain.AbsenceStatus) (*domain.AbsenceEntry, error) {
	if decision != domain.AbsenceApproved && decision != domain.AbsenceRejected {
		return nil, domain.Validationf("decision must be approved or rejected")
	}

	order, _, err := s.ownedOrder(ctx, orderID, providerID)
	if err != nil {
		return nil, err
	}

	entry := order.Absence(absenceID)
	if entry == nil {
		return nil, domain.NotFoundf("absence %s in order %s", absenceID, orderID)
	}
	entry.Status = decision
	order.UpdatedAt = time.Now().UTC()

	if err := s.orders.Update(ctx, order); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("resolve_absence").Inc()
		return nil, err
	}

	s.notify(ctx, order.CustomerID, "Absence Request Update",
		fmt.Sprintf("Your absence request for %s has been %s", entry.Date.Format("2006-01-02"), decision),
		map[string]interface{}{"orderId": order.ID, "type": "absence_resolved"})

	return entry, nil
}

func (s *Service) CustomerOrders(ctx context.Context, customerID string) ([]*domain.Order, error) {
	return s.orders.ListByCustomer(ctx, customerID)
}

func (s *Service) ProviderOrders(ctx context.Context, providerID string) ([]*domain.Order, error) {
	return s.orders.ListByProvider(ctx, providerID)
}

func (s *Service) PendingOrders(ctx context.Context, providerID string) ([]*domain.Order, error) {
	return s.orders.ListPendingByProvider(ctx, providerID)
}

// ProviderAbsence is one absence entry flattened out of an order for the
// provider's overview listing.
type ProviderAbsence struct {
	ID         string               `json:"id"`
	OrderID    string               `json:"orderId"`
	CustomerID string               `json:"customer"`
	MessID     string               `json:"mess"`
	Date       time.Time            `json:"date"`
	Reason     string               `json:"reason,omitempty"`
	Status     domain.AbsenceStatus `json:"status"`
}

func (s *Service) ProviderAbsences(ctx context.Context, providerID string) ([]ProviderAbsence, error) {
	orders, err := s.orders.ListByProvider(ctx, providerID)
	if err != nil {
		return nil, err
	}

	absences := make([]ProviderAbsence, 0)
	for _, order := range orders {
		for _, entry := range order.AbsenceDates {
			absences = append(absences, ProviderAbsence{
				ID:         entry.ID,
				OrderID:    order.ID,
				CustomerID: order.CustomerID,
				MessID:     order.MessID,
				Date:       entry.Date,
				Reason:     entry.Reason,
				Status:     entry.Status,
			})
		}
	}
	return absences, nil
}

// ownedOrder loads an order and its mess and enforces that the acting provider
// owns the mess.
func (s *Service) ownedOrder(ctx context.Context, orderID, providerID string) (*domain.Order, *domain.Mess, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}
	mess, err := s.messes.GetByID(ctx, order.MessID)
	if err != nil {
		return nil, nil, err
	}
	if mess.ProviderID != providerID {
		return nil, nil, domain.Forbiddenf("order %s does not belong to this provider", orderID)
	}
	return order, mess, nil
}

// notify writes a notification as a side effect of a lifecycle transition.
// The primary mutation has already been committed, so a failure here is logged
// and swallowed rather than rolled back.
func (s *Service) notify(ctx context.Context, userID, title, message string, metadata map[string]interface{}) {
	n := &domain.Notification{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     title,
		Message:   message,
		Metadata:  metadata,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.notifications.Create(ctx, n); err != nil {
		metrics.NotificationFailuresTotal.Inc()
		s.logger.Warn("notification write failed",
			zap.String("user_id", userID),
			zap.String("title", title),
			zap.Error(err))
		return
	}
	metrics.NotificationsSentTotal.Inc()
}
