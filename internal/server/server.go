//go:generate mockgen -source ./server.go -destination=./mocks/server.go -package=mock_server
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Vedant222005/Messmate/internal/auth"
	"github.com/Vedant222005/Messmate/internal/catalog"
	"github.com/Vedant222005/Messmate/internal/domain"
	"github.com/Vedant222005/Messmate/internal/kafka"
	"github.com/Vedant222005/Messmate/internal/subscription"
)

type Engine interface {
	CreateOrder(ctx context.Context, customerID string, in subscription.CreateOrderInput) (*domain.Order, error)
	ApproveOrReject(ctx context.Context, orderID, providerID string, decision subscription.Decision) (*domain.Order, error)
	UpdateStatus(ctx context.Context, orderID, providerID string, status domain.OrderStatus) (*domain.Order, error)
	UpdatePaymentStatus(ctx context.Context, orderID, providerID string, status domain.PaymentStatus, amountPaid *float64) (*domain.Order, error)
	RequestAbsence(ctx context.Context, orderID, customerID string, date time.Time, reason string) (*domain.AbsenceEntry, error)
	ResolveAbsence(ctx context.Context, orderID, absenceID, providerID string, decision domain.AbsenceStatus) (*domain.AbsenceEntry, error)
	CustomerOrders(ctx context.Context, customerID string) ([]*domain.Order, error)
	ProviderOrders(ctx context.Context, providerID string) ([]*domain.Order, error)
	PendingOrders(ctx context.Context, providerID string) ([]*domain.Order, error)
	ProviderAbsences(ctx context.Context, providerID string) ([]subscription.ProviderAbsence, error)
}

type Catalog interface {
	CreateMess(ctx context.Context, providerID string, in catalog.MessInput) (*domain.Mess, error)
	GetMess(ctx context.Context, id string) (*domain.Mess, error)
	MessDetails(ctx context.Context, id string) (*domain.Mess, *domain.User, error)
	ListActive(ctx context.Context, filter domain.MessFilter) ([]*domain.Mess, error)
	ListMine(ctx context.Context, providerID string) ([]*domain.Mess, error)
	UpdateMess(ctx context.Context, providerID, id string, in catalog.MessUpdate) (*domain.Mess, error)
	DeleteMess(ctx context.Context, providerID, id string) error
	AddMenuItem(ctx context.Context, providerID, messID string, in catalog.MenuItemInput) (*domain.MenuItem, error)
	UpdateMenuItem(ctx context.Context, providerID, messID, itemID string, in catalog.MenuItemInput) (*domain.MenuItem, error)
	DeleteMenuItem(ctx context.Context, providerID, messID, itemID string) error
	AddPlan(ctx context.Context, providerID, messID string, in catalog.PlanInput) (*domain.SubscriptionPlan, error)
}

type Users interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateProfile(ctx context.Context, user *domain.User) error
}

type Notifications interface {
	Create(ctx context.Context, n *domain.Notification) error
	CreateBatch(ctx context.Context, ns []*domain.Notification) error
	ListByUser(ctx context.Context, userID string) ([]*domain.Notification, error)
	MarkRead(ctx context.Context, id, userID string) (*domain.Notification, error)
}

type Server struct {
	engine        Engine
	catalog       Catalog
	users         Users
	notifications Notifications
	tokens        *auth.TokenIssuer
	logger        *zap.Logger
	server        *http.Server
	AuditManager  *AuditManager
}

func New(engine Engine, cat Catalog, users Users, notifications Notifications, tokens *auth.TokenIssuer, producer kafka.Producer, logger *zap.Logger) *Server {
	auditManager := NewAuditManager(2, 5, 500*time.Millisecond, producer, logger)
	return &Server{
		engine:        engine,
		catalog:       cat,
		users:         users,
		notifications: notifications,
		tokens:        tokens,
		logger:        logger,
		AuditManager:  auditManager,
	}
}

func (s *Server) Run(ctx context.Context, port string) error {
	router := s.setupRoutes()

	s.server = &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	s.AuditManager.Start(ctx)

	s.logger.Info("server starting", zap.String("port", port))
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down server")

	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	s.AuditManager.Shutdown(ctx)

	s.logger.Info("server shutdown completed")
	return nil
}

func (s *Server) setupRoutes() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(s.auditLogMiddleware)

	// auth
	api.HandleFunc("/auth/register", s.handleRegister).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", s.handleLogin).Methods(http.MethodPost)
	api.HandleFunc("/auth/me", s.requireAuth(s.handleGetMe)).Methods(http.MethodGet)
	api.HandleFunc("/auth/me", s.requireAuth(s.handleUpdateMe)).Methods(http.MethodPut)
	api.HandleFunc("/auth/logout", s.requireAuth(s.handleLogout)).Methods(http.MethodPost)

	// mess catalog; specific paths before the {id} patterns
	api.HandleFunc("/messes", s.handleListMesses).Methods(http.MethodGet)
	api.HandleFunc("/messes", s.requireAuth(s.requireRole(domain.RoleProvider, s.handleCreateMess))).Methods(http.MethodPost)
	api.HandleFunc("/messes/mine", s.requireAuth(s.requireRole(domain.RoleProvider, s.handleListMyMesses))).Methods(http.MethodGet)
	api.HandleFunc("/messes/{id}", s.handleGetMess).Methods(http.MethodGet)
	api.HandleFunc("/messes/{id}", s.requireAuth(s.requireRole(domain.RoleProvider, s.handleUpdateMess))).Methods(http.MethodPut)
	api.HandleFunc("/messes/{id}", s.requireAuth(s.requireRole(domain.RoleProvider, s.handleDeleteMess))).Methods(http.MethodDelete)
	api.HandleFunc("/messes/{id}/details", s.handleMessDetails).Methods(http.MethodGet)
	api.HandleFunc("/messes/{id}/menu", s.handleGetMenu).Methods(http.MethodGet)
	api.HandleFunc("/messes/{id}/menu", s.requireAuth(s.requireRole(domain.RoleProvider, s.handleAddMenuItem))).Methods(http.MethodPost)
	api.HandleFunc("/messes/{id}/menu/{itemId}", s.requireAuth(s.requireRole(domain.RoleProvider, s.handleUpdateMenuItem))).Methods(http.MethodPut)
	api.HandleFunc("/messes/{id}/menu/{itemId}", s.requireAuth(s.requireRole(domain.RoleProvider, s.handleDeleteMenuItem))).Methods(http.MethodDelete)
	api.HandleFunc("/messes/{id}/plans", s.requireAuth(s.requireRole(domain.RoleProvider, s.handleAddPlan))).Methods(http.MethodPost)

	// orders
	api.HandleFunc("/orders", s.requireAuth(s.requireRole(domain.RoleCustomer, s.handleCreateOrder))).Methods(http.MethodPost)
	api.HandleFunc("/orders/my", s.requireAuth(s.requireRole(domain.RoleCustomer, s.handleMyOrders))).Methods(http.MethodGet)
	api.HandleFunc("/orders/provider", s.requireAuth(s.requireRole(domain.RoleProvider, s.handleProviderOrders))).Methods(http.MethodGet)
	api.HandleFunc("/orders/pending", s.requireAuth(s.requireRole(domain.RoleProvider, s.handlePendingOrders))).Methods(http.MethodGet)
	api.HandleFunc("/orders/absences/provider", s.requireAuth(s.requireRole(domain.RoleProvider, s.handleProviderAbsences))).Methods(http.MethodGet)
	api.HandleFunc("/orders/{id}/approval", s.requireAuth(s.requireRole(domain.RoleProvider, s.handleOrderApproval))).Methods(http.MethodPatch)
	api.HandleFunc("/orders/{id}/status", s.requireAuth(s.requireRole(domain.RoleProvider, s.handleOrderStatus))).Methods(http.MethodPatch)
	api.HandleFunc("/orders/{id}/payment-status", s.requireAuth(s.requireRole(domain.RoleProvider, s.handlePaymentStatus))).Methods(http.MethodPatch)
	api.HandleFunc("/orders/{id}/absence", s.requireAuth(s.requireRole(domain.RoleCustomer, s.handleRequestAbsence))).Methods(http.MethodPost)
	api.HandleFunc("/orders/{id}/absence/{absenceId}", s.requireAuth(s.requireRole(domain.RoleProvider, s.handleResolveAbsence))).Methods(http.MethodPatch)

	// notifications
	api.HandleFunc("/notifications", s.requireAuth(s.handleListNotifications)).Methods(http.MethodGet)
	api.HandleFunc("/notifications/broadcast", s.requireAuth(s.requireRole(domain.RoleProvider, s.handleBroadcast))).Methods(http.MethodPost)
	api.HandleFunc("/notifications/reminder", s.requireAuth(s.requireRole(domain.RoleProvider, s.handleReminder))).Methods(http.MethodPost)
	api.HandleFunc("/notifications/{id}/read", s.requireAuth(s.handleMarkRead)).Methods(http.MethodPost)

	return r
}
