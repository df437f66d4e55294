package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/Vedant222005/Messmate/internal/auth"
	"github.com/Vedant222005/Messmate/internal/domain"
	"github.com/Vedant222005/Messmate/internal/kafka"
	mock_server "github.com/Vedant222005/Messmate/internal/server/mocks"
	"github.com/Vedant222005/Messmate/internal/subscription"
)

type serverMocks struct {
	engine        *mock_server.MockEngine
	catalog       *mock_server.MockCatalog
	users         *mock_server.MockUsers
	notifications *mock_server.MockNotifications
	tokens        *auth.TokenIssuer
}

func newTestServer(t *testing.T) (*Server, serverMocks) {
	ctrl := gomock.NewController(t)
	m := serverMocks{
		engine:        mock_server.NewMockEngine(ctrl),
		catalog:       mock_server.NewMockCatalog(ctrl),
		users:         mock_server.NewMockUsers(ctrl),
		notifications: mock_server.NewMockNotifications(ctrl),
		tokens:        auth.NewTokenIssuerWithSecret("test-secret", time.Hour),
	}
	srv := New(m.engine, m.catalog, m.users, m.notifications, m.tokens, kafka.NewConsoleProducer(), zap.NewNop())
	return srv, m
}

func testCustomer() *domain.User {
	return &domain.User{ID: "customer-1", Name: "Asha", Email: "asha@example.com", Role: domain.RoleCustomer}
}

func testProvider() *domain.User {
	return &domain.User{ID: "provider-1", Name: "Sharma", Email: "sharma@example.com", Role: domain.RoleProvider}
}

func withUser(r *http.Request, user *domain.User) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), userContextKey, user))
}

func jsonBody(t *testing.T, v interface{}) *bytes.Reader {
	body, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(body)
}

func TestRequireAuth(t *testing.T) {
	srv, m := newTestServer(t)

	handler := srv.requireAuth(func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, currentUser(r))
	})

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		rr := httptest.NewRecorder()

		handler(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.JSONEq(t, `{"message":"Unauthorized"}`, rr.Body.String())
	})

	t.Run("garbage token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		rr := httptest.NewRecorder()

		handler(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.JSONEq(t, `{"message":"Invalid token"}`, rr.Body.String())
	})

	t.Run("valid token resolves the user", func(t *testing.T) {
		user := testCustomer()
		token, err := m.tokens.Sign(user.ID, user.Role)
		require.NoError(t, err)

		m.users.EXPECT().GetByID(gomock.Any(), user.ID).Return(user, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()

		handler(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"id":"customer-1"`)
	})

	t.Run("token for a deleted user", func(t *testing.T) {
		token, err := m.tokens.Sign("ghost", domain.RoleCustomer)
		require.NoError(t, err)

		m.users.EXPECT().GetByID(gomock.Any(), "ghost").Return(nil, domain.NotFoundf("user ghost"))

		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()

		handler(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestRequireRole(t *testing.T) {
	srv, _ := newTestServer(t)

	handler := srv.requireRole(domain.RoleProvider, func(w http.ResponseWriter, _ *http.Request) {
		respondMessage(w, http.StatusOK, "ok")
	})

	t.Run("matching role passes", func(t *testing.T) {
		req := withUser(httptest.NewRequest(http.MethodGet, "/api/orders/provider", nil), testProvider())
		rr := httptest.NewRecorder()

		handler(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("wrong role is forbidden", func(t *testing.T) {
		req := withUser(httptest.NewRequest(http.MethodGet, "/api/orders/provider", nil), testCustomer())
		rr := httptest.NewRecorder()

		handler(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.JSONEq(t, `{"message":"Forbidden"}`, rr.Body.String())
	})

	t.Run("no user is unauthorized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/orders/provider", nil)
		rr := httptest.NewRecorder()

		handler(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestHandleRegister(t *testing.T) {
	srv, m := newTestServer(t)

	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMocks     func()
		expectedStatus int
	}{
		{
			name: "successful registration defaults to customer",
			requestBody: map[string]interface{}{
				"name":     "Asha",
				"email":    "Asha@Example.com",
				"password": "secret123",
			},
			setupMocks: func() {
				m.users.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, user *domain.User) error {
						assert.Equal(t, "asha@example.com", user.Email)
						assert.Equal(t, domain.RoleCustomer, user.Role)
						assert.NotEmpty(t, user.PasswordHash)
						assert.NotEqual(t, "secret123", user.PasswordHash)
						return nil
					})
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "provider registration",
			requestBody: map[string]interface{}{
				"name":     "Sharma",
				"email":    "sharma@example.com",
				"password": "secret123",
				"role":     "provider",
			},
			setupMocks: func() {
				m.users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing password",
			requestBody:    map[string]interface{}{"name": "Asha", "email": "asha@example.com"},
			setupMocks:     func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "invalid role",
			requestBody: map[string]interface{}{
				"name":     "Asha",
				"email":    "asha@example.com",
				"password": "secret123",
				"role":     "superuser",
			},
			setupMocks:     func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "duplicate email",
			requestBody: map[string]interface{}{
				"name":     "Asha",
				"email":    "asha@example.com",
				"password": "secret123",
			},
			setupMocks: func() {
				m.users.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(domain.Validationf("email already in use"))
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMocks()

			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", jsonBody(t, tc.requestBody))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			srv.handleRegister(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedStatus == http.StatusCreated {
				var resp struct {
					Token string       `json:"token"`
					User  *domain.User `json:"user"`
				}
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.NotEmpty(t, resp.Token)
				assert.NotEmpty(t, resp.User.ID)
			}
		})
	}
}

func TestHandleLogin(t *testing.T) {
	srv, m := newTestServer(t)

	hash, err := auth.HashPassword("secret123")
	require.NoError(t, err)

	t.Run("successful login", func(t *testing.T) {
		user := testCustomer()
		user.PasswordHash = hash
		m.users.EXPECT().GetByEmail(gomock.Any(), "asha@example.com").Return(user, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
			jsonBody(t, map[string]string{"email": "asha@example.com", "password": "secret123"}))
		rr := httptest.NewRecorder()

		srv.handleLogin(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"token"`)
	})

	t.Run("wrong password", func(t *testing.T) {
		user := testCustomer()
		user.PasswordHash = hash
		m.users.EXPECT().GetByEmail(gomock.Any(), "asha@example.com").Return(user, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
			jsonBody(t, map[string]string{"email": "asha@example.com", "password": "wrong"}))
		rr := httptest.NewRecorder()

		srv.handleLogin(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.JSONEq(t, `{"message":"Invalid credentials"}`, rr.Body.String())
	})

	t.Run("unknown email", func(t *testing.T) {
		m.users.EXPECT().GetByEmail(gomock.Any(), "ghost@example.com").
			Return(nil, domain.NotFoundf("user with email ghost@example.com"))

		req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
			jsonBody(t, map[string]string{"email": "ghost@example.com", "password": "secret123"}))
		rr := httptest.NewRecorder()

		srv.handleLogin(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestHandleCreateOrder(t *testing.T) {
	srv, m := newTestServer(t)

	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMocks     func()
		expectedStatus int
	}{
		{
			name: "successful order",
			requestBody: map[string]interface{}{
				"messId":             "mess-1",
				"quantity":           2,
				"subscriptionPlanId": "plan-1",
			},
			setupMocks: func() {
				m.engine.EXPECT().CreateOrder(gomock.Any(), "customer-1", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, in subscription.CreateOrderInput) (*domain.Order, error) {
						assert.Equal(t, "mess-1", in.MessID)
						assert.Equal(t, 2, in.Quantity)
						assert.Equal(t, "plan-1", in.SubscriptionPlanID)
						return &domain.Order{ID: "order-1", Status: domain.StatusPending}, nil
					})
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:        "validation error maps to 400",
			requestBody: map[string]interface{}{},
			setupMocks: func() {
				m.engine.EXPECT().CreateOrder(gomock.Any(), "customer-1", gomock.Any()).
					Return(nil, domain.Validationf("messId is required"))
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "missing mess maps to 404",
			requestBody: map[string]interface{}{"messId": "mess-404"},
			setupMocks: func() {
				m.engine.EXPECT().CreateOrder(gomock.Any(), "customer-1", gomock.Any()).
					Return(nil, domain.NotFoundf("mess mess-404"))
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMocks()

			req := httptest.NewRequest(http.MethodPost, "/api/orders", jsonBody(t, tc.requestBody))
			req = withUser(req, testCustomer())
			rr := httptest.NewRecorder()

			srv.handleCreateOrder(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
		})
	}
}

func TestHandleOrderApproval(t *testing.T) {
	srv, m := newTestServer(t)

	t.Run("approve", func(t *testing.T) {
		m.engine.EXPECT().ApproveOrReject(gomock.Any(), "order-1", "provider-1", subscription.DecisionApprove).
			Return(&domain.Order{ID: "order-1", Status: domain.StatusActive}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/api/orders/order-1/approval",
			jsonBody(t, map[string]string{"decision": "approve"}))
		req = withUser(req, testProvider())
		req = mux.SetURLVars(req, map[string]string{"id": "order-1"})
		rr := httptest.NewRecorder()

		srv.handleOrderApproval(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"status":"active"`)
	})

	t.Run("foreign provider maps to 403", func(t *testing.T) {
		m.engine.EXPECT().ApproveOrReject(gomock.Any(), "order-1", "provider-1", subscription.DecisionApprove).
			Return(nil, domain.Forbiddenf("order order-1 does not belong to this provider"))

		req := httptest.NewRequest(http.MethodPatch, "/api/orders/order-1/approval",
			jsonBody(t, map[string]string{"decision": "approve"}))
		req = withUser(req, testProvider())
		req = mux.SetURLVars(req, map[string]string{"id": "order-1"})
		rr := httptest.NewRecorder()

		srv.handleOrderApproval(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}

func TestHandlePaymentStatus(t *testing.T) {
	srv, m := newTestServer(t)

	t.Run("partial payment forwards the amount", func(t *testing.T) {
		m.engine.EXPECT().UpdatePaymentStatus(gomock.Any(), "order-1", "provider-1",
			domain.PaymentPartiallyPaid, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ string, _ domain.PaymentStatus, amountPaid *float64) (*domain.Order, error) {
				require.NotNil(t, amountPaid)
				assert.Equal(t, 1000.0, *amountPaid)
				return &domain.Order{ID: "order-1", AmountPaid: 1000, AmountDue: 2000}, nil
			})

		req := httptest.NewRequest(http.MethodPatch, "/api/orders/order-1/payment-status",
			jsonBody(t, map[string]interface{}{"paymentStatus": "partially_paid", "amountPaid": 1000}))
		req = withUser(req, testProvider())
		req = mux.SetURLVars(req, map[string]string{"id": "order-1"})
		rr := httptest.NewRecorder()

		srv.handlePaymentStatus(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("paid without amount sends nil", func(t *testing.T) {
		m.engine.EXPECT().UpdatePaymentStatus(gomock.Any(), "order-1", "provider-1",
			domain.PaymentPaid, gomock.Nil()).
			Return(&domain.Order{ID: "order-1"}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/api/orders/order-1/payment-status",
			jsonBody(t, map[string]interface{}{"paymentStatus": "paid"}))
		req = withUser(req, testProvider())
		req = mux.SetURLVars(req, map[string]string{"id": "order-1"})
		rr := httptest.NewRecorder()

		srv.handlePaymentStatus(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestHandleRequestAbsence(t *testing.T) {
	srv, m := newTestServer(t)

	t.Run("success", func(t *testing.T) {
		m.engine.EXPECT().RequestAbsence(gomock.Any(), "order-1", "customer-1",
			time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), "traveling").
			Return(&domain.AbsenceEntry{ID: "abs-1", Status: domain.AbsencePending}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/orders/order-1/absence",
			jsonBody(t, map[string]string{"date": "2026-09-15", "reason": "traveling"}))
		req = withUser(req, testCustomer())
		req = mux.SetURLVars(req, map[string]string{"id": "order-1"})
		rr := httptest.NewRecorder()

		srv.handleRequestAbsence(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Contains(t, rr.Body.String(), `"status":"pending"`)
	})

	t.Run("missing date", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/orders/order-1/absence",
			jsonBody(t, map[string]string{"reason": "traveling"}))
		req = withUser(req, testCustomer())
		req = mux.SetURLVars(req, map[string]string{"id": "order-1"})
		rr := httptest.NewRecorder()

		srv.handleRequestAbsence(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"message":"Date is required"}`, rr.Body.String())
	})

	t.Run("bad date format", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/orders/order-1/absence",
			jsonBody(t, map[string]string{"date": "15/09/2026"}))
		req = withUser(req, testCustomer())
		req = mux.SetURLVars(req, map[string]string{"id": "order-1"})
		rr := httptest.NewRecorder()

		srv.handleRequestAbsence(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"message":"Invalid date format. Use YYYY-MM-DD"}`, rr.Body.String())
	})
}

func TestHandleResolveAbsence(t *testing.T) {
	srv, m := newTestServer(t)

	m.engine.EXPECT().ResolveAbsence(gomock.Any(), "order-1", "abs-1", "provider-1", domain.AbsenceApproved).
		Return(&domain.AbsenceEntry{ID: "abs-1", Status: domain.AbsenceApproved}, nil)

	req := httptest.NewRequest(http.MethodPatch, "/api/orders/order-1/absence/abs-1",
		jsonBody(t, map[string]string{"status": "approved"}))
	req = withUser(req, testProvider())
	req = mux.SetURLVars(req, map[string]string{"id": "order-1", "absenceId": "abs-1"})
	rr := httptest.NewRecorder()

	srv.handleResolveAbsence(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"status":"approved"`)
}

func TestHandleListMesses(t *testing.T) {
	srv, m := newTestServer(t)

	t.Run("filters parsed from the query string", func(t *testing.T) {
		m.catalog.EXPECT().ListActive(gomock.Any(),
			domain.MessFilter{Query: "tiffin", MinPrice: 50, MaxPrice: 150}).
			Return([]*domain.Mess{{ID: "mess-1"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/messes?q=tiffin&minPrice=50&maxPrice=150", nil)
		rr := httptest.NewRecorder()

		srv.handleListMesses(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("bad price value", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/messes?minPrice=cheap", nil)
		rr := httptest.NewRecorder()

		srv.handleListMesses(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestHandleBroadcast(t *testing.T) {
	srv, m := newTestServer(t)

	t.Run("one notification per recipient", func(t *testing.T) {
		m.notifications.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, batch []*domain.Notification) error {
				require.Len(t, batch, 2)
				assert.Equal(t, "user-1", batch[0].UserID)
				assert.Equal(t, "user-2", batch[1].UserID)
				assert.Equal(t, "Holiday Notice", batch[0].Title)
				return nil
			})

		req := httptest.NewRequest(http.MethodPost, "/api/notifications/broadcast",
			jsonBody(t, map[string]interface{}{
				"title":   "Holiday Notice",
				"message": "Closed on Friday",
				"userIds": []string{"user-1", "user-2"},
			}))
		req = withUser(req, testProvider())
		rr := httptest.NewRecorder()

		srv.handleBroadcast(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.JSONEq(t, `{"count":2}`, rr.Body.String())
	})

	t.Run("no recipients", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/notifications/broadcast",
			jsonBody(t, map[string]interface{}{"title": "X", "message": "Y"}))
		req = withUser(req, testProvider())
		rr := httptest.NewRecorder()

		srv.handleBroadcast(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestHandleMarkRead(t *testing.T) {
	srv, m := newTestServer(t)

	t.Run("success", func(t *testing.T) {
		m.notifications.EXPECT().MarkRead(gomock.Any(), "notif-1", "customer-1").
			Return(&domain.Notification{ID: "notif-1", Read: true}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/notifications/notif-1/read", nil)
		req = withUser(req, testCustomer())
		req = mux.SetURLVars(req, map[string]string{"id": "notif-1"})
		rr := httptest.NewRecorder()

		srv.handleMarkRead(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"read":true`)
	})

	t.Run("someone else's notification", func(t *testing.T) {
		m.notifications.EXPECT().MarkRead(gomock.Any(), "notif-1", "customer-1").
			Return(nil, domain.NotFoundf("notification notif-1"))

		req := httptest.NewRequest(http.MethodPost, "/api/notifications/notif-1/read", nil)
		req = withUser(req, testCustomer())
		req = mux.SetURLVars(req, map[string]string{"id": "notif-1"})
		rr := httptest.NewRecorder()

		srv.handleMarkRead(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestRoutes(t *testing.T) {
	srv, m := newTestServer(t)
	router := srv.setupRoutes()

	t.Run("health", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
	})

	t.Run("protected route without a token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/orders", jsonBody(t, map[string]string{"messId": "mess-1"}))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("end to end through the router", func(t *testing.T) {
		user := testCustomer()
		token, err := m.tokens.Sign(user.ID, user.Role)
		require.NoError(t, err)

		m.users.EXPECT().GetByID(gomock.Any(), user.ID).Return(user, nil)
		m.engine.EXPECT().CustomerOrders(gomock.Any(), user.ID).
			Return([]*domain.Order{{ID: "order-1"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/orders/my", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"order-1"`)
	})
}
