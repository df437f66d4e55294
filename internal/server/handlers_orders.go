package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/Vedant222005/Messmate/internal/domain"
	"github.com/Vedant222005/Messmate/internal/subscription"
)

func (s *Server) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		MessID             string `json:"messId"`
		Quantity           int    `json:"quantity"`
		SubscriptionPlanID string `json:"subscriptionPlanId"`
		Notes              string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := s.engine.CreateOrder(r.Context(), currentUser(r).ID, subscription.CreateOrderInput{
		MessID:             req.MessID,
		Quantity:           req.Quantity,
		SubscriptionPlanID: req.SubscriptionPlanID,
		Notes:              req.Notes,
	})
	if err != nil {
		s.respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, order)
}

func (s *Server) handleMyOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := s.engine.CustomerOrders(r.Context(), currentUser(r).ID)
	if err != nil {
		s.respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, orders)
}

func (s *Server) handleProviderOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := s.engine.ProviderOrders(r.Context(), currentUser(r).ID)
	if err != nil {
		s.respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, orders)
}

func (s *Server) handlePendingOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := s.engine.PendingOrders(r.Context(), currentUser(r).ID)
	if err != nil {
		s.respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, orders)
}

func (s *Server) handleOrderApproval(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Decision string `json:"decision"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := s.engine.ApproveOrReject(r.Context(), mux.Vars(r)["id"], currentUser(r).ID, subscription.Decision(req.Decision))
	if err != nil {
		s.respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, order)
}

func (s *Server) handleOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := s.engine.UpdateStatus(r.Context(), mux.Vars(r)["id"], currentUser(r).ID, domain.OrderStatus(req.Status))
	if err != nil {
		s.respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, order)
}

func (s *Server) handlePaymentStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PaymentStatus string   `json:"paymentStatus"`
		AmountPaid    *float64 `json:"amountPaid"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := s.engine.UpdatePaymentStatus(r.Context(), mux.Vars(r)["id"], currentUser(r).ID,
		domain.PaymentStatus(req.PaymentStatus), req.AmountPaid)
	if err != nil {
		s.respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, order)
}

func (s *Server) handleRequestAbsence(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Date   string `json:"date"`
		Reason string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Date == "" {
		respondMessage(w, http.StatusBadRequest, "Date is required")
		return
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD")
		return
	}

	entry, err := s.engine.RequestAbsence(r.Context(), mux.Vars(r)["id"], currentUser(r).ID, date, req.Reason)
	if err != nil {
		s.respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, entry)
}

func (s *Server) handleResolveAbsence(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	vars := mux.Vars(r)
	entry, err := s.engine.ResolveAbsence(r.Context(), vars["id"], vars["absenceId"], currentUser(r).ID,
		domain.AbsenceStatus(req.Status))
	if err != nil {
		s.respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, entry)
}

func (s *Server) handleProviderAbsences(w http.ResponseWriter, r *http.Request) {
	absences, err := s.engine.ProviderAbsences(r.Context(), currentUser(r).ID)
	if err != nil {
		s.respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, absences)
}
