package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/Vedant222005/Messmate/internal/domain"
)

func (s *Server) handleListNotifications(w http.ResponseWriter, r *http.Request) {
	notifications, err := s.notifications.ListByUser(r.Context(), currentUser(r).ID)
	if err != nil {
		s.respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, notifications)
}

func (s *Server) handleMarkRead(w http.ResponseWriter, r *http.Request) {
	notification, err := s.notifications.MarkRead(r.Context(), mux.Vars(r)["id"], currentUser(r).ID)
	if err != nil {
		s.respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, notification)
}

// handleBroadcast lets a provider send one notification to a list of users,
// typically the customers subscribed to their messes.
func (s *Server) handleBroadcast(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title   string   `json:"title"`
		Message string   `json:"message"`
		UserIDs []string `json:"userIds"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Title == "" || req.Message == "" {
		respondMessage(w, http.StatusBadRequest, "title and message are required")
		return
	}
	if len(req.UserIDs) == 0 {
		respondMessage(w, http.StatusBadRequest, "userIds are required")
		return
	}

	now := time.Now().UTC()
	batch := make([]*domain.Notification, 0, len(req.UserIDs))
	for _, userID := range req.UserIDs {
		batch = append(batch, &domain.Notification{
			ID:        uuid.New().String(),
			UserID:    userID,
			Title:     req.Title,
			Message:   req.Message,
			Metadata:  map[string]interface{}{"type": "broadcast", "from": currentUser(r).ID},
			CreatedAt: now,
		})
	}
	if err := s.notifications.CreateBatch(r.Context(), batch); err != nil {
		s.respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]int{"count": len(batch)})
}

func (s *Server) handleReminder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID  string `json:"userId"`
		Title   string `json:"title"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.UserID == "" || req.Message == "" {
		respondMessage(w, http.StatusBadRequest, "userId and message are required")
		return
	}
	if req.Title == "" {
		req.Title = "Reminder"
	}

	notification := &domain.Notification{
		ID:        uuid.New().String(),
		UserID:    req.UserID,
		Title:     req.Title,
		Message:   req.Message,
		Metadata:  map[string]interface{}{"type": "reminder", "from": currentUser(r).ID},
		CreatedAt: time.Now().UTC(),
	}
	if err := s.notifications.Create(r.Context(), notification); err != nil {
		s.respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, notification)
}
