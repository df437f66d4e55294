package server

import (
	"context"
	"net/http"
	"strings"

	"github.com/Vedant222005/Messmate/internal/domain"
)

type contextKey string

const userContextKey contextKey = "user"

// requireAuth verifies the bearer token and resolves the subject into a full
// User so downstream handlers can trust both the id and the role.
func (s *Server) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			respondMessage(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		claims, err := s.tokens.Verify(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			respondMessage(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		user, err := s.users.GetByID(r.Context(), claims.Subject)
		if err != nil {
			respondMessage(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next(w, r.WithContext(ctx))
	}
}

func (s *Server) requireRole(role domain.Role, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := currentUser(r)
		if user == nil {
			respondMessage(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		if user.Role != role {
			respondMessage(w, http.StatusForbidden, "Forbidden")
			return
		}
		next(w, r)
	}
}

func currentUser(r *http.Request) *domain.User {
	user, _ := r.Context().Value(userContextKey).(*domain.User)
	return user
}
