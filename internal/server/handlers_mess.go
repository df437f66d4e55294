package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Vedant222005/Messmate/internal/catalog"
	"github.com/Vedant222005/Messmate/internal/domain"
)

func (s *Server) handleListMesses(w http.ResponseWriter, r *http.Request) {
	filter := domain.MessFilter{Query: r.URL.Query().Get("q")}

	if raw := r.URL.Query().Get("minPrice"); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil || value < 0 {
			respondMessage(w, http.StatusBadRequest, "Invalid value for 'minPrice' parameter")
			return
		}
		filter.MinPrice = value
	}
	if raw := r.URL.Query().Get("maxPrice"); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil || value < 0 {
			respondMessage(w, http.StatusBadRequest, "Invalid value for 'maxPrice' parameter")
			return
		}
		filter.MaxPrice = value
	}

	messes, err := s.catalog.ListActive(r.Context(), filter)
	if err != nil {
		s.respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, messes)
}

func (s *Server) handleGetMess(w http.ResponseWriter, r *http.Request) {
	mess, err := s.catalog.GetMess(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, mess)
}

func (s *Server) handleMessDetails(w http.ResponseWriter, r *http.Request) {
	mess, provider, err := s.catalog.MessDetails(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"mess":     mess,
		"provider": provider,
	})
}

func (s *Server) handleCreateMess(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name         string   `json:"name"`
		Description  string   `json:"description"`
		Address      string   `json:"address"`
		CuisineTypes []string `json:"cuisineTypes"`
		PricePerMeal float64  `json:"pricePerMeal"`
		ImageURL     string   `json:"imageUrl"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	mess, err := s.catalog.CreateMess(r.Context(), currentUser(r).ID, catalog.MessInput{
		Name:         req.Name,
		Description:  req.Description,
		Address:      req.Address,
		CuisineTypes: req.CuisineTypes,
		PricePerMeal: req.PricePerMeal,
		ImageURL:     req.ImageURL,
	})
	if err != nil {
		s.respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, mess)
}

func (s *Server) handleListMyMesses(w http.ResponseWriter, r *http.Request) {
	messes, err := s.catalog.ListMine(r.Context(), currentUser(r).ID)
	if err != nil {
		s.respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, messes)
}

func (s *Server) handleUpdateMess(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name         *string  `json:"name"`
		Description  *string  `json:"description"`
		Address      *string  `json:"address"`
		CuisineTypes []string `json:"cuisineTypes"`
		PricePerMeal *float64 `json:"pricePerMeal"`
		ImageURL     *string  `json:"imageUrl"`
		IsActive     *bool    `json:"isActive"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	mess, err := s.catalog.UpdateMess(r.Context(), currentUser(r).ID, mux.Vars(r)["id"], catalog.MessUpdate{
		Name:         req.Name,
		Description:  req.Description,
		Address:      req.Address,
		CuisineTypes: req.CuisineTypes,
		PricePerMeal: req.PricePerMeal,
		ImageURL:     req.ImageURL,
		IsActive:     req.IsActive,
	})
	if err != nil {
		s.respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, mess)
}

func (s *Server) handleDeleteMess(w http.ResponseWriter, r *http.Request) {
	if err := s.catalog.DeleteMess(r.Context(), currentUser(r).ID, mux.Vars(r)["id"]); err != nil {
		s.respondDomainError(w, err)
		return
	}
	respondMessage(w, http.StatusOK, "Deleted")
}

func (s *Server) handleGetMenu(w http.ResponseWriter, r *http.Request) {
	mess, err := s.catalog.GetMess(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, mess.Menu)
}

type menuItemRequest struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Type         string `json:"type"`
	DayOfWeek    string `json:"dayOfWeek"`
	IsVegetarian bool   `json:"isVegetarian"`
	ImageURL     string `json:"imageUrl"`
}

func (r menuItemRequest) toInput() catalog.MenuItemInput {
	return catalog.MenuItemInput{
		Name:         r.Name,
		Description:  r.Description,
		Type:         r.Type,
		DayOfWeek:    r.DayOfWeek,
		IsVegetarian: r.IsVegetarian,
		ImageURL:     r.ImageURL,
	}
}

func (s *Server) handleAddMenuItem(w http.ResponseWriter, r *http.Request) {
	var req menuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := s.catalog.AddMenuItem(r.Context(), currentUser(r).ID, mux.Vars(r)["id"], req.toInput())
	if err != nil {
		s.respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, item)
}

func (s *Server) handleUpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	var req menuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	vars := mux.Vars(r)
	item, err := s.catalog.UpdateMenuItem(r.Context(), currentUser(r).ID, vars["id"], vars["itemId"], req.toInput())
	if err != nil {
		s.respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, item)
}

func (s *Server) handleDeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := s.catalog.DeleteMenuItem(r.Context(), currentUser(r).ID, vars["id"], vars["itemId"]); err != nil {
		s.respondDomainError(w, err)
		return
	}
	respondMessage(w, http.StatusOK, "Menu item deleted")
}

func (s *Server) handleAddPlan(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name         string  `json:"name"`
		DurationDays int     `json:"durationDays"`
		Price        float64 `json:"price"`
		Description  string  `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	plan, err := s.catalog.AddPlan(r.Context(), currentUser(r).ID, mux.Vars(r)["id"], catalog.PlanInput{
		Name:         req.Name,
		DurationDays: req.DurationDays,
		Price:        req.Price,
		Description:  req.Description,
	})
	if err != nil {
		s.respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, plan)
}
