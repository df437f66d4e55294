//go:generate mockgen -source ./service.go -destination=./mocks/service.go -package=mock_catalog
package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Vedant222005/Messmate/internal/cache"
	"github.com/Vedant222005/Messmate/internal/domain"
)

type MessRepository interface {
	Create(ctx context.Context, mess *domain.Mess) error
	GetByID(ctx context.Context, id string) (*domain.Mess, error)
	Update(ctx context.Context, mess *domain.Mess) error
	Delete(ctx context.Context, id, providerID string) error
	ListActive(ctx context.Context, filter domain.MessFilter) ([]*domain.Mess, error)
	ListByProvider(ctx context.Context, providerID string) ([]*domain.Mess, error)
}

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// Service owns the mess catalog: provider CRUD, menu and plan management,
// and the public listing served from the in-memory cache when unfiltered.
type Service struct {
	messes MessRepository
	users  UserRepository
	cache  *cache.MessCache
	logger *zap.Logger
}

func New(messes MessRepository, users UserRepository, messCache *cache.MessCache, logger *zap.Logger) *Service {
	return &Service{
		messes: messes,
		users:  users,
		cache:  messCache,
		logger: logger,
	}
}

type MessInput struct {
	Name         string
	Description  string
	Address      string
	CuisineTypes []string
	PricePerMeal float64
	ImageURL     string
}

func (s *Service) CreateMess(ctx context.Context, providerID string, in MessInput) (*domain.Mess, error) {
	if in.Name == "" {
		return nil, domain.Validationf("name is required")
	}
	if in.PricePerMeal <= 0 {
		return nil, domain.Validationf("pricePerMeal must be positive")
	}

	provider, err := s.users.GetByID(ctx, providerID)
	if err != nil {
		return nil, err
	}
	if provider.Role != domain.RoleProvider {
		return nil, domain.Forbiddenf("user %s is not a provider", providerID)
	}

	now := time.Now().UTC()
	mess := &domain.Mess{
		ID:           uuid.New().String(),
		ProviderID:   providerID,
		Name:         in.Name,
		Description:  in.Description,
		Address:      in.Address,
		CuisineTypes: in.CuisineTypes,
		PricePerMeal: in.PricePerMeal,
		ImageURL:     in.ImageURL,
		IsActive:     true,
		Menu:         []domain.MenuItem{},
		Plans:        []domain.SubscriptionPlan{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if mess.CuisineTypes == nil {
		mess.CuisineTypes = []string{}
	}

	if err := s.messes.Create(ctx, mess); err != nil {
		return nil, err
	}
	s.cache.Set(mess)
	return mess, nil
}

func (s *Service) GetMess(ctx context.Context, id string) (*domain.Mess, error) {
	if mess, ok := s.cache.Get(id); ok {
		return mess, nil
	}
	return s.messes.GetByID(ctx, id)
}

// MessDetails returns the mess together with its provider's contact fields.
func (s *Service) MessDetails(ctx context.Context, id string) (*domain.Mess, *domain.User, error) {
	mess, err := s.GetMess(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	provider, err := s.users.GetByID(ctx, mess.ProviderID)
	if err != nil {
		return nil, nil, err
	}
	return mess, provider, nil
}

func (s *Service) ListActive(ctx context.Context, filter domain.MessFilter) ([]*domain.Mess, error) {
	if filter.Empty() {
		return s.cache.All(), nil
	}
	return s.messes.ListActive(ctx, filter)
}

func (s *Service) ListMine(ctx context.Context, providerID string) ([]*domain.Mess, error) {
	return s.messes.ListByProvider(ctx, providerID)
}

type MessUpdate struct {
	Name         *string
	Description  *string
	Address      *string
	CuisineTypes []string
	PricePerMeal *float64
	ImageURL     *string
	IsActive     *bool
}

func (s *Service) UpdateMess(ctx context.Context, providerID, id string, in MessUpdate) (*domain.Mess, error) {
	mess, err := s.ownedMess(ctx, providerID, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		mess.Name = *in.Name
	}
	if in.Description != nil {
		mess.Description = *in.Description
	}
	if in.Address != nil {
		mess.Address = *in.Address
	}
	if in.CuisineTypes != nil {
		mess.CuisineTypes = in.CuisineTypes
	}
	if in.PricePerMeal != nil {
		if *in.PricePerMeal <= 0 {
			return nil, domain.Validationf("pricePerMeal must be positive")
		}
		mess.PricePerMeal = *in.PricePerMeal
	}
	if in.ImageURL != nil {
		mess.ImageURL = *in.ImageURL
	}
	if in.IsActive != nil {
		mess.IsActive = *in.IsActive
	}

	if err := s.saveOwned(ctx, mess); err != nil {
		return nil, err
	}
	return mess, nil
}

func (s *Service) DeleteMess(ctx context.Context, providerID, id string) error {
	if err := s.messes.Delete(ctx, id, providerID); err != nil {
		return err
	}
	s.cache.Delete(id)
	return nil
}

type MenuItemInput struct {
	Name         string
	Description  string
	Type         string
	DayOfWeek    string
	IsVegetarian bool
	ImageURL     string
}

var mealTypes = map[string]bool{"breakfast": true, "lunch": true, "dinner": true, "snack": true}

var daysOfWeek = map[string]bool{
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true,
}

func (s *Service) AddMenuItem(ctx context.Context, providerID, messID string, in MenuItemInput) (*domain.MenuItem, error) {
	if in.Name == "" {
		return nil, domain.Validationf("name is required")
	}
	if !mealTypes[in.Type] {
		return nil, domain.Validationf("invalid meal type %q", in.Type)
	}
	if !daysOfWeek[in.DayOfWeek] {
		return nil, domain.Validationf("invalid dayOfWeek %q", in.DayOfWeek)
	}

	mess, err := s.ownedMess(ctx, providerID, messID)
	if err != nil {
		return nil, err
	}

	item := domain.MenuItem{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Description:  in.Description,
		Type:         in.Type,
		DayOfWeek:    in.DayOfWeek,
		IsVegetarian: in.IsVegetarian,
		ImageURL:     in.ImageURL,
	}
	mess.Menu = append(mess.Menu, item)

	if err := s.saveOwned(ctx, mess); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Service) UpdateMenuItem(ctx context.Context, providerID, messID, itemID string, in MenuItemInput) (*domain.MenuItem, error) {
	mess, err := s.ownedMess(ctx, providerID, messID)
	if err != nil {
		return nil, err
	}

	var item *domain.MenuItem
	for i := range mess.Menu {
		if mess.Menu[i].ID == itemID {
			item = &mess.Menu[i]
			break
		}
	}
	if item == nil {
		return nil, domain.NotFoundf("menu item %s", itemID)
	}

	if in.Name != "" {
		item.Name = in.Name
	}
	if in.Description != "" {
		item.Description = in.Description
	}
	if in.Type != "" {
		if !mealTypes[in.Type] {
			return nil, domain.Validationf("invalid meal type %q", in.Type)
		}
		item.Type = in.Type
	}
	if in.DayOfWeek != "" {
		if !daysOfWeek[in.DayOfWeek] {
			return nil, domain.Validationf("invalid dayOfWeek %q", in.DayOfWeek)
		}
		item.DayOfWeek = in.DayOfWeek
	}
	item.IsVegetarian = in.IsVegetarian
	if in.ImageURL != "" {
		item.ImageURL = in.ImageURL
	}

	if err := s.saveOwned(ctx, mess); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Service) DeleteMenuItem(ctx context.Context, providerID, messID, itemID string) error {
	mess, err := s.ownedMess(ctx, providerID, messID)
	if err != nil {
		return err
	}

	index := -1
	for i := range mess.Menu {
		if mess.Menu[i].ID == itemID {
			index = i
			break
		}
	}
	if index == -1 {
		return domain.NotFoundf("menu item %s", itemID)
	}
	mess.Menu = append(mess.Menu[:index], mess.Menu[index+1:]...)

	return s.saveOwned(ctx, mess)
}

type PlanInput struct {
	Name         string
	DurationDays int
	Price        float64
	Description  string
}

func (s *Service) AddPlan(ctx context.Context, providerID, messID string, in PlanInput) (*domain.SubscriptionPlan, error) {
	if in.Name == "" {
		return nil, domain.Validationf("name is required")
	}
	if in.DurationDays <= 0 {
		return nil, domain.Validationf("durationDays must be positive")
	}
	if in.Price <= 0 {
		return nil, domain.Validationf("price must be positive")
	}

	mess, err := s.ownedMess(ctx, providerID, messID)
	if err != nil {
		return nil, err
	}

	plan := domain.SubscriptionPlan{
		ID:           uuid.New().String(),
		Name:         in.Name,
		DurationDays: in.DurationDays,
		Price:        in.Price,
		Description:  in.Description,
	}
	mess.Plans = append(mess.Plans, plan)

	if err := s.saveOwned(ctx, mess); err != nil {
		return nil, err
	}
	return &plan, nil
}

func (s *Service) ownedMess(ctx context.Context, providerID, messID string) (*domain.Mess, error) {
	mess, err := s.messes.GetByID(ctx, messID)
	if err != nil {
		return nil, err
	}
	if mess.ProviderID != providerID {
		return nil, domain.NotFoundf("mess %s", messID)
	}
	return mess, nil
}

func (s *Service) saveOwned(ctx context.Context, mess *domain.Mess) error {
	mess.UpdatedAt = time.Now().UTC()
	if err := s.messes.Update(ctx, mess); err != nil {
		return err
	}
	s.cache.Set(mess)
	return nil
}
