package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"

	"github.com/Vedant222005/Messmate/internal/db"
	"github.com/Vedant222005/Messmate/internal/domain"
)

type MessRepo struct {
	db db.DB
}

func NewMessRepo(db db.DB) *MessRepo {
	return &MessRepo{db: db}
}

func (r *MessRepo) Create(ctx context.Context, mess *domain.Mess) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO messes (
            id, provider_id, name, description, address, cuisine_types,
            price_per_meal, image_url, rating_average, is_active, menu, plans,
            created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
    `, mess.ID, mess.ProviderID, mess.Name, mess.Description, mess.Address, mess.CuisineTypes,
		mess.PricePerMeal, mess.ImageURL, mess.RatingAverage, mess.IsActive, mess.Menu, mess.Plans,
		mess.CreatedAt, mess.UpdatedAt)
	return err
}

func (r *MessRepo) GetByID(ctx context.Context, id string) (*domain.Mess, error) {
	var mess domain.Mess
	err := r.db.Get(ctx, &mess, "SELECT * FROM messes WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFoundf("mess %s", id)
		}
		return nil, err
	}
	return &mess, nil
}

// Update writes the full row, filtered by owner so a provider can only touch
// their own mess in a single round trip.
func (r *MessRepo) Update(ctx context.Context, mess *domain.Mess) error {
	tag, err := r.db.Exec(ctx, `
        UPDATE messes
        SET
            name = $1,
            description = $2,
            address = $3,
            cuisine_types = $4,
            price_per_meal = $5,
            image_url = $6,
            rating_average = $7,
            is_active = $8,
            menu = $9,
            plans = $10,
            updated_at = $11
        WHERE id = $12 AND provider_id = $13
    `, mess.Name, mess.Description, mess.Address, mess.CuisineTypes, mess.PricePerMeal,
		mess.ImageURL, mess.RatingAverage, mess.IsActive, mess.Menu, mess.Plans,
		mess.UpdatedAt, mess.ID, mess.ProviderID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFoundf("mess %s", mess.ID)
	}
	return nil
}

func (r *MessRepo) Delete(ctx context.Context, id, providerID string) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM messes WHERE id = $1 AND provider_id = $2", id, providerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFoundf("mess %s", id)
	}
	return nil
}

func (r *MessRepo) ListActive(ctx context.Context, filter domain.MessFilter) ([]*domain.Mess, error) {
	query := "SELECT * FROM messes WHERE is_active = TRUE"
	args := []interface{}{}

	if filter.Query != "" {
		args = append(args, "%"+filter.Query+"%")
		query += " AND (name ILIKE $1 OR description ILIKE $1)"
	}
	if filter.MinPrice > 0 {
		args = append(args, filter.MinPrice)
		query += fmt.Sprintf(" AND price_per_meal >= $%d", len(args))
	}
	if filter.MaxPrice > 0 {
		args = append(args, filter.MaxPrice)
		query += fmt.Sprintf(" AND price_per_meal <= $%d", len(args))
	}
	query += " ORDER BY created_at DESC"

	var messes []*domain.Mess
	err := r.db.Select(ctx, &messes, query, args...)
	return messes, err
}

// ListAllActive feeds the catalog cache at startup.
func (r *MessRepo) ListAllActive(ctx context.Context) ([]*domain.Mess, error) {
	return r.ListActive(ctx, domain.MessFilter{})
}

func (r *MessRepo) ListByProvider(ctx context.Context, providerID string) ([]*domain.Mess, error) {
	var messes []*domain.Mess
	err := r.db.Select(ctx, &messes,
		"SELECT * FROM messes WHERE provider_id = $1 ORDER BY created_at DESC", providerID)
	return messes, err
}
