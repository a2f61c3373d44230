package favorite

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"

	"github.com/niloyahmadramjan/surplusshare-server/internal/model"
)

var (
	ErrFavoriteNotFound = errors.New("favorite not found")
	ErrNoFavoritesFound = errors.New("no favorites found")
	ErrAlreadyFavorite  = errors.New("donation already in favorites")
)

const uniqueViolation = "23505"

// Repository provides methods to interact with the favorites table.
type Repository struct {
	db *dbpg.DB
}

func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// AddFavorite saves a donation to the user's favorites.
func (r *Repository) AddFavorite(ctx context.Context, f model.Favorite) (uuid.UUID, error) {
	query := `
		INSERT INTO favorites (donation_id, user_email)
		VALUES ($1, $2)
		RETURNING id;
    `

	err := r.db.QueryRowContext(ctx, query, f.DonationID, f.UserEmail).Scan(&f.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return uuid.Nil, ErrAlreadyFavorite
		}

		return uuid.Nil, fmt.Errorf("failed to add favorite: %w", err)
	}

	return f.ID, nil
}

// GetFavoritesByUser retrieves a user's favorites, newest first.
func (r *Repository) GetFavoritesByUser(ctx context.Context, userEmail string) ([]model.Favorite, error) {
	query := `
		SELECT id, donation_id, user_email, created_at
		FROM favorites
		WHERE user_email = $1
		ORDER BY created_at DESC;
    `

	rows, err := r.db.QueryContext(ctx, query, userEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to get favorites: %w", err)
	}
	defer rows.Close()

	var favorites []model.Favorite
	for rows.Next() {
		var f model.Favorite
		if err := rows.Scan(&f.ID, &f.DonationID, &f.UserEmail, &f.CreatedAt); err != nil {
			return nil, err
		}

		favorites = append(favorites, f)
	}

	if len(favorites) == 0 {
		return nil, ErrNoFavoritesFound
	}

	return favorites, nil
}

// RemoveFavorite deletes a favorite owned by userEmail.
func (r *Repository) RemoveFavorite(ctx context.Context, id uuid.UUID, userEmail string) error {
	query := `
		DELETE FROM favorites
		WHERE id = $1 AND user_email = $2;
    `

	res, err := r.db.ExecContext(ctx, query, id, userEmail)
	if err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrFavoriteNotFound
	}

	return nil
}
