package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/wb-go/wbf/dbpg"

	"github.com/niloyahmadramjan/surplusshare-server/internal/model"
)

var ErrUserNotFound = errors.New("user not found")

// Repository provides methods to interact with the users table.
type Repository struct {
	db *dbpg.DB
}

func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// UpsertUser inserts the profile of an authenticated principal or, if the
// email is already known, refreshes name, photo and last login. The role is
// never downgraded by a login.
func (r *Repository) UpsertUser(ctx context.Context, u model.User) error {
	query := `
		INSERT INTO users (email, name, photo_url, role, last_login_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (email) DO UPDATE
		SET name = EXCLUDED.name,
		    photo_url = EXCLUDED.photo_url,
		    last_login_at = NOW();
    `

	_, err := r.db.ExecContext(ctx, query, u.Email, u.Name, u.PhotoURL, u.Role)
	if err != nil {
		return fmt.Errorf("failed to upsert user: %w", err)
	}

	return nil
}

// GetUserByEmail retrieves a user profile.
func (r *Repository) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	query := `
		SELECT email, name, COALESCE(photo_url, ''), role, created_at, last_login_at
		FROM users
		WHERE email = $1;
    `

	var u model.User
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&u.Email, &u.Name, &u.PhotoURL, &u.Role, &u.CreatedAt, &u.LastLoginAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, ErrUserNotFound
		}

		return model.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	return u, nil
}

// UpdateRole sets a user's role. Used by the admin service and by charity
// role request approval.
func (r *Repository) UpdateRole(ctx context.Context, email, role string) error {
	query := `
		UPDATE users
		SET role = $1
		WHERE email = $2;
    `

	res, err := r.db.ExecContext(ctx, query, role, email)
	if err != nil {
		return fmt.Errorf("failed to update user role: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrUserNotFound
	}

	return nil
}
