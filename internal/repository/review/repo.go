package review

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
	ErrReviewNotFound  = errors.New("review not found")
	ErrNoReviewsFound  = errors.New("no reviews found")
	ErrDuplicateReview = errors.New("user already reviewed this donation")
)

const uniqueViolation = "23505"

// Repository provides methods to interact with the reviews table.
type Repository struct {
	db *dbpg.DB
}

func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// CreateReview inserts a review. One review per (donation, reviewer email).
func (r *Repository) CreateReview(ctx context.Context, rev model.Review) (uuid.UUID, error) {
	query := `
		INSERT INTO reviews (
		    donation_id, reviewer_name, reviewer_email, rating, comment
		) VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
    `

	err := r.db.QueryRowContext(
		ctx, query, rev.DonationID, rev.ReviewerName, rev.ReviewerEmail, rev.Rating, rev.Comment,
	).Scan(&rev.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return uuid.Nil, ErrDuplicateReview
		}

		return uuid.Nil, fmt.Errorf("failed to create review: %w", err)
	}

	return rev.ID, nil
}

// GetReviewsByDonation retrieves all reviews for a donation, newest first.
func (r *Repository) GetReviewsByDonation(ctx context.Context, donationID uuid.UUID) ([]model.Review, error) {
	query := `
		SELECT id, donation_id, reviewer_name, reviewer_email, rating, comment, created_at
		FROM reviews
		WHERE donation_id = $1
		ORDER BY created_at DESC;
    `

	rows, err := r.db.QueryContext(ctx, query, donationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get reviews: %w", err)
	}
	defer rows.Close()

	var reviews []model.Review
	for rows.Next() {
		var rev model.Review
		if err := rows.Scan(
			&rev.ID, &rev.DonationID, &rev.ReviewerName, &rev.ReviewerEmail,
			&rev.Rating, &rev.Comment, &rev.CreatedAt,
		); err != nil {
			return nil, err
		}

		reviews = append(reviews, rev)
	}

	if len(reviews) == 0 {
		return nil, ErrNoReviewsFound
	}

	return reviews, nil
}

// DeleteReview removes a review owned by reviewerEmail.
func (r *Repository) DeleteReview(ctx context.Context, id uuid.UUID, reviewerEmail string) error {
	query := `
		DELETE FROM reviews
		WHERE id = $1 AND reviewer_email = $2;
    `

	res, err := r.db.ExecContext(ctx, query, id, reviewerEmail)
	if err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrReviewNotFound
	}

	return nil
}
