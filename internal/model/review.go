package model

import (
	"time"

	"github.com/google/uuid"
)

// Review is a charity's feedback on a completed donation. One review per
// (donation, reviewer email).
type Review struct {
	ID            uuid.UUID `json:"id"`
	DonationID    uuid.UUID `json:"donation_id"`
	ReviewerName  string    `json:"reviewer_name"`
	ReviewerEmail string    `json:"reviewer_email"`
	Rating        int       `json:"rating"`
	Comment       string    `json:"comment,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// Favorite marks a donation saved by a user. One per (donation, user email).
type Favorite struct {
	ID         uuid.UUID `json:"id"`
	DonationID uuid.UUID `json:"donation_id"`
	UserEmail  string    `json:"user_email"`
	CreatedAt  time.Time `json:"created_at"`
}
