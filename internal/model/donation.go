package model

import (
	"time"

	"github.com/google/uuid"
)

// DonationStatus is the claim-lifecycle axis of a donation. It is mutated
// only by the arbitration engine.
type DonationStatus string

const (
	DonationAvailable DonationStatus = "available"
	DonationRequested DonationStatus = "requested"
	DonationPickedUp  DonationStatus = "picked_up"
)

// Verification is the admin-controlled axis, independent of the claim
// lifecycle. Only verified donations are listed publicly.
type Verification string

const (
	VerificationPending  Verification = "pending"
	VerificationVerified Verification = "verified"
	VerificationRejected Verification = "rejected"
)

// Donation represents a surplus-food offer listed by a restaurant.
type Donation struct {
	ID           uuid.UUID      `json:"id"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	ImageURL     string         `json:"image_url,omitempty"`
	DonorName    string         `json:"donor_name"`
	DonorEmail   string         `json:"donor_email"`
	Location     string         `json:"location"`
	Quantity     string         `json:"quantity"`
	FoodType     string         `json:"food_type"`
	PickupWindow string         `json:"pickup_window"`
	Status       DonationStatus `json:"status"`
	Verification Verification   `json:"verification"`
	ClaimedBy    string         `json:"claimed_by,omitempty"` // charity name, set while claimed
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// DonationFilter narrows public donation listings.
type DonationFilter struct {
	FoodType string
	Location string
}
