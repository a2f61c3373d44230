package model

import (
	"time"

	"github.com/google/uuid"
)

// RequestStatus is the state of a claim request.
//
//	pending --accept--> accepted --confirm-pickup--> picked_up
//	pending --reject--> rejected
//	pending --cancel--> (deleted)
//	accepted --sibling accepted--> rejected (superseded)
//
// rejected and picked_up are terminal; a decision is one-shot per request.
type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestAccepted RequestStatus = "accepted"
	RequestRejected RequestStatus = "rejected"
	RequestPickedUp RequestStatus = "picked_up"
)

// DonationRequest is a charity's claim on a donation. At most one request
// per (donation, charity email) may exist, and at most one request per
// donation may ever hold accepted or picked_up.
type DonationRequest struct {
	ID            uuid.UUID     `json:"id"`
	DonationID    uuid.UUID     `json:"donation_id"`
	DonationTitle string        `json:"donation_title,omitempty"`
	DonorEmail    string        `json:"donor_email,omitempty"`
	CharityName   string        `json:"charity_name"`
	CharityEmail  string        `json:"charity_email"`
	PickupTime    string        `json:"pickup_time"`
	Description   string        `json:"description,omitempty"`
	Status        RequestStatus `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
}
