package model

import (
	"time"

	"github.com/google/uuid"
)

// Transaction records a payment confirmed by the external gateway. The
// server never creates payment intents; it only stores the confirmation
// reference the client reports after checkout.
type Transaction struct {
	ID         uuid.UUID `json:"id"`
	GatewayRef string    `json:"gateway_ref"` // payment id assigned by the gateway
	UserEmail  string    `json:"user_email"`
	Amount     int       `json:"amount"` // smallest currency unit
	Currency   string    `json:"currency"`
	Purpose    string    `json:"purpose"` // e.g. "charity_role"
	CreatedAt  time.Time `json:"created_at"`
}
