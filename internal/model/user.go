package model

import "time"

// User roles.
const (
	RoleUser    = "user"
	RoleCharity = "charity"
	RoleAdmin   = "admin"
)

// User is the locally stored profile of an externally authenticated
// principal, upserted on login.
type User struct {
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	PhotoURL    string    `json:"photo_url,omitempty"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
	LastLoginAt time.Time `json:"last_login_at"`
}
