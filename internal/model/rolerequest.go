package model

import (
	"time"

	"github.com/google/uuid"
)

// RoleRequestStatus is the state of a charity role upgrade request.
type RoleRequestStatus string

const (
	RoleRequestPending  RoleRequestStatus = "pending"
	RoleRequestApproved RoleRequestStatus = "approved"
	RoleRequestRejected RoleRequestStatus = "rejected"
)

// CharityRoleRequest is a user's application to act as a charity. Approval
// is what entitles the email to submit claim requests. One live request
// per email.
type CharityRoleRequest struct {
	ID           uuid.UUID         `json:"id"`
	UserName     string            `json:"user_name"`
	UserEmail    string            `json:"user_email"`
	Organization string            `json:"organization"`
	Mission      string            `json:"mission"`
	Status       RoleRequestStatus `json:"status"`
	CreatedAt    time.Time         `json:"created_at"`
}
