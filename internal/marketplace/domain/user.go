package domain

import "time"

type UserRole string

const (
	RoleUser   UserRole = "user"
	RoleSeller UserRole = "seller"
	RoleAdmin  UserRole = "admin"
)

type User struct {
	ID        string
	Username  string
	Email     string
	Password  string // bcrypt hash
	Role      UserRole
	City      string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Favorite struct {
	ID        string
	UserID    string
	ListingID string
	CreatedAt time.Time
}

type SellerRequestStatus string

const (
	SellerRequestPending  SellerRequestStatus = "pending"
	SellerRequestApproved SellerRequestStatus = "approved"
	SellerRequestRejected SellerRequestStatus = "rejected"
)

// SellerRequest is a user's application to be promoted to the seller role.
// At most one pending request per user.
type SellerRequest struct {
	ID         string              `json:"id"`
	UserID     string              `json:"user_id"`
	Message    string              `json:"message"`
	Status     SellerRequestStatus `json:"status"`
	ReviewedBy string              `json:"reviewed_by,omitempty"`
	ReviewedAt *time.Time          `json:"reviewed_at,omitempty"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
}
