package domain

import (
	"time"

	"github.com/google/uuid"
)

// AccountID uniquely identifies an account.
type AccountID uuid.UUID

func (id AccountID) String() string { return uuid.UUID(id).String() }

// AddAccountInput is what the signup flow hands to account creation. The
// password is still in plain text at this point.
type AddAccountInput struct {
	Username string
	Email    string
	Password string
}

// Account is a registered user account.
type Account struct {
	ID       AccountID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	// Password holds the password hash, never the plain text.
	Password string `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	// WelcomedAt is set once the post-signup job processed the account.
	WelcomedAt time.Time `json:"welcomedAt,omitempty"`
}
