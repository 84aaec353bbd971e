package signup

import (
	"context"
	"signup/pkg/domain"
)

//go:generate mockgen -package mocksignup -source=protocols.go -destination=mock/mocksignup.go *

// EmailValidator decides whether an email address is well formed. An error
// means the check itself could not be performed.
type EmailValidator interface {
	IsValid(email string) (bool, error)
}

// AddAccount creates an account from validated signup data.
type AddAccount interface {
	Add(ctx context.Context, input domain.AddAccountInput) (*domain.Account, error)
}
