package account

import (
	"context"
	"signup/pkg/domain"
)

//go:generate mockgen -package mockaccount -source=interface.go -destination=mock/mockaccount.go *
type Accounts interface {
	Add(ctx context.Context, input domain.AddAccountInput) (*domain.Account, error)
	MarkWelcomed(ctx context.Context, ID domain.AccountID) (*domain.Account, error)
}
