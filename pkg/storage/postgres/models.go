package postgres

import (
	"database/sql"
	"signup/pkg/domain"
	"time"

	"github.com/google/uuid"
)

// PgAccount is the row layout of the accounts table.
type PgAccount struct {
	ID uuid.UUID `db:"id" goqu:"skipinsert"`

	Username string `db:"username"`
	Email    string `db:"email"`
	Password string `db:"password"`

	CreatedAt  time.Time    `db:"created_at"  goqu:"skipinsert"`
	WelcomedAt sql.NullTime `db:"welcomed_at" goqu:"skipinsert"`
}

func (p *PgAccount) ToDomain() *domain.Account {
	return &domain.Account{
		ID:         domain.AccountID(p.ID),
		Username:   p.Username,
		Email:      p.Email,
		Password:   p.Password,
		CreatedAt:  p.CreatedAt,
		WelcomedAt: p.WelcomedAt.Time,
	}
}

func (p *PgAccount) FromDomain(account domain.Account) {
	*p = PgAccount{
		ID:        uuid.UUID(account.ID),
		Username:  account.Username,
		Email:     account.Email,
		Password:  account.Password,
		CreatedAt: account.CreatedAt,
		WelcomedAt: sql.NullTime{
			Time:  account.WelcomedAt,
			Valid: !account.WelcomedAt.IsZero(),
		},
	}
}
