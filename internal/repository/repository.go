package repository

import (
	"casino_sim/internal/model"
	"context"

	"github.com/shopspring/decimal"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByLogin(ctx context.Context, login string) (*model.User, error)

	GetBalance(ctx context.Context, login string) (decimal.Decimal, error)
	UpdateBalance(ctx context.Context, login string, balance decimal.Decimal) error
}

type SessionRepository interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, sessionID string) (*model.Session, error)
	GetSessionByLogin(ctx context.Context, login string) (*model.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error

	SetActiveGame(ctx context.Context, login string, variant model.GameVariant) error
	BeginSpin(ctx context.Context, login string) error
	EndSpin(ctx context.Context, login string) error
}

type StatsRepository interface {
	CasinoStats() model.CasinoStats
	UpdateState(bet, payout float64)
}
