package service

import (
	"casino_sim/internal/model"
	"context"

	"github.com/shopspring/decimal"
)

type AuthService interface {
	Register(ctx context.Context, user *model.User) (*model.AuthData, error)
	Login(ctx context.Context, login, password string) (*model.AuthData, error)
	Refresh(ctx context.Context, data *model.AuthData) (newAccessToken string, err error)
	Logout(ctx context.Context, sessionID string) error
}

type PaymentService interface {
	Deposit(ctx context.Context, req model.Deposit) (decimal.Decimal, error)
	Withdraw(ctx context.Context, req model.Withdraw) (decimal.Decimal, error)
	Balance(ctx context.Context) (decimal.Decimal, error)
}

type GameService interface {
	SelectGame(ctx context.Context, variant model.GameVariant) error
	Spin(ctx context.Context, spinReq model.Spin) (*model.SpinResult, error)
	Stats() model.CasinoStats
}
