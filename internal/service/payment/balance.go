package payment

import (
	"casino_sim/internal/middleware"
	"casino_sim/internal/model"
	"context"

	"github.com/shopspring/decimal"
)

// Balance возвращает текущий баланс пользователя
func (s *serv) Balance(ctx context.Context) (decimal.Decimal, error) {
	login, ok := middleware.LoginFromContext(ctx)
	if !ok {
		return decimal.Zero, model.ErrUserNotFound
	}

	return s.userRepo.GetBalance(ctx, login)
}
