package payment

import (
	"casino_sim/internal/middleware"
	"casino_sim/internal/model"
	"context"

	"github.com/shopspring/decimal"
)

// Deposit пополняет баланс и возвращает новое значение.
// Каждая мутация сразу уходит в хранилище, отложенной записи нет
func (s *serv) Deposit(ctx context.Context, req model.Deposit) (decimal.Decimal, error) {
	// Валидация суммы до любых изменений
	if req.Amount.Sign() <= 0 {
		return decimal.Zero, model.ErrInvalidAmount
	}

	// Получаем логин пользователя
	login, ok := middleware.LoginFromContext(ctx)
	if !ok {
		return decimal.Zero, model.ErrUserNotFound
	}

	// Получаем текущий баланс
	balance, err := s.userRepo.GetBalance(ctx, login)
	if err != nil {
		return decimal.Zero, err
	}

	// Начисляем и сохраняем
	balance = balance.Add(req.Amount)
	err = s.userRepo.UpdateBalance(ctx, login, balance)
	if err != nil {
		return decimal.Zero, err
	}

	return balance, nil
}
