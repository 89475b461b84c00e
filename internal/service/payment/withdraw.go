package payment

import (
	"casino_sim/internal/middleware"
	"casino_sim/internal/model"
	"context"

	"github.com/shopspring/decimal"
)

// Withdraw списывает сумму с баланса и возвращает новое значение.
// Баланс никогда не уходит в минус: проверка идет до мутации
func (s *serv) Withdraw(ctx context.Context, req model.Withdraw) (decimal.Decimal, error) {
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

	// Проверяем достаточность средств
	if req.Amount.GreaterThan(balance) {
		return decimal.Zero, model.ErrInsufficientFunds
	}

	// Списываем и сохраняем
	balance = balance.Sub(req.Amount)
	err = s.userRepo.UpdateBalance(ctx, login, balance)
	if err != nil {
		return decimal.Zero, err
	}

	return balance, nil
}
