package game

import (
	"casino_sim/internal/middleware"
	"casino_sim/internal/model"
	servModel "casino_sim/internal/service/game/model"
	"context"

	"github.com/shopspring/decimal"
)

// Количество барабанов
const reelCount = 3

// Spin выполняет один платный спин: списание общей ставки,
// генерация барабанов, расчет и начисление выигрыша
func (s *serv) Spin(ctx context.Context, spinReq model.Spin) (*model.SpinResult, error) {
	// Получаем логин пользователя
	login, ok := middleware.LoginFromContext(ctx)
	if !ok {
		return nil, model.ErrUserNotFound
	}

	// Игра должна быть выбрана в лобби до первого спина
	session, err := s.sessionRepo.GetSessionByLogin(ctx, login)
	if err != nil {
		return nil, err
	}
	symbols, ok := servModel.SymbolSets[session.ActiveGame]
	if !ok {
		return nil, model.ErrNoGameSelected
	}

	// Валидация ставки и расчет общей ставки по пяти линиям
	totalBet, err := ComputeTotalBet(spinReq.BetPerLine)
	if err != nil {
		return nil, err
	}

	// Флаг занятости: один незавершенный спин на сессию
	err = s.sessionRepo.BeginSpin(ctx, login)
	if err != nil {
		return nil, err
	}
	defer s.sessionRepo.EndSpin(ctx, login)

	// Проверка достаточности средств ДО списания, частичного дебета не бывает
	balance, err := s.paymentServ.Balance(ctx)
	if err != nil {
		return nil, err
	}
	if totalBet.GreaterThan(balance) {
		return nil, model.ErrInsufficientFunds
	}

	// Списание общей ставки через общий путь с проверкой инварианта
	balance, err = s.paymentServ.Withdraw(ctx, model.Withdraw{Amount: totalBet})
	if err != nil {
		return nil, err
	}

	// Генерация барабанов и расчет выплаты от ставки на линию
	reels := s.drawReels(symbols)
	payout := EvaluateLines(reels, spinReq.BetPerLine)
	payout = payout.Add(s.rollBonuses(spinReq.BetPerLine))

	// Начисление выигрыша
	if payout.Sign() > 0 {
		balance, err = s.paymentServ.Deposit(ctx, model.Deposit{Amount: payout})
		if err != nil {
			return nil, err
		}
	}

	// Обновляем статистику
	s.statsRepo.UpdateState(totalBet.InexactFloat64(), payout.InexactFloat64())

	return &model.SpinResult{
		Reels:       reels,
		TotalPayout: payout,
		Balance:     balance,
	}, nil
}

// ComputeTotalBet считает общую ставку: ставка на линию * 5 линий.
// Количество линий фиксировано и не зависит от варианта игры
func ComputeTotalBet(betPerLine decimal.Decimal) (decimal.Decimal, error) {
	if betPerLine.Sign() <= 0 {
		return decimal.Zero, model.ErrInvalidBet
	}

	return betPerLine.Mul(decimal.NewFromInt(servModel.PaylineCount)), nil
}

// EvaluateLines считает позиционную выплату по трем барабанам.
// Правила образуют цепочку приоритетов, срабатывает ровно одно:
// тройка x50, иначе левая пара x5, иначе правая пара x3, иначе ноль
func EvaluateLines(reels [3]string, betPerLine decimal.Decimal) decimal.Decimal {
	switch {
	case reels[0] == reels[1] && reels[1] == reels[2]:
		return betPerLine.Mul(decimal.NewFromInt(servModel.TripleMultiplier))
	case reels[0] == reels[1]:
		return betPerLine.Mul(decimal.NewFromInt(servModel.LeftPairMultiplier))
	case reels[1] == reels[2]:
		return betPerLine.Mul(decimal.NewFromInt(servModel.RightPairMultiplier))
	default:
		return decimal.Zero
	}
}

// drawReels генерирует три символа: независимый равномерный выбор
// из набора активного варианта, повторы разрешены
func (s *serv) drawReels(symbols []string) [3]string {
	var reels [3]string
	for i := 0; i < reelCount; i++ {
		reels[i] = symbols[s.rng.Intn(len(symbols))]
	}
	return reels
}

// rollBonuses разыгрывает "линии 4 и 5": два независимых бонуса,
// каждый с шансом 25% добавляет x2 от ставки на линию
func (s *serv) rollBonuses(betPerLine decimal.Decimal) decimal.Decimal {
	bonus := decimal.Zero
	for i := 0; i < 2; i++ {
		if s.rng.Float64() < servModel.BonusChance {
			bonus = bonus.Add(betPerLine.Mul(decimal.NewFromInt(servModel.BonusMultiplier)))
		}
	}
	return bonus
}
