package game

import "github.com/shopspring/decimal"

type SelectGameRequest struct {
	Variant string `json:"variant"` // "classic" или "diamond_rush"
}

type SpinRequest struct {
	Bet decimal.Decimal `json:"bet"` // Ставка на линию, > 0
}

type SpinResponse struct {
	Reels       [3]string       `json:"reels"`        // Выпавшие символы
	TotalPayout decimal.Decimal `json:"total_payout"` // Общая выплата за спин
	Balance     decimal.Decimal `json:"balance"`      // Баланс после спина
}

type StatsResponse struct {
	TotalSpins  int     `json:"total_spins"`  // Сколько всего спинов сделано
	TotalBet    float64 `json:"total_bet"`    // Сумма всех ставок
	TotalPayout float64 `json:"total_payout"` // Сумма всех выплат
	CurrentRTP  float64 `json:"current_rtp"`  // (TotalPayout/TotalBet)*100
}
