package model

import "github.com/shopspring/decimal"

type GameVariant string

const (
	VariantClassic     GameVariant = "classic"
	VariantDiamondRush GameVariant = "diamond_rush"
)

type Spin struct {
	BetPerLine decimal.Decimal
}

type SpinResult struct {
	Reels       [3]string
	TotalPayout decimal.Decimal
	Balance     decimal.Decimal // Баланс после зачисления выигрыша
}

type Deposit struct {
	Amount decimal.Decimal
}

type Withdraw struct {
	Amount decimal.Decimal
}

// CasinoStats Накопленная статистика по спинам за время жизни процесса
type CasinoStats struct {
	TotalSpins  int
	TotalBet    float64
	TotalPayout float64
	CurrentRTP  float64 // (TotalPayout/TotalBet)*100
}
