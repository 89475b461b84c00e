package wallet

import "github.com/shopspring/decimal"

type DepositRequest struct {
	Amount decimal.Decimal `json:"amount"` // Сумма пополнения, > 0
}

type WithdrawRequest struct {
	Amount decimal.Decimal `json:"amount"` // Сумма снятия, > 0 и не больше баланса
}

type BalanceResponse struct {
	Balance decimal.Decimal `json:"balance"` // Текущий баланс
}
