package auth

import "github.com/shopspring/decimal"

type RegisterRequest struct {
	Login          string          `json:"login"`           // Уникальный логин (с учетом регистра)
	Password       string          `json:"password"`        // Пароль (хранится открытым текстом)
	InitialBalance decimal.Decimal `json:"initial_balance"` // Стартовый баланс, >= 0
}

type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}
