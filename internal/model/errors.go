package model

import "errors"

// Ошибки уровня бизнес-логики. Все восстановимые: API слой
// превращает их в коды ответов, процесс не падает.
var (
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid login or password")
	ErrInvalidAmount      = errors.New("amount must be a positive number")
	ErrInvalidBet         = errors.New("bet per line must be a positive number")
	ErrInsufficientFunds  = errors.New("not enough balance")
	ErrUserNotFound       = errors.New("user not found")

	ErrSessionNotFound = errors.New("session not found")
	ErrNoGameSelected  = errors.New("no game selected")
	ErrSpinInProgress  = errors.New("spin already in progress")

	// ErrPersistence Внешнее хранилище недоступно или запись не прошла.
	// Если запись упала после изменения в памяти - состояния разошлись
	ErrPersistence = errors.New("persistence failure")
)
