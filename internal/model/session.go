package model

import "time"

type Session struct {
	ID           string
	Login        string
	RefreshToken string
	ExpiresAt    time.Time

	ActiveGame GameVariant // Выбранная игра в лобби, пустая строка если не выбрана
	InSpin     bool        // Флаг занятости: спин запущен, но результат еще не выдан
}
