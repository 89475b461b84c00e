package game

import (
	"casino_sim/internal/model"
	"casino_sim/internal/repository"
	"casino_sim/internal/service"
)

// Rand Источник случайности для генерации символов и бонусных розыгрышей.
// Инжектится снаружи, чтобы результаты спинов были воспроизводимы в тестах.
// *rand.Rand из math/rand подходит без обертки
type Rand interface {
	Intn(n int) int
	Float64() float64
}

type serv struct {
	paymentServ service.PaymentService
	sessionRepo repository.SessionRepository
	statsRepo   repository.StatsRepository
	rng         Rand
}

// NewGameService Создать сервис слотов с двумя вариантами игры
func NewGameService(
	paymentServ service.PaymentService,
	sessionRepo repository.SessionRepository,
	statsRepo repository.StatsRepository,
	rng Rand,
) service.GameService {
	return &serv{
		paymentServ: paymentServ,
		sessionRepo: sessionRepo,
		statsRepo:   statsRepo,
		rng:         rng,
	}
}

// Stats Текущая статистика спинов за время жизни процесса
func (s *serv) Stats() model.CasinoStats {
	return s.statsRepo.CasinoStats()
}
