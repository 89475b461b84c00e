package stats_repo

import (
	"casino_sim/internal/model"
	"casino_sim/internal/repository"
	"sync"
)

// Реализация репозитория для хранения статистики спинов
type StatsRepo struct {
	mtx   sync.RWMutex
	state model.CasinoStats
}

// NewStatsRepository Конструктор для создания нового репозитория с нулевой статистикой
func NewStatsRepository() repository.StatsRepository {
	return &StatsRepo{}
}

// CasinoStats Получение текущей статистики казино.
// Возвращает копию структуры CasinoStats
func (r *StatsRepo) CasinoStats() model.CasinoStats {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	return r.state
}

// UpdateState Обновление статистики казино после спина
func (r *StatsRepo) UpdateState(bet, payout float64) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.state.TotalSpins++
	r.state.TotalBet += bet
	r.state.TotalPayout += payout
	if r.state.TotalBet > 0 {
		r.state.CurrentRTP = r.state.TotalPayout / r.state.TotalBet * 100
	}
}
