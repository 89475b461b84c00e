package converter

import (
	dto "casino_sim/internal/api/dto/game"
	"casino_sim/internal/model"
)

func ToSpin(req dto.SpinRequest) model.Spin {
	return model.Spin{
		BetPerLine: req.Bet,
	}
}

func ToSpinResponse(resp model.SpinResult) dto.SpinResponse {
	return dto.SpinResponse{
		Reels:       resp.Reels,
		TotalPayout: resp.TotalPayout,
		Balance:     resp.Balance,
	}
}

func ToStatsResponse(stats model.CasinoStats) dto.StatsResponse {
	return dto.StatsResponse{
		TotalSpins:  stats.TotalSpins,
		TotalBet:    stats.TotalBet,
		TotalPayout: stats.TotalPayout,
		CurrentRTP:  stats.CurrentRTP,
	}
}
