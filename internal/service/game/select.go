package game

import (
	"casino_sim/internal/middleware"
	"casino_sim/internal/model"
	servModel "casino_sim/internal/service/game/model"
	"context"
	"fmt"
)

// SelectGame запоминает выбранный в лобби вариант игры в сессии пользователя
func (s *serv) SelectGame(ctx context.Context, variant model.GameVariant) error {
	login, ok := middleware.LoginFromContext(ctx)
	if !ok {
		return model.ErrUserNotFound
	}

	if _, ok := servModel.SymbolSets[variant]; !ok {
		return fmt.Errorf("unknown game variant: %s", variant)
	}

	return s.sessionRepo.SetActiveGame(ctx, login, variant)
}
