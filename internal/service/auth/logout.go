package auth

import (
	"context"
)

func (s *serv) Logout(ctx context.Context, sessionID string) error {
	// Сессия и выбранная игра живут только в памяти, удаление сессии
	// сбрасывает и то и другое
	return s.sessionRepo.DeleteSession(ctx, sessionID)
}
