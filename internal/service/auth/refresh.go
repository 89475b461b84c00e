package auth

import (
	"casino_sim/internal/model"
	"casino_sim/pkg/token"
	"context"
	"errors"
	"time"
)

func (s *serv) Refresh(ctx context.Context, data *model.AuthData) (newAccessToken string, err error) {
	// Получение сессии по sessionID
	session, err := s.sessionRepo.GetSession(ctx, data.SessionID)
	if err != nil {
		return "", err
	}

	// Истекшая сессия обновлению не подлежит
	if time.Now().After(session.ExpiresAt) {
		return "", model.ErrSessionNotFound
	}

	// Верификация переданного refresh токена с хэшем из сессии
	if !token.VerifyRefreshToken(data.RefreshToken, session.RefreshToken) {
		return "", errors.New("invalid refresh token")
	}

	// Получение пользователя по логину из сессии
	user, err := s.userRepo.GetUserByLogin(ctx, session.Login)
	if err != nil {
		return "", err
	}

	// Генерация нового access токена
	newAccessToken, err = token.GenerateAccessToken(
		user,
		s.jwtConfig.AccessTokenSecretKey(),
		s.jwtConfig.AccessTokenDuration())
	if err != nil {
		return "", err
	}

	return newAccessToken, nil
}
