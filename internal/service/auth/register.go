package auth

import (
	"casino_sim/internal/model"
	"casino_sim/pkg/token"
	"context"
	"time"
)

func (s *serv) Register(ctx context.Context, user *model.User) (*model.AuthData, error) {
	// Пароль сохраняется как есть: в симуляции нет модели безопасности,
	// хэширование сюда сознательно не добавлено

	// 1. Создать пользователя в хранилище (дубликат логина отклонит репозиторий)
	err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	// 2. Генерация sessionID
	sessionID := generateSessionID()

	// 3. Генерация refresh токена
	refreshToken, err := token.GenerateRefreshToken()
	if err != nil {
		return nil, err
	}

	// 4. Создать сессию
	err = s.sessionRepo.CreateSession(ctx,
		&model.Session{
			ID:           sessionID,
			Login:        user.Login,
			RefreshToken: token.HashRefreshToken(refreshToken),
			ExpiresAt:    time.Now().Add(s.jwtConfig.RefreshTokenDuration()),
		})
	if err != nil {
		return nil, err
	}

	// 5. Создать access токен
	accessToken, err := token.GenerateAccessToken(
		user,
		s.jwtConfig.AccessTokenSecretKey(),
		s.jwtConfig.AccessTokenDuration())
	if err != nil {
		return nil, err
	}

	return &model.AuthData{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		SessionID:    sessionID,
	}, nil
}
