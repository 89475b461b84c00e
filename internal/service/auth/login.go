package auth

import (
	"casino_sim/internal/model"
	"casino_sim/pkg/token"
	"context"
	"errors"
	"time"
)

func (s *serv) Login(ctx context.Context, login, password string) (*model.AuthData, error) {
	// Получение пользователя из хранилища по логину
	user, err := s.userRepo.GetUserByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			// Неизвестный логин и неверный пароль наружу неразличимы
			return nil, model.ErrInvalidCredentials
		}
		return nil, err
	}

	// Сравнение пароля: точное, с учетом регистра, открытым текстом
	if user.Password != password {
		return nil, model.ErrInvalidCredentials
	}

	// Генерация sessionID
	sessionID := generateSessionID()

	// Генерация refresh токена
	refreshToken, err := token.GenerateRefreshToken()
	if err != nil {
		return nil, err
	}

	// Создать сессию
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

	// Создать access токен
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
