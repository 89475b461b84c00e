package auth

import (
	"casino_sim/internal/config"
	"casino_sim/internal/repository"
	"casino_sim/internal/service"

	"github.com/google/uuid"
)

type serv struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	jwtConfig   config.JWTConfig
}

// NewAuthService Создать сервис регистрации и входа
func NewAuthService(
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	jwtConfig config.JWTConfig,
) service.AuthService {
	return &serv{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		jwtConfig:   jwtConfig,
	}
}

func generateSessionID() string {
	return uuid.NewString()
}
