package payment

import (
	"casino_sim/internal/repository"
	"casino_sim/internal/service"
)

type serv struct {
	userRepo repository.UserRepository
}

// NewPaymentService Создать сервис управления балансом
func NewPaymentService(userRepo repository.UserRepository) service.PaymentService {
	return &serv{
		userRepo: userRepo,
	}
}
