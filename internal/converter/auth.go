package converter

import (
	dto "casino_sim/internal/api/dto/auth"
	"casino_sim/internal/model"
)

func RegisterRequestToUserModel(req *dto.RegisterRequest) *model.User {
	return &model.User{
		Login:    req.Login,
		Password: req.Password,
		Balance:  req.InitialBalance,
	}
}
