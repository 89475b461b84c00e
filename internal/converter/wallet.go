package converter

import (
	dto "casino_sim/internal/api/dto/wallet"
	"casino_sim/internal/model"
)

func ToDeposit(req dto.DepositRequest) model.Deposit {
	return model.Deposit{
		Amount: req.Amount,
	}
}

func ToWithdraw(req dto.WithdrawRequest) model.Withdraw {
	return model.Withdraw{
		Amount: req.Amount,
	}
}
