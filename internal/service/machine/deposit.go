package machine

import (
	"context"
	"errors"

	"fruit_machine/internal/model"

	"go.uber.org/zap"
)

// Деньги принимаем с точностью до копейки
const moneyScale = 2

var ErrInvalidAmount = errors.New("amount must be non-negative with at most two decimal places")

// Deposit Игрок закидывает деньги
func (s *serv) Deposit(ctx context.Context, req model.Deposit) (*model.MachineData, error) {
	// Отрицательные суммы и доли копейки не принимаем
	if req.Amount.IsNegative() || !req.Amount.Equal(req.Amount.Truncate(moneyScale)) {
		return nil, ErrInvalidAmount
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.fm.InsertMoney(req.Amount)
	s.statsRepo.RecordDeposit(req.Amount)

	data := s.snapshot()
	s.log.Info("deposit",
		zap.String("amount", req.Amount.StringFixed(moneyScale)),
		zap.String("balance", data.PlayerBalance.StringFixed(moneyScale)),
		zap.Int("games_remaining", data.GamesRemaining),
	)
	return data, nil
}
