package machine

import (
	"context"
	"errors"
	"fmt"

	fm "fruit_machine/internal/machine"
	"fruit_machine/internal/model"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Pull Дёргаем рычаг, пишем статистику
func (s *serv) Pull(ctx context.Context) (*model.PullResult, *model.MachineData, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	res, err := s.fm.PullLever()
	if err != nil {
		if errors.Is(err, fm.ErrInsufficientCredit) {
			s.log.Warn("pull rejected",
				zap.String("balance", s.fm.PlayerAvailableBalance().StringFixed(moneyScale)),
				zap.Int("free_games", s.fm.FreeGames()),
			)
		}
		return nil, nil, fmt.Errorf("pull lever: %w", err)
	}
	res.RoundID = uuid.NewString()

	s.statsRepo.RecordPull(res)

	data := s.snapshot()
	s.log.Info("pull",
		zap.String("round_id", res.RoundID),
		zap.Strings("slots", res.Outcome.Strings()),
		zap.String("kind", string(res.Kind)),
		zap.String("prize", res.Prize.StringFixed(moneyScale)),
		zap.String("stake", res.Stake.StringFixed(moneyScale)),
		zap.Int("free_games_awarded", res.FreeGamesAwarded),
		zap.Bool("free_game_used", res.FreeGameUsed),
		zap.String("balance", data.PlayerBalance.StringFixed(moneyScale)),
		zap.String("jackpot", data.Jackpot.StringFixed(moneyScale)),
	)

	return &res, data, nil
}
