package converter

import (
	"fmt"

	"fruit_machine/internal/api/dto/machine"
	"fruit_machine/internal/model"

	"github.com/shopspring/decimal"
)

const moneyScale = 2

func ToDeposit(req machine.DepositRequest) (model.Deposit, error) {
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return model.Deposit{}, fmt.Errorf("invalid amount %q: %w", req.Amount, err)
	}
	return model.Deposit{
		Amount: amount,
	}, nil
}

func ToDataResponse(data model.MachineData) machine.DataResponse {
	return machine.DataResponse{
		PricePerGame:   data.PricePerGame.StringFixed(moneyScale),
		PlayerBalance:  data.PlayerBalance.StringFixed(moneyScale),
		Jackpot:        data.Jackpot.StringFixed(moneyScale),
		GamesRemaining: data.GamesRemaining,
		FreeGames:      data.FreeGames,
		Slots:          toSlots(data.Slots),
	}
}

func ToPullResponse(res model.PullResult, data model.MachineData) machine.PullResponse {
	return machine.PullResponse{
		RoundID:          res.RoundID,
		Slots:            res.Outcome.Strings(),
		Kind:             string(res.Kind),
		Prize:            res.Prize.StringFixed(moneyScale),
		Stake:            res.Stake.StringFixed(moneyScale),
		FreeGamesAwarded: res.FreeGamesAwarded,
		FreeGameUsed:     res.FreeGameUsed,
		Data:             ToDataResponse(data),
	}
}

func ToStatsResponse(stats model.Stats) machine.StatsResponse {
	wins := make(map[string]int, len(stats.Wins))
	for k, v := range stats.Wins {
		wins[string(k)] = v
	}
	return machine.StatsResponse{
		TotalPulls:       stats.TotalPulls,
		TotalStaked:      stats.TotalStaked.StringFixed(moneyScale),
		TotalPaid:        stats.TotalPaid.StringFixed(moneyScale),
		TotalDeposited:   stats.TotalDeposited.StringFixed(moneyScale),
		RTP:              stats.RTP.StringFixed(moneyScale),
		WindowRTP:        stats.WindowRTP.StringFixed(moneyScale),
		WindowSize:       stats.WindowSize,
		Wins:             wins,
		FreeGamesAwarded: stats.FreeGamesAwarded,
		FreeGamesUsed:    stats.FreeGamesUsed,
	}
}

// Пустой слайс, а не null в JSON
func toSlots(slots []model.Symbol) []string {
	result := make([]string, len(slots))
	for i, s := range slots {
		result[i] = s.String()
	}
	return result
}
