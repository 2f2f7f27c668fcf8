package repository

import (
	"fruit_machine/internal/model"

	"github.com/shopspring/decimal"
)

// StatsRepository Статистика автомата. Живёт только в памяти
type StatsRepository interface {
	RecordPull(res model.PullResult)
	RecordDeposit(amount decimal.Decimal)
	Stats() model.Stats
}
