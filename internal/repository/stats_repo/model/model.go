package model

import (
	appModel "fruit_machine/internal/model"

	"github.com/shopspring/decimal"
)

// Состояние автомата для статистики
type MachineState struct {
	TotalPulls     int             // Сколько всего рычагов
	TotalStaked    decimal.Decimal // Сумма всех списанных ставок
	TotalPaid      decimal.Decimal // Сумма всех выплат
	TotalDeposited decimal.Decimal // Сумма всех депозитов

	Wins             map[appModel.WinKind]int // Сколько раз выпадала каждая комбинация
	FreeGamesAwarded int
	FreeGamesUsed    int

	PullWindow []PullRecord // Окно последних рычагов
	WindowSize int          // Размер окна
}

// Рычаг для окна
type PullRecord struct {
	Stake decimal.Decimal
	Prize decimal.Decimal
}
