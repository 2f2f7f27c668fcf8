package model

import "github.com/shopspring/decimal"

// WinKind Тип выигрышной комбинации
type WinKind string

const (
	// Все четыре символа одинаковые — весь банк игроку
	WinJackpot WinKind = "jackpot"
	// Все четыре символа разные — половина банка
	WinSplit WinKind = "split"
	// Два соседних одинаковых — 5 ставок
	WinAdjacent WinKind = "adjacent"
	// Ничего не совпало
	WinNone WinKind = "none"
)

// PullResult Результат одного рычага
type PullResult struct {
	RoundID          string
	Outcome          Outcome
	Kind             WinKind
	Prize            decimal.Decimal // Сколько денег ушло из банка игроку
	Stake            decimal.Decimal // Сколько списано с игрока в банк
	FreeGamesAwarded int             // Начислено бесплатных игр за недостачу в банке
	FreeGameUsed     bool            // Игра была оплачена бесплатной игрой
}

// MachineData Снимок состояния автомата для отображения
type MachineData struct {
	PricePerGame   decimal.Decimal
	PlayerBalance  decimal.Decimal
	Jackpot        decimal.Decimal
	GamesRemaining int
	FreeGames      int
	Slots          []Symbol // nil до первого рычага
}

type Deposit struct {
	Amount decimal.Decimal
}
