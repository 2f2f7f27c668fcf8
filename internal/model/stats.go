package model

import "github.com/shopspring/decimal"

// Stats Статистика автомата с момента запуска
type Stats struct {
	TotalPulls       int
	TotalStaked      decimal.Decimal // Сумма всех списанных ставок
	TotalPaid        decimal.Decimal // Сумма всех выплат
	TotalDeposited   decimal.Decimal
	RTP              decimal.Decimal // TotalPaid / TotalStaked * 100
	WindowRTP        decimal.Decimal // RTP в окне последних рычагов
	WindowSize       int
	Wins             map[WinKind]int
	FreeGamesAwarded int
	FreeGamesUsed    int
}
