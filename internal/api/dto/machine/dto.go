package machine

// Деньги передаём строками с двумя знаками, без float

type DepositRequest struct {
	Amount string `json:"amount"` // Сумма депозита, например "1.50"
}

type DataResponse struct {
	PricePerGame   string   `json:"price_per_game"`  // Цена одной игры
	PlayerBalance  string   `json:"player_balance"`  // Баланс игрока
	Jackpot        string   `json:"jackpot"`         // Банк автомата
	GamesRemaining int      `json:"games_remaining"` // Оплаченные + бесплатные игры
	FreeGames      int      `json:"free_games"`      // Остаток бесплатных игр
	Slots          []string `json:"slots"`           // Символы последнего рычага, пусто до первого
}

type PullResponse struct {
	RoundID          string       `json:"round_id"`
	Slots            []string     `json:"slots"`              // Выпавшие символы слева направо
	Kind             string       `json:"kind"`               // jackpot | split | adjacent | none
	Prize            string       `json:"prize"`              // Выплата из банка
	Stake            string       `json:"stake"`              // Списанная ставка
	FreeGamesAwarded int          `json:"free_games_awarded"` // Начислено бесплатных игр
	FreeGameUsed     bool         `json:"free_game_used"`
	Data             DataResponse `json:"data"` // Состояние после рычага
}

type StatsResponse struct {
	TotalPulls       int            `json:"total_pulls"`
	TotalStaked      string         `json:"total_staked"`
	TotalPaid        string         `json:"total_paid"`
	TotalDeposited   string         `json:"total_deposited"`
	RTP              string         `json:"rtp"`        // В процентах
	WindowRTP        string         `json:"window_rtp"` // RTP последних window_size рычагов
	WindowSize       int            `json:"window_size"`
	Wins             map[string]int `json:"wins"`
	FreeGamesAwarded int            `json:"free_games_awarded"`
	FreeGamesUsed    int            `json:"free_games_used"`
}
