package machine

import (
	"sync"

	"fruit_machine/internal/model"
	"fruit_machine/internal/repository"
	"fruit_machine/internal/service"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// fruitMachine То, что сервису нужно от автомата
type fruitMachine interface {
	InsertMoney(amount decimal.Decimal)
	PullLever() (model.PullResult, error)
	GamesRemaining() int
	CurrentJackpot() decimal.Decimal
	PlayerAvailableBalance() decimal.Decimal
	FreeGames() int
	PricePerGame() decimal.Decimal
	SlotsDisplayed() []model.Symbol
}

type serv struct {
	// Автомат не потокобезопасен, все обращения под mtx
	mtx       sync.Mutex
	fm        fruitMachine
	statsRepo repository.StatsRepository
	log       *zap.Logger
}

// NewMachineService Сервис над одним автоматом
func NewMachineService(
	fm fruitMachine,
	statsRepo repository.StatsRepository,
	log *zap.Logger,
) service.MachineService {
	return &serv{
		fm:        fm,
		statsRepo: statsRepo,
		log:       log,
	}
}

// snapshot Снимок состояния. Вызывать под mtx
func (s *serv) snapshot() *model.MachineData {
	return &model.MachineData{
		PricePerGame:   s.fm.PricePerGame(),
		PlayerBalance:  s.fm.PlayerAvailableBalance(),
		Jackpot:        s.fm.CurrentJackpot(),
		GamesRemaining: s.fm.GamesRemaining(),
		FreeGames:      s.fm.FreeGames(),
		Slots:          s.fm.SlotsDisplayed(),
	}
}
