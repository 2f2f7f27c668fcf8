package stats_repo

import (
	"sync"

	appModel "fruit_machine/internal/model"
	"fruit_machine/internal/repository"
	repoModel "fruit_machine/internal/repository/stats_repo/model"

	"github.com/shopspring/decimal"
)

const (
	// defaultWindowSize Сколько последних рычагов учитываем в RTP окна
	defaultWindowSize = 500
	// Точность RTP в процентах
	rtpScale = 2
)

var hundred = decimal.NewFromInt(100)

// Реализация репозитория для хранения статистики автомата
type StateRepo struct {
	mtx   sync.RWMutex
	state repoModel.MachineState
}

// NewStatsRepository Конструктор с пустой статистикой. windowSize <= 0 — размер по умолчанию
func NewStatsRepository(windowSize int) repository.StatsRepository {
	if windowSize <= 0 {
		windowSize = defaultWindowSize
	}
	return &StateRepo{
		state: repoModel.MachineState{
			TotalStaked:    decimal.Zero,
			TotalPaid:      decimal.Zero,
			TotalDeposited: decimal.Zero,
			Wins:           make(map[appModel.WinKind]int),
			PullWindow:     make([]repoModel.PullRecord, 0, windowSize),
			WindowSize:     windowSize,
		},
	}
}

// RecordPull Обновление статистики после рычага
func (r *StateRepo) RecordPull(res appModel.PullResult) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.state.TotalPulls++
	r.state.TotalStaked = r.state.TotalStaked.Add(res.Stake)
	r.state.TotalPaid = r.state.TotalPaid.Add(res.Prize)
	r.state.Wins[res.Kind]++
	r.state.FreeGamesAwarded += res.FreeGamesAwarded
	if res.FreeGameUsed {
		r.state.FreeGamesUsed++
	}

	// Добавляем рычаг в окно
	r.state.PullWindow = append(r.state.PullWindow, repoModel.PullRecord{
		Stake: res.Stake,
		Prize: res.Prize,
	})

	// Поддерживаем размер окна
	if len(r.state.PullWindow) > r.state.WindowSize {
		r.state.PullWindow = r.state.PullWindow[1:]
	}
}

func (r *StateRepo) RecordDeposit(amount decimal.Decimal) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.state.TotalDeposited = r.state.TotalDeposited.Add(amount)
}

// Stats Возвращает копию статистики
func (r *StateRepo) Stats() appModel.Stats {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	wins := make(map[appModel.WinKind]int, len(r.state.Wins))
	for k, v := range r.state.Wins {
		wins[k] = v
	}

	windowStaked, windowPaid := decimal.Zero, decimal.Zero
	for _, p := range r.state.PullWindow {
		windowStaked = windowStaked.Add(p.Stake)
		windowPaid = windowPaid.Add(p.Prize)
	}

	return appModel.Stats{
		TotalPulls:       r.state.TotalPulls,
		TotalStaked:      r.state.TotalStaked,
		TotalPaid:        r.state.TotalPaid,
		TotalDeposited:   r.state.TotalDeposited,
		RTP:              rtp(r.state.TotalPaid, r.state.TotalStaked),
		WindowRTP:        rtp(windowPaid, windowStaked),
		WindowSize:       r.state.WindowSize,
		Wins:             wins,
		FreeGamesAwarded: r.state.FreeGamesAwarded,
		FreeGamesUsed:    r.state.FreeGamesUsed,
	}
}

// RTP = выплаты / ставки * 100. Без ставок — 0
func rtp(paid, staked decimal.Decimal) decimal.Decimal {
	if !staked.IsPositive() {
		return decimal.Zero
	}
	return paid.Mul(hundred).DivRound(staked, rtpScale)
}
