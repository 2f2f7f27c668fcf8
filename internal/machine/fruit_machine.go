package machine

import (
	"errors"

	"fruit_machine/internal/model"

	"github.com/shopspring/decimal"
)

const (
	// Выплата за соседние одинаковые символы в кратности цены игры
	adjacentPrizeMultiplier = 5
	// Точность денежных значений
	moneyScale = 2
)

var (
	// ErrInsufficientCredit Не хватает денег и нет бесплатных игр
	ErrInsufficientCredit = errors.New("you have insufficient credit to play the fruit machine")
	// ErrInvalidPrice Цена игры должна быть больше нуля
	ErrInvalidPrice = errors.New("price per game must be positive")
)

var two = decimal.NewFromInt(2)

// OutcomeGenerator Откуда автомат берёт символы
type OutcomeGenerator interface {
	Generate() model.Outcome
}

// FruitMachine Автомат на четыре барабана. Не потокобезопасен,
// синхронизация на стороне вызывающего.
type FruitMachine struct {
	pricePerGame   decimal.Decimal
	playerBalance  decimal.Decimal
	machineBalance decimal.Decimal
	freeGames      int
	slots          *model.Outcome
	gen            OutcomeGenerator
}

// New Создать автомат с ценой игры и начальным банком
func New(pricePerGame, initialJackpot decimal.Decimal, gen OutcomeGenerator) (*FruitMachine, error) {
	// иначе GamesRemaining делит на ноль
	if !pricePerGame.IsPositive() {
		return nil, ErrInvalidPrice
	}
	return &FruitMachine{
		pricePerGame:   pricePerGame,
		playerBalance:  decimal.Zero,
		machineBalance: initialJackpot,
		gen:            gen,
	}, nil
}

// InsertMoney Игрок закидывает деньги
func (m *FruitMachine) InsertMoney(amount decimal.Decimal) {
	m.playerBalance = m.playerBalance.Add(amount)
}

// PullLever Дёрнуть рычаг: сгенерировать символы и рассчитать выплату
func (m *FruitMachine) PullLever() (model.PullResult, error) {
	if m.hasInsufficientCredit() {
		return model.PullResult{}, ErrInsufficientCredit
	}

	outcome := m.gen.Generate()
	m.slots = &outcome

	res := model.PullResult{
		Outcome: outcome,
		Kind:    Classify(outcome),
		Prize:   decimal.Zero,
		Stake:   decimal.Zero,
	}

	switch res.Kind {
	case model.WinJackpot:
		res.Prize = m.payIdenticalPrize()
	case model.WinSplit:
		res.Prize = m.payUniquePrize()
	case model.WinAdjacent:
		res.Prize, res.FreeGamesAwarded = m.payAdjacentPrize()
	default:
		res.Stake, res.FreeGameUsed = m.playerPaysForGame()
	}

	return res, nil
}

// Classify Определяет комбинацию. Порядок проверки важен: первая подходящая побеждает
func Classify(o model.Outcome) model.WinKind {
	switch distinct(o) {
	case 1:
		return model.WinJackpot
	case model.Reels:
		return model.WinSplit
	}
	for i := 0; i < model.Reels-1; i++ {
		if o[i] == o[i+1] {
			return model.WinAdjacent
		}
	}
	return model.WinNone
}

func distinct(o model.Outcome) int {
	var seen [model.SymbolCount]bool
	n := 0
	for _, s := range o {
		if !seen[s] {
			seen[s] = true
			n++
		}
	}
	return n
}

// GamesRemaining Сколько игр можно сыграть: оплаченные + бесплатные
func (m *FruitMachine) GamesRemaining() int {
	q, _ := m.playerBalance.QuoRem(m.pricePerGame, 0)
	return int(q.IntPart()) + m.freeGames
}

func (m *FruitMachine) CurrentJackpot() decimal.Decimal {
	return m.machineBalance.Round(moneyScale)
}

func (m *FruitMachine) PlayerAvailableBalance() decimal.Decimal {
	return m.playerBalance.Round(moneyScale)
}

func (m *FruitMachine) FreeGames() int {
	return m.freeGames
}

func (m *FruitMachine) PricePerGame() decimal.Decimal {
	return m.pricePerGame
}

// SlotsDisplayed Последние выпавшие символы. nil до первого рычага
func (m *FruitMachine) SlotsDisplayed() []model.Symbol {
	if m.slots == nil {
		return nil
	}
	out := make([]model.Symbol, model.Reels)
	copy(out, m.slots[:])
	return out
}

// Весь банк игроку
func (m *FruitMachine) payIdenticalPrize() decimal.Decimal {
	prize := m.machineBalance
	m.playerBalance = m.playerBalance.Add(prize)
	m.machineBalance = decimal.Zero
	return prize
}

// Половина банка, округление half-up до копеек
func (m *FruitMachine) payUniquePrize() decimal.Decimal {
	prize := m.machineBalance.DivRound(two, moneyScale)
	m.machineBalance = m.machineBalance.Sub(prize)
	m.playerBalance = m.playerBalance.Add(prize)
	return prize
}

// 5 ставок. Если в банке не хватает — отдаём что есть, остаток
// конвертируем в целые бесплатные игры, дробная часть сгорает
func (m *FruitMachine) payAdjacentPrize() (decimal.Decimal, int) {
	prize := m.pricePerGame.Mul(decimal.NewFromInt(adjacentPrizeMultiplier))
	if m.machineBalance.GreaterThanOrEqual(prize) {
		m.machineBalance = m.machineBalance.Sub(prize)
		m.playerBalance = m.playerBalance.Add(prize)
		return prize, 0
	}

	paid := m.machineBalance
	m.playerBalance = m.playerBalance.Add(paid)
	q, _ := prize.Sub(paid).QuoRem(m.pricePerGame, 0)
	awarded := int(q.IntPart())
	m.freeGames += awarded
	m.machineBalance = decimal.Zero
	return paid, awarded
}

// Проигрыш: тратим бесплатную игру, если есть, иначе ставка уходит в банк
func (m *FruitMachine) playerPaysForGame() (decimal.Decimal, bool) {
	if m.freeGames > 0 {
		m.freeGames--
		return decimal.Zero, true
	}
	m.machineBalance = m.machineBalance.Add(m.pricePerGame)
	m.playerBalance = m.playerBalance.Sub(m.pricePerGame)
	return m.pricePerGame, false
}

func (m *FruitMachine) hasInsufficientCredit() bool {
	return m.playerBalance.LessThan(m.pricePerGame) && m.freeGames == 0
}
