package model

const (
	// Барабаны
	Reels = 4
	// Количество символов в алфавите
	SymbolCount = 4
)

// Symbol Символ на барабане. Алфавит закрыт: ровно четыре значения.
type Symbol int

const (
	Black Symbol = iota
	White
	Green
	Yellow
)

var symbolNames = [SymbolCount]string{"BLACK", "WHITE", "GREEN", "YELLOW"}

func (s Symbol) String() string {
	if s < 0 || int(s) >= SymbolCount {
		return "UNKNOWN"
	}
	return symbolNames[s]
}

// Valid проверяет, что символ входит в алфавит
func (s Symbol) Valid() bool {
	return s >= 0 && int(s) < SymbolCount
}

// Outcome Результат одного рычага: четыре символа слева направо
type Outcome [Reels]Symbol

// Strings возвращает имена символов в порядке барабанов
func (o Outcome) Strings() []string {
	res := make([]string, Reels)
	for i, s := range o {
		res[i] = s.String()
	}
	return res
}
