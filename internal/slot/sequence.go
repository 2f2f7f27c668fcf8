package slot

import "fmt"

// Sequence Детерминированный источник: отдаёт заранее заданные индексы по порядку.
// Используется в тестах вместо настоящего генератора.
type Sequence struct {
	values []int
	pos    int
}

func NewSequence(values ...int) *Sequence {
	return &Sequence{values: values}
}

// Intn возвращает следующий индекс. Паника, если последовательность закончилась
// или индекс не попадает в [0, n)
func (s *Sequence) Intn(n int) int {
	if s.pos >= len(s.values) {
		panic("slot: scripted sequence exhausted")
	}
	v := s.values[s.pos]
	if v < 0 || v >= n {
		panic(fmt.Sprintf("slot: scripted value %d out of range [0, %d)", v, n))
	}
	s.pos++
	return v
}

// Remaining Сколько значений ещё не выдано
func (s *Sequence) Remaining() int {
	return len(s.values) - s.pos
}
