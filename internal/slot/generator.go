package slot

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"math/rand"

	"fruit_machine/internal/model"
)

// RandomSource Источник случайности: равномерное целое в [0, n).
// *rand.Rand подходит без обёрток.
type RandomSource interface {
	Intn(n int) int
}

// Generator Генератор символов для четырёх барабанов
type Generator struct {
	src RandomSource
}

// NewGenerator Создать генератор поверх источника случайности
func NewGenerator(src RandomSource) *Generator {
	return &Generator{src: src}
}

// Generate Крутит барабаны слева направо, каждый символ независимо
func (g *Generator) Generate() model.Outcome {
	var out model.Outcome
	for r := 0; r < model.Reels; r++ {
		out[r] = model.Symbol(g.src.Intn(model.SymbolCount))
	}
	return out
}

// Откуда читается сид, когда он не задан явно
var seedReader io.Reader = crand.Reader

// NewSource Источник для продакшена. seed == 0 — сид берём из crypto/rand
func NewSource(seed int64) (*rand.Rand, error) {
	if seed == 0 {
		if err := binary.Read(seedReader, binary.LittleEndian, &seed); err != nil {
			return nil, fmt.Errorf("read random seed: %w", err)
		}
	}
	return rand.New(rand.NewSource(seed)), nil
}
