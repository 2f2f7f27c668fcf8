package config

import (
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type MachineConfig interface {
	PricePerGame() decimal.Decimal
	InitialJackpot() decimal.Decimal
	// 0 — сид из crypto/rand
	Seed() int64
}

type HTTPConfig interface {
	Address() string
}

type LoggerConfig interface {
	Level() string
	Development() bool
}
