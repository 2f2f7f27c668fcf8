package env

import (
	"errors"
	"fmt"
	"os"

	"fruit_machine/internal/config"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

const (
	configPathEnvName = "CONFIG_PATH"
	// Деньги в конфиге только с точностью до копейки
	moneyScale = 2
)

// Структура файла config.yaml. Деньги строками, чтобы не тащить float
type machineFile struct {
	Machine struct {
		PricePerGame   string `yaml:"price_per_game"`
		InitialJackpot string `yaml:"initial_jackpot"`
		Seed           int64  `yaml:"seed"`
	} `yaml:"machine"`
}

type machineConfig struct {
	pricePerGame   decimal.Decimal
	initialJackpot decimal.Decimal
	seed           int64
}

// ConfigPath Путь к yaml из окружения, иначе def
func ConfigPath(def string) string {
	if p := os.Getenv(configPathEnvName); len(p) != 0 {
		return p
	}
	return def
}

// NewMachineConfigFromYAML Читает настройки автомата из yaml
func NewMachineConfigFromYAML(path string) (config.MachineConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read machine config: %w", err)
	}
	return parseMachineConfig(raw)
}

func parseMachineConfig(raw []byte) (config.MachineConfig, error) {
	var f machineFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse machine config: %w", err)
	}

	if len(f.Machine.PricePerGame) == 0 {
		return nil, errors.New("price per game not found")
	}
	price, err := decimal.NewFromString(f.Machine.PricePerGame)
	if err != nil {
		return nil, fmt.Errorf("invalid price per game: %w", err)
	}
	if !price.IsPositive() {
		return nil, errors.New("price per game must be positive")
	}
	if !isCents(price) {
		return nil, errors.New("price per game must have at most two decimal places")
	}

	jackpot := decimal.Zero
	if len(f.Machine.InitialJackpot) != 0 {
		jackpot, err = decimal.NewFromString(f.Machine.InitialJackpot)
		if err != nil {
			return nil, fmt.Errorf("invalid initial jackpot: %w", err)
		}
	}
	if jackpot.IsNegative() {
		return nil, errors.New("initial jackpot must not be negative")
	}
	if !isCents(jackpot) {
		return nil, errors.New("initial jackpot must have at most two decimal places")
	}

	return &machineConfig{
		pricePerGame:   price,
		initialJackpot: jackpot,
		seed:           f.Machine.Seed,
	}, nil
}

// Нет долей копейки
func isCents(v decimal.Decimal) bool {
	return v.Equal(v.Truncate(moneyScale))
}

func (cfg *machineConfig) PricePerGame() decimal.Decimal {
	return cfg.pricePerGame
}

func (cfg *machineConfig) InitialJackpot() decimal.Decimal {
	return cfg.initialJackpot
}

func (cfg *machineConfig) Seed() int64 {
	return cfg.seed
}
