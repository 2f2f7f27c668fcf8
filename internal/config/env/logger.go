package env

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"fruit_machine/internal/config"
)

const (
	logLevelEnvName       = "LOG_LEVEL"
	logDevelopmentEnvName = "LOG_DEVELOPMENT"
	defaultLogLevel       = "info"
)

type loggerConfig struct {
	level       string
	development bool
}

func NewLoggerConfig() (config.LoggerConfig, error) {
	level := strings.ToLower(os.Getenv(logLevelEnvName))
	switch level {
	case "":
		level = defaultLogLevel
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("unknown log level %q", level)
	}

	var development bool
	if raw := os.Getenv(logDevelopmentEnvName); len(raw) != 0 {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid log development flag: %w", err)
		}
		development = parsed
	}

	return &loggerConfig{
		level:       level,
		development: development,
	}, nil
}

func (cfg *loggerConfig) Level() string {
	return cfg.level
}

func (cfg *loggerConfig) Development() bool {
	return cfg.development
}
