package app

import (
	"context"

	machineAPI "fruit_machine/internal/api/machine"
	"fruit_machine/internal/config"
	"fruit_machine/internal/config/env"
	"fruit_machine/internal/machine"
	"fruit_machine/internal/middleware"
	"fruit_machine/internal/repository"
	"fruit_machine/internal/repository/stats_repo"
	"fruit_machine/internal/service"
	machineServ "fruit_machine/internal/service/machine"
	"fruit_machine/internal/slot"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

type ServiceProvider struct {
	configPath string

	// Logger
	loggerCfg config.LoggerConfig
	logger    *zap.Logger

	// Machine bits
	machineCfg  config.MachineConfig
	generator   *slot.Generator
	machine     *machine.FruitMachine
	statsRepo   repository.StatsRepository
	machineServ service.MachineService
	machineHand *machineAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider(configPath string) *ServiceProvider {
	return &ServiceProvider{configPath: configPath}
}

func (sp *ServiceProvider) LoggerCfg() config.LoggerConfig {
	if sp.loggerCfg == nil {
		cfg, err := env.NewLoggerConfig()
		if err != nil {
			panic("failed to get logger config: " + err.Error())
		}
		sp.loggerCfg = cfg
	}
	return sp.loggerCfg
}

func (sp *ServiceProvider) Logger() *zap.Logger {
	if sp.logger == nil {
		zcfg := zap.NewProductionConfig()
		if sp.LoggerCfg().Development() {
			zcfg = zap.NewDevelopmentConfig()
		}
		level, err := zap.ParseAtomicLevel(sp.LoggerCfg().Level())
		if err != nil {
			panic("failed to parse log level: " + err.Error())
		}
		zcfg.Level = level

		l, err := zcfg.Build()
		if err != nil {
			panic("failed to build logger: " + err.Error())
		}
		sp.logger = l
	}
	return sp.logger
}

func (sp *ServiceProvider) MachineCfg() config.MachineConfig {
	if sp.machineCfg == nil {
		cfg, err := env.NewMachineConfigFromYAML(sp.configPath)
		if err != nil {
			panic("failed to get machine config: " + err.Error())
		}
		sp.machineCfg = cfg
	}
	return sp.machineCfg
}

func (sp *ServiceProvider) Generator() *slot.Generator {
	if sp.generator == nil {
		src, err := slot.NewSource(sp.MachineCfg().Seed())
		if err != nil {
			panic("failed to seed random source: " + err.Error())
		}
		sp.generator = slot.NewGenerator(src)
	}
	return sp.generator
}

func (sp *ServiceProvider) Machine() *machine.FruitMachine {
	if sp.machine == nil {
		cfg := sp.MachineCfg()
		m, err := machine.New(cfg.PricePerGame(), cfg.InitialJackpot(), sp.Generator())
		if err != nil {
			panic("failed to create machine: " + err.Error())
		}
		sp.machine = m
		sp.Logger().Info("machine created",
			zap.String("price_per_game", cfg.PricePerGame().StringFixed(2)),
			zap.String("initial_jackpot", cfg.InitialJackpot().StringFixed(2)),
		)
	}
	return sp.machine
}

func (sp *ServiceProvider) StatsRepository() repository.StatsRepository {
	if sp.statsRepo == nil {
		sp.statsRepo = stats_repo.NewStatsRepository(0)
	}
	return sp.statsRepo
}

func (sp *ServiceProvider) MachineService(ctx context.Context) service.MachineService {
	if sp.machineServ == nil {
		sp.machineServ = machineServ.NewMachineService(sp.Machine(), sp.StatsRepository(), sp.Logger())
	}
	return sp.machineServ
}

func (sp *ServiceProvider) MachineHandler(ctx context.Context) *machineAPI.Handler {
	if sp.machineHand == nil {
		sp.machineHand = machineAPI.NewHandler(machineAPI.HandlerDeps{
			Serv: sp.MachineService(ctx),
			Log:  sp.Logger(),
		})
	}
	return sp.machineHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		r.Use(chiMiddleware.RequestID)
		r.Use(middleware.RequestLogger(sp.Logger()))
		r.Use(chiMiddleware.Recoverer)

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		// Machine endpoints
		machineHandler := sp.MachineHandler(ctx)
		r.Route("/machine", func(rr chi.Router) {
			rr.Post("/deposit", machineHandler.Deposit)
			rr.Post("/pull", machineHandler.Pull)
			rr.Get("/check-data", machineHandler.CheckData)
			rr.Get("/stats", machineHandler.Stats)
		})

		sp.router = r
	}

	return sp.router
}
