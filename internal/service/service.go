package service

import (
	"context"

	"fruit_machine/internal/model"
)

type MachineService interface {
	Deposit(ctx context.Context, req model.Deposit) (*model.MachineData, error)
	Pull(ctx context.Context) (*model.PullResult, *model.MachineData, error)
	CheckData(ctx context.Context) (*model.MachineData, error)
	Stats(ctx context.Context) (*model.Stats, error)
}
