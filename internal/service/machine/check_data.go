package machine

import (
	"context"

	"fruit_machine/internal/model"
)

// CheckData Текущее состояние автомата
func (s *serv) CheckData(ctx context.Context) (*model.MachineData, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	return s.snapshot(), nil
}

// Stats Статистика с момента запуска
func (s *serv) Stats(ctx context.Context) (*model.Stats, error) {
	stats := s.statsRepo.Stats()
	return &stats, nil
}
