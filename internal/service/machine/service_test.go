package machine

import (
	"context"
	"errors"
	"sync"
	"testing"

	fm "fruit_machine/internal/machine"
	"fruit_machine/internal/model"
	"fruit_machine/internal/repository/stats_repo"
	"fruit_machine/internal/slot"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newService(t *testing.T, price, jackpot string, sequence ...int) (*serv, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.InfoLevel)
	m, err := fm.New(dec(price), dec(jackpot), slot.NewGenerator(slot.NewSequence(sequence...)))
	if err != nil {
		t.Fatalf("new machine: %v", err)
	}
	s := NewMachineService(m, stats_repo.NewStatsRepository(10), zap.New(core))
	return s.(*serv), logs
}

func TestDeposit(t *testing.T) {
	tests := []struct {
		name    string
		amount  string
		wantErr bool
	}{
		{"whole", "10", false},
		{"cents", "0.99", false},
		{"trailing zeros", "1.500", false},
		{"zero", "0", false},
		{"negative", "-1.00", true},
		{"fraction of a cent", "0.001", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newService(t, "1.00", "0")
			data, err := s.Deposit(context.Background(), model.Deposit{Amount: dec(tt.amount)})
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAmount) {
					t.Fatalf("expected ErrInvalidAmount, got %v", err)
				}
				if s.fm.PlayerAvailableBalance().Sign() != 0 {
					t.Error("rejected deposit must not change balance")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !data.PlayerBalance.Equal(dec(tt.amount)) {
				t.Errorf("balance = %s, want %s", data.PlayerBalance, tt.amount)
			}
		})
	}
}

func TestPull_InsufficientCredit(t *testing.T) {
	s, logs := newService(t, "1.00", "0")

	res, data, err := s.Pull(context.Background())

	if !errors.Is(err, fm.ErrInsufficientCredit) {
		t.Fatalf("expected ErrInsufficientCredit, got %v", err)
	}
	if res != nil || data != nil {
		t.Error("expected nil result on failure")
	}
	if logs.FilterMessage("pull rejected").Len() != 1 {
		t.Error("expected a warn entry for the rejected pull")
	}
	if s.statsRepo.Stats().TotalPulls != 0 {
		t.Error("rejected pull must not be recorded")
	}
}

func TestPull_RecordsAndLogs(t *testing.T) {
	s, logs := newService(t, "1.00", "1.00", 0, 3, 3, 2)
	ctx := context.Background()
	if _, err := s.Deposit(ctx, model.Deposit{Amount: dec("1")}); err != nil {
		t.Fatalf("deposit: %v", err)
	}

	res, data, err := s.Pull(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := uuid.Parse(res.RoundID); err != nil {
		t.Errorf("round id is not a uuid: %q", res.RoundID)
	}
	if res.Kind != model.WinAdjacent || res.FreeGamesAwarded != 4 {
		t.Errorf("unexpected result %+v", res)
	}
	if data.Jackpot.StringFixed(2) != "0.00" || data.PlayerBalance.StringFixed(2) != "2.00" || data.GamesRemaining != 6 {
		t.Errorf("unexpected data %+v", data)
	}
	want := []model.Symbol{model.Black, model.Yellow, model.Yellow, model.Green}
	if diff := cmp.Diff(want, data.Slots); diff != "" {
		t.Errorf("slots mismatch (-want +got):\n%s", diff)
	}

	stats, _ := s.Stats(ctx)
	if stats.TotalPulls != 1 || stats.FreeGamesAwarded != 4 || stats.TotalPaid.StringFixed(2) != "1.00" {
		t.Errorf("unexpected stats %+v", stats)
	}
	if stats.TotalDeposited.StringFixed(2) != "1.00" {
		t.Errorf("deposited = %s", stats.TotalDeposited)
	}

	entries := logs.FilterMessage("pull").All()
	if len(entries) != 1 {
		t.Fatalf("expected one pull log entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["kind"] != "adjacent" || fields["round_id"] != res.RoundID {
		t.Errorf("unexpected log fields %v", fields)
	}
}

func TestCheckData_BeforeAnyPull(t *testing.T) {
	s, _ := newService(t, "0.50", "3.10")

	data, err := s.CheckData(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data.Slots != nil {
		t.Errorf("slots must be empty, got %v", data.Slots)
	}
	if data.Jackpot.StringFixed(2) != "3.10" || data.PricePerGame.StringFixed(2) != "0.50" {
		t.Errorf("unexpected data %+v", data)
	}
}

func TestPull_SerialisesConcurrentCallers(t *testing.T) {
	const pulls = 200
	seq := make([]int, 0, pulls*4)
	for i := 0; i < pulls; i++ {
		seq = append(seq, 3, 1, 2, 1) // проигрыш
	}
	s, _ := newService(t, "0.10", "0", seq...)
	ctx := context.Background()
	if _, err := s.Deposit(ctx, model.Deposit{Amount: dec("20.00")}); err != nil {
		t.Fatalf("deposit: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < pulls/10; j++ {
				if _, _, err := s.Pull(ctx); err != nil {
					t.Errorf("unexpected error: %v", err)
				}
			}
		}()
	}
	wg.Wait()

	data, _ := s.CheckData(ctx)
	if data.Jackpot.StringFixed(2) != "20.00" || !data.PlayerBalance.IsZero() {
		t.Errorf("jackpot=%s balance=%s", data.Jackpot, data.PlayerBalance)
	}
}
