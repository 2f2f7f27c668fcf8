package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fruit_machine/internal/config"

	"github.com/shopspring/decimal"
)

func newTestProvider(t *testing.T) *ServiceProvider {
	t.Helper()
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("LOG_DEVELOPMENT", "")
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := "machine:\n  price_per_game: \"0.50\"\n  initial_jackpot: \"4.00\"\n  seed: 1\n"
	if err := os.WriteFile(path, []byte(cfg), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return newServiceProvider(path)
}

func TestRouter_MachineEndpoints(t *testing.T) {
	r := newTestProvider(t).Router(context.Background())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/machine/check-data", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("check-data status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"jackpot":"4.00"`) {
		t.Errorf("unexpected body %s", w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/machine/deposit", strings.NewReader(`{"amount":"1.00"}`)))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"games_remaining":2`) {
		t.Fatalf("deposit status = %d body %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/machine/pull", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("pull status = %d body %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/machine/stats", nil))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"total_pulls":1`) {
		t.Errorf("stats status = %d body %s", w.Code, w.Body.String())
	}
}

func TestRouter_CORS(t *testing.T) {
	r := newTestProvider(t).Router(context.Background())

	req := httptest.NewRequest(http.MethodOptions, "/machine/pull", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
}

func TestServiceProvider_ReusesInstances(t *testing.T) {
	sp := newTestProvider(t)
	ctx := context.Background()

	if sp.Machine() != sp.Machine() {
		t.Error("machine must be created once")
	}
	if sp.MachineService(ctx) != sp.MachineService(ctx) {
		t.Error("service must be created once")
	}
	if sp.Router(ctx) != sp.Router(ctx) {
		t.Error("router must be created once")
	}
}

func TestServiceProvider_PanicsOnBadConfig(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	sp := newServiceProvider(filepath.Join(t.TempDir(), "missing.yaml"))

	defer func() {
		if recover() == nil {
			t.Error("expected panic for missing config")
		}
	}()
	sp.MachineCfg()
}

// Конфиг в обход валидации YAML
type zeroPriceConfig struct {
	config.MachineConfig
}

func (zeroPriceConfig) PricePerGame() decimal.Decimal {
	return decimal.Zero
}

func TestServiceProvider_PanicsOnZeroPrice(t *testing.T) {
	sp := newTestProvider(t)
	sp.machineCfg = zeroPriceConfig{sp.MachineCfg()}

	defer func() {
		if recover() == nil {
			t.Error("expected panic for zero price")
		}
	}()
	sp.Machine()
}
