package handler

import (
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/shopspring/decimal"

	"github.com/Autonomanetwork/arcadify-test/internal/dashboard"
	"github.com/Autonomanetwork/arcadify-test/internal/service"
)

func newDashboardApp(t *testing.T) *fiber.App {
	t.Helper()
	total, _ := new(big.Int).SetString("12500000000000000000000000", 10)
	data := &dashboard.Data{
		Treasury: dashboard.Treasury{
			TotalValue:    total,
			RiskFreeValue: big.NewInt(0),
			ValueDecimals: 18,
			Assets: []dashboard.Asset{
				{Symbol: "USDC", Amount: big.NewInt(5_000_000_000_000), Decimals: 6, UnitPrice: decimal.NewFromInt(1)},
			},
		},
		Staking: dashboard.Staking{
			TokenSymbol:    "ARCAD",
			TokenDecimals:  9,
			APYPercent:     "383025.8%",
			RebaseInterval: 8 * time.Hour,
			StakedBalance:  big.NewInt(0),
			TotalStaked:    big.NewInt(1_234_567_000_000_000),
		},
	}

	logger := discardLogger()
	h := NewDashboardHandler(logger, service.NewDashboardService(logger, data))

	app := fiber.New()
	app.Get("/treasury", h.Treasury())
	app.Get("/staking", h.Staking())
	return app
}

func TestDashboardHandler_Treasury(t *testing.T) {
	app := newDashboardApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/treasury", nil))
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}

	var view service.TreasuryView
	decodeBody(t, resp, &view)
	if view.TotalValue != "$12,500,000.00" {
		t.Fatalf("unexpected total value: %q", view.TotalValue)
	}
	if len(view.Assets) != 1 || view.Assets[0].Share != "40.0%" {
		t.Fatalf("unexpected assets: %+v", view.Assets)
	}
}

func TestDashboardHandler_Staking(t *testing.T) {
	app := newDashboardApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/staking", nil))
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}

	var view service.StakingView
	decodeBody(t, resp, &view)
	if view.TokenSymbol != "ARCAD" || view.TotalStaked != "1,234,567.00" {
		t.Fatalf("unexpected staking view: %+v", view)
	}
}
