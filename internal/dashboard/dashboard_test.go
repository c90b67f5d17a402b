package dashboard

import (
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"
)

const sampleData = `{
	"treasury": {
		"total_value": "12500000000000000000000000",
		"risk_free_value": "8200000000000000000000000",
		"value_decimals": 18,
		"backing_per_token": "$8.25",
		"pol_percent": "98.5%",
		"assets": [
			{"symbol": "USDC", "amount": "5000000000000", "decimals": 6, "unit_price": "1"},
			{"symbol": "wETH", "amount": "1000000000000000000000", "decimals": 18, "unit_price": "2000"}
		],
		"strategies": [
			{"name": "Stablecoin Yield", "allocation": "40%", "apy": "12%", "value": "$5M"}
		]
	},
	"staking": {
		"token_symbol": "ARCAD",
		"token_decimals": 9,
		"apy_percent": "383025.8%",
		"rebase_interval_seconds": 28800,
		"staked_balance": "0",
		"total_staked": "1234567000000000",
		"next_reward_amount": "0.5385",
		"next_reward_yield": "0.4578%",
		"roi_5day": "7.1234%",
		"current_index": "7.85",
		"tvl": "$12.5M",
		"risk_free_value": "$8.2M"
	}
}`

func writeDataFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dashboard.json")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	d, err := Load(writeDataFile(t, sampleData))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	want, _ := new(big.Int).SetString("12500000000000000000000000", 10)
	if d.Treasury.TotalValue.Cmp(want) != 0 {
		t.Fatalf("unexpected total value: %s", d.Treasury.TotalValue)
	}
	if len(d.Treasury.Assets) != 2 {
		t.Fatalf("expected 2 assets, got %d", len(d.Treasury.Assets))
	}
	if d.Treasury.Assets[1].Symbol != "wETH" || d.Treasury.Assets[1].Decimals != 18 {
		t.Fatalf("unexpected asset: %+v", d.Treasury.Assets[1])
	}
	if d.Treasury.Assets[1].UnitPrice.String() != "2000" {
		t.Fatalf("unexpected unit price: %s", d.Treasury.Assets[1].UnitPrice)
	}
	if len(d.Treasury.Strategies) != 1 || d.Treasury.Strategies[0].Name != "Stablecoin Yield" {
		t.Fatalf("unexpected strategies: %+v", d.Treasury.Strategies)
	}

	if d.Staking.RebaseInterval != 8*time.Hour {
		t.Fatalf("unexpected rebase interval: %s", d.Staking.RebaseInterval)
	}
	if d.Staking.TokenSymbol != "ARCAD" {
		t.Fatalf("unexpected staking symbol: %q", d.Staking.TokenSymbol)
	}
}

func TestLoad_Failures(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		contents string
	}{
		{"not_json", "pixels"},
		{"missing_sections", `{"treasury": {}}`},
		{"bad_unit_price", `{"treasury": {"assets": [{"symbol": "X", "amount": "1", "decimals": 6, "unit_price": "???"}]}, "staking": {}}`},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if _, err := Load(writeDataFile(t, tc.contents)); err == nil {
				t.Fatalf("expected error for %s", tc.name)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
