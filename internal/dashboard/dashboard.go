// Package dashboard loads the read-only treasury and staking figures the
// dashboard panels display. The numbers come from a data file rather than
// code so deployments can swap them without a rebuild.
package dashboard

import (
	"fmt"
	"math/big"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
)

// Asset is one treasury holding. Amount is base units scaled by Decimals;
// UnitPrice is dollars per whole token.
type Asset struct {
	Symbol    string
	Amount    *big.Int
	Decimals  int32
	UnitPrice decimal.Decimal
}

// Strategy is one treasury allocation line, display-only.
type Strategy struct {
	Name       string
	Allocation string
	APY        string
	Value      string
}

// Treasury holds the treasury overview figures. TotalValue and RiskFreeValue
// are base units scaled by ValueDecimals.
type Treasury struct {
	TotalValue      *big.Int
	RiskFreeValue   *big.Int
	ValueDecimals   int32
	BackingPerToken string
	POLPercent      string
	Assets          []Asset
	Strategies      []Strategy
}

// Staking holds the staking panel figures. TotalStaked is base units of the
// protocol token.
type Staking struct {
	TokenSymbol      string
	TokenDecimals    int32
	APYPercent       string
	RebaseInterval   time.Duration
	StakedBalance    *big.Int
	TotalStaked      *big.Int
	NextRewardAmount string
	NextRewardYield  string
	ROIFiveDay       string
	CurrentIndex     string
	TVL              string
	RiskFreeValue    string
}

// Data is the full dashboard payload.
type Data struct {
	Treasury Treasury
	Staking  Staking
}

// Load reads the dashboard data file.
func Load(path string) (*Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dashboard file: %w", err)
	}
	if !gjson.ValidBytes(raw) {
		return nil, fmt.Errorf("dashboard file %s is not valid JSON", path)
	}
	root := gjson.ParseBytes(raw)

	tre := root.Get("treasury")
	sta := root.Get("staking")
	if !tre.Exists() || !sta.Exists() {
		return nil, fmt.Errorf("dashboard file %s: missing treasury or staking section", path)
	}

	d := &Data{
		Treasury: Treasury{
			TotalValue:      bigField(tre, "total_value"),
			RiskFreeValue:   bigField(tre, "risk_free_value"),
			ValueDecimals:   int32(tre.Get("value_decimals").Int()),
			BackingPerToken: tre.Get("backing_per_token").String(),
			POLPercent:      tre.Get("pol_percent").String(),
		},
		Staking: Staking{
			TokenSymbol:      sta.Get("token_symbol").String(),
			TokenDecimals:    int32(sta.Get("token_decimals").Int()),
			APYPercent:       sta.Get("apy_percent").String(),
			RebaseInterval:   time.Duration(sta.Get("rebase_interval_seconds").Int()) * time.Second,
			StakedBalance:    bigField(sta, "staked_balance"),
			TotalStaked:      bigField(sta, "total_staked"),
			NextRewardAmount: sta.Get("next_reward_amount").String(),
			NextRewardYield:  sta.Get("next_reward_yield").String(),
			ROIFiveDay:       sta.Get("roi_5day").String(),
			CurrentIndex:     sta.Get("current_index").String(),
			TVL:              sta.Get("tvl").String(),
			RiskFreeValue:    sta.Get("risk_free_value").String(),
		},
	}

	var loadErr error
	tre.Get("assets").ForEach(func(_, entry gjson.Result) bool {
		price, err := decimal.NewFromString(entry.Get("unit_price").String())
		if err != nil {
			loadErr = fmt.Errorf("asset %s: bad unit_price", entry.Get("symbol").String())
			return false
		}
		d.Treasury.Assets = append(d.Treasury.Assets, Asset{
			Symbol:    entry.Get("symbol").String(),
			Amount:    bigField(entry, "amount"),
			Decimals:  int32(entry.Get("decimals").Int()),
			UnitPrice: price,
		})
		return true
	})
	if loadErr != nil {
		return nil, loadErr
	}

	tre.Get("strategies").ForEach(func(_, entry gjson.Result) bool {
		d.Treasury.Strategies = append(d.Treasury.Strategies, Strategy{
			Name:       entry.Get("name").String(),
			Allocation: entry.Get("allocation").String(),
			APY:        entry.Get("apy").String(),
			Value:      entry.Get("value").String(),
		})
		return true
	})

	return d, nil
}

func bigField(entry gjson.Result, key string) *big.Int {
	v, ok := new(big.Int).SetString(entry.Get(key).String(), 10)
	if !ok || v.Sign() < 0 {
		return new(big.Int)
	}
	return v
}
