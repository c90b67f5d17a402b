package service

import (
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Autonomanetwork/arcadify-test/internal/dashboard"
	"github.com/Autonomanetwork/arcadify-test/pkg/display"
)

// DashboardService turns the raw treasury and staking figures into the
// formatted views the panels render.
type DashboardService struct {
	BaseService
	data *dashboard.Data
	now  func() time.Time
}

// NewDashboardService constructs a DashboardService over loaded data.
func NewDashboardService(logger *slog.Logger, data *dashboard.Data) *DashboardService {
	return &DashboardService{
		BaseService: BaseService{logger: logger},
		data:        data,
		now:         time.Now,
	}
}

// TreasuryAssetView is one formatted treasury holding.
type TreasuryAssetView struct {
	Symbol string `json:"symbol"`
	Amount string `json:"amount"`
	Value  string `json:"value"`
	Share  string `json:"share"`
}

// TreasuryStrategyView is one formatted allocation line.
type TreasuryStrategyView struct {
	Name       string `json:"name"`
	Allocation string `json:"allocation"`
	APY        string `json:"apy"`
	Value      string `json:"value"`
}

// TreasuryView is the treasury overview payload.
type TreasuryView struct {
	TotalValue      string                 `json:"total_value"`
	RiskFreeValue   string                 `json:"risk_free_value"`
	BackingPerToken string                 `json:"backing_per_token"`
	POLPercent      string                 `json:"pol_percent"`
	Assets          []TreasuryAssetView    `json:"assets"`
	Strategies      []TreasuryStrategyView `json:"strategies"`
}

// StakingView is the staking panel payload.
type StakingView struct {
	TokenSymbol      string `json:"token_symbol"`
	APY              string `json:"apy"`
	NextRebase       string `json:"next_rebase"`
	StakedBalance    string `json:"staked_balance"`
	TotalStaked      string `json:"total_staked"`
	NextRewardAmount string `json:"next_reward_amount"`
	NextRewardYield  string `json:"next_reward_yield"`
	ROIFiveDay       string `json:"roi_5day"`
	CurrentIndex     string `json:"current_index"`
	TVL              string `json:"tvl"`
	RiskFreeValue    string `json:"risk_free_value"`
}

// Treasury builds the treasury overview, valuing each asset at its configured
// unit price and expressing it as a share of the total.
func (s *DashboardService) Treasury() TreasuryView {
	t := s.data.Treasury
	one := decimal.NewFromInt(1)
	totalDec := decimal.NewFromBigInt(t.TotalValue, -t.ValueDecimals)

	view := TreasuryView{
		TotalValue:      "$" + display.Currency(t.TotalValue, t.ValueDecimals, one),
		RiskFreeValue:   "$" + display.Currency(t.RiskFreeValue, t.ValueDecimals, one),
		BackingPerToken: t.BackingPerToken,
		POLPercent:      t.POLPercent,
	}

	for _, a := range t.Assets {
		assetValue := decimal.NewFromBigInt(a.Amount, -a.Decimals).Mul(a.UnitPrice)
		view.Assets = append(view.Assets, TreasuryAssetView{
			Symbol: a.Symbol,
			Amount: display.Currency(a.Amount, a.Decimals, one),
			Value:  "$" + display.Currency(a.Amount, a.Decimals, a.UnitPrice),
			Share:  display.PercentOfTotal(assetValue, totalDec),
		})
	}

	for _, st := range t.Strategies {
		view.Strategies = append(view.Strategies, TreasuryStrategyView{
			Name:       st.Name,
			Allocation: st.Allocation,
			APY:        st.APY,
			Value:      st.Value,
		})
	}

	return view
}

// Staking builds the staking panel, including the countdown to the next
// rebase boundary.
func (s *DashboardService) Staking() StakingView {
	st := s.data.Staking

	next := st.RebaseInterval
	if st.RebaseInterval > 0 {
		elapsed := time.Duration(s.now().Unix()%int64(st.RebaseInterval.Seconds())) * time.Second
		next = st.RebaseInterval - elapsed
	}

	return StakingView{
		TokenSymbol:      st.TokenSymbol,
		APY:              st.APYPercent,
		NextRebase:       display.HoursMinutes(next),
		StakedBalance:    display.Amount(st.StakedBalance, st.TokenDecimals),
		TotalStaked:      display.Currency(st.TotalStaked, st.TokenDecimals, decimal.NewFromInt(1)),
		NextRewardAmount: st.NextRewardAmount,
		NextRewardYield:  st.NextRewardYield,
		ROIFiveDay:       st.ROIFiveDay,
		CurrentIndex:     st.CurrentIndex,
		TVL:              st.TVL,
		RiskFreeValue:    st.RiskFreeValue,
	}
}
