package pool

import (
	"fmt"
	"math/big"
	"os"

	"github.com/tidwall/gjson"
)

// DefaultFeeBps is the pool fee assumed when a pool entry does not carry its
// own, matching the common 0.30% constant-product fee.
const DefaultFeeBps = 30

// Spec describes one configured pool. Base/Quote are token IDs; reserves are
// base units and only meaningful for the static provider. Address is the
// on-chain pair contract, only meaningful for the chain provider.
type Spec struct {
	Base         string
	Quote        string
	ReserveBase  *big.Int
	ReserveQuote *big.Int
	FeeBps       int64
	Address      string
}

// LoadSpecs reads pool definitions from a JSON file of the form
//
//	{"pools": [{"base": "...", "quote": "...", "reserve_base": "1000000",
//	            "reserve_quote": "500000", "fee_bps": 30, "address": "0x..."}]}
func LoadSpecs(path string) ([]Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pools file: %w", err)
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("pools file %s is not valid JSON", path)
	}
	entries := gjson.GetBytes(data, "pools")
	if !entries.IsArray() {
		return nil, fmt.Errorf("pools file %s: missing pools array", path)
	}

	var specs []Spec
	var loadErr error
	entries.ForEach(func(_, entry gjson.Result) bool {
		s := Spec{
			Base:    entry.Get("base").String(),
			Quote:   entry.Get("quote").String(),
			FeeBps:  DefaultFeeBps,
			Address: entry.Get("address").String(),
		}
		if fee := entry.Get("fee_bps"); fee.Exists() {
			s.FeeBps = fee.Int()
		}
		if s.Base == "" || s.Quote == "" || s.Base == s.Quote {
			loadErr = fmt.Errorf("malformed pool entry: %s", entry.Raw)
			return false
		}
		s.ReserveBase, s.ReserveQuote = parseReserve(entry, "reserve_base"), parseReserve(entry, "reserve_quote")
		specs = append(specs, s)
		return true
	})
	if loadErr != nil {
		return nil, loadErr
	}
	if len(specs) == 0 {
		return nil, fmt.Errorf("pools file %s: empty pool set", path)
	}
	return specs, nil
}

func parseReserve(entry gjson.Result, key string) *big.Int {
	v, ok := new(big.Int).SetString(entry.Get(key).String(), 10)
	if !ok || v.Sign() < 0 {
		return new(big.Int)
	}
	return v
}
