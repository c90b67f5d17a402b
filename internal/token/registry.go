package token

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"
)

// FileRegistry is a Registry loaded once from a JSON file of the form
//
//	{"tokens": [{"id": "...", "symbol": "ARCAD", "decimals": 9}, ...]}
//
// Order in the file is preserved by List.
type FileRegistry struct {
	tokens []Token
	byID   map[string]Token
}

// LoadFile reads and validates the token catalog at path.
func LoadFile(path string) (*FileRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRegistryUnavailable, err)
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: %s is not valid JSON", ErrRegistryUnavailable, path)
	}

	entries := gjson.GetBytes(data, "tokens")
	if !entries.IsArray() {
		return nil, fmt.Errorf("%w: missing tokens array", ErrRegistryUnavailable)
	}

	r := &FileRegistry{byID: make(map[string]Token)}
	var loadErr error
	entries.ForEach(func(_, entry gjson.Result) bool {
		tok := Token{
			ID:       entry.Get("id").String(),
			Symbol:   entry.Get("symbol").String(),
			Decimals: int32(entry.Get("decimals").Int()),
		}
		if tok.ID == "" || tok.Symbol == "" || tok.Decimals < 0 {
			loadErr = fmt.Errorf("%w: malformed token entry %s", ErrRegistryUnavailable, entry.Raw)
			return false
		}
		if _, dup := r.byID[tok.ID]; dup {
			loadErr = fmt.Errorf("%w: duplicate token id %s", ErrRegistryUnavailable, tok.ID)
			return false
		}
		r.tokens = append(r.tokens, tok)
		r.byID[tok.ID] = tok
		return true
	})
	if loadErr != nil {
		return nil, loadErr
	}
	if len(r.tokens) == 0 {
		return nil, fmt.Errorf("%w: empty token catalog", ErrRegistryUnavailable)
	}
	return r, nil
}

// List returns the catalog in file order.
func (r *FileRegistry) List() []Token {
	out := make([]Token, len(r.tokens))
	copy(out, r.tokens)
	return out
}

// ByID looks a token up by its identifier.
func (r *FileRegistry) ByID(id string) (Token, bool) {
	tok, ok := r.byID[id]
	return tok, ok
}
