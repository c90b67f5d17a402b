// Package token defines the tradable-token model and the registry that
// supplies it to the rest of the API.
package token

// Token describes one tradable asset. ID is the opaque chain identifier
// (a mint or contract address) and is the only field with identity
// semantics; symbols are display-only and not guaranteed unique.
type Token struct {
	ID       string `json:"id"`
	Symbol   string `json:"symbol"`
	Decimals int32  `json:"decimals"`
}

// Registry supplies the token catalog. Implementations are read-only; tokens
// live for the process lifetime once loaded.
type Registry interface {
	List() []Token
	ByID(id string) (Token, bool)
}
