package v3

// ModuleName is the genesis key of the supply state.
const ModuleName = "supply"

// GenesisState is the supply genesis state. The total supply is recomputed
// from the account balances on InitGenesis, so it starts empty.
type GenesisState struct {
	Supply []any `json:"supply"`
}

// DefaultGenesisState returns an empty supply state.
func DefaultGenesisState() GenesisState {
	return GenesisState{Supply: []any{}}
}
