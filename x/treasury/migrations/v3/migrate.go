package v3

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/terra-project/columbus-migrate/types"
)

// ModuleName is the genesis key of the treasury state.
const ModuleName = "treasury"

// GenesisState is the treasury genesis state of columbus-3.
type GenesisState struct {
	Params             any          `json:"params"`
	TaxRate            any          `json:"tax_rate"`
	RewardWeight       any          `json:"reward_weight"`
	TaxCap             types.Object `json:"tax_cap"`
	TaxProceeds        []any        `json:"tax_proceeds"`
	HistoricalIssuance []any        `json:"historical_issuance"`
}

// Migrate carries the params, tax rate and reward weight over and resets the
// tax caps and the per-epoch histories.
func Migrate(treasury types.Object) (GenesisState, error) {
	carried := make([]any, 3)
	for i, key := range []string{"params", "tax_rate", "reward_weight"} {
		v, err := treasury.ValueAt(key)
		if err != nil {
			return GenesisState{}, errorsmod.Wrap(err, ModuleName)
		}
		carried[i] = v
	}

	return GenesisState{
		Params:             carried[0],
		TaxRate:            carried[1],
		RewardWeight:       carried[2],
		TaxCap:             types.Object{},
		TaxProceeds:        []any{},
		HistoricalIssuance: []any{},
	}, nil
}
