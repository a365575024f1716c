package v3

import (
	sdkmath "cosmossdk.io/math"
)

// ModuleName is the genesis key of the market state.
const ModuleName = "market"

// DefaultPoolUpdateInterval is one week of blocks at six seconds per block.
const DefaultPoolUpdateInterval = "100800"

// GenesisState is the market genesis state of columbus-3. The legacy state is
// not carried over; both pools restart from zero.
type GenesisState struct {
	BasePool         sdkmath.LegacyDec `json:"base_pool"`
	TerraPool        sdkmath.LegacyDec `json:"terra_pool"`
	LastUpdateHeight string            `json:"last_update_height"`
	Params           Params            `json:"params"`
}

// Params are the market parameters.
type Params struct {
	PoolUpdateInterval       string            `json:"pool_update_interval"`
	DailyTerraLiquidityRatio sdkmath.LegacyDec `json:"daily_terra_liquidity_ratio"`
	MinSpread                sdkmath.LegacyDec `json:"min_spread"`
	TobinTax                 sdkmath.LegacyDec `json:"tobin_tax"`
}

// DefaultParams returns the market parameters of columbus-3.
func DefaultParams() Params {
	return Params{
		PoolUpdateInterval:       DefaultPoolUpdateInterval,
		DailyTerraLiquidityRatio: sdkmath.LegacyNewDecWithPrec(1, 2),
		MinSpread:                sdkmath.LegacyNewDecWithPrec(2, 2),
		TobinTax:                 sdkmath.LegacyNewDecWithPrec(3, 3),
	}
}

// DefaultGenesisState returns the market state the network starts with.
func DefaultGenesisState() GenesisState {
	return GenesisState{
		BasePool:         sdkmath.LegacyZeroDec(),
		TerraPool:        sdkmath.LegacyZeroDec(),
		LastUpdateHeight: "0",
		Params:           DefaultParams(),
	}
}
