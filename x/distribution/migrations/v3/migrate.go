package v3

import (
	"fmt"
	"math"
	"math/big"
	"strconv"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/terra-project/columbus-migrate/types"
)

const (
	// LegacyModuleName is the columbus-2 genesis key of the distribution state.
	LegacyModuleName = "distr"

	// ModuleName is the columbus-3 genesis key of the distribution state.
	ModuleName = "distribution"
)

// CommunityPoolCoins converts the decimal community pool of the fee pool into
// integer coins held by the distribution module account. Amounts go through a
// float64 and are truncated towards zero, so they lose precision past 2^53.
// The genesis is assumed to be exported at zero height with no outstanding
// rewards, leaving only the community pool.
func CommunityPoolCoins(distr types.Object) (sdk.Coins, error) {
	pool, err := distr.ArrayAt("fee_pool", "community_pool")
	if err != nil {
		return nil, errorsmod.Wrap(err, LegacyModuleName)
	}

	coins := make(sdk.Coins, 0, len(pool))
	for i, c := range pool {
		path := fmt.Sprintf("%s.fee_pool.community_pool.%d", LegacyModuleName, i)
		coin, err := types.AsObject(c, path)
		if err != nil {
			return nil, err
		}
		denom, err := coin.StringAt("denom")
		if err != nil {
			return nil, errorsmod.Wrap(err, path)
		}
		amount, err := coin.StringAt("amount")
		if err != nil {
			return nil, errorsmod.Wrap(err, path)
		}

		amt, err := TruncateDecimalAmount(amount)
		if err != nil {
			return nil, errorsmod.Wrap(err, path)
		}
		coins = append(coins, sdk.Coin{Denom: denom, Amount: amt})
	}
	return coins, nil
}

// TruncateDecimalAmount parses s as a float64 and drops its fractional part.
func TruncateDecimalAmount(s string) (sdkmath.Int, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return sdkmath.Int{}, types.ErrInvalidAmount.Wrapf("%q", s)
	}

	i, _ := big.NewFloat(f).Int(nil)
	if i.BitLen() > sdkmath.MaxBitLen {
		return sdkmath.Int{}, types.ErrInvalidAmount.Wrapf("%q out of range", s)
	}
	return sdkmath.NewIntFromBigInt(i), nil
}

// Migrate moves the distribution state from its legacy key and hoists the
// period of every validator slash event to the top of the record.
func Migrate(appState types.Object) error {
	distr, err := appState.ObjectAt(LegacyModuleName)
	if err != nil {
		return err
	}

	events, err := distr.ArrayAt("validator_slash_events")
	if err != nil {
		return errorsmod.Wrap(err, LegacyModuleName)
	}
	for i, e := range events {
		path := fmt.Sprintf("%s.validator_slash_events.%d", ModuleName, i)
		event, err := types.AsObject(e, path)
		if err != nil {
			return err
		}
		period, err := event.ValueAt("validator_slash_event", "validator_period")
		if err != nil {
			return errorsmod.Wrap(err, path)
		}
		event["period"] = period
	}

	appState[ModuleName] = distr
	delete(appState, LegacyModuleName)
	return nil
}
