package v3

import (
	"encoding/json"
	"fmt"
	"math"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"

	"github.com/terra-project/columbus-migrate/types"
)

// BondStatus values of the columbus-2 staking module.
const (
	Unbonded  int64 = 0
	Unbonding int64 = 1
	Bonded    int64 = 2
)

// PoolTotals holds the token amounts owned by the two staking pool accounts.
type PoolTotals struct {
	Bonded    sdkmath.Int
	NotBonded sdkmath.Int
}

// DerivePoolTotals sums the tokens of bonded validators into the bonded pool
// and those of unbonded and unbonding validators, plus every unbonding
// delegation entry, into the not bonded pool.
func DerivePoolTotals(staking types.Object) (PoolTotals, error) {
	totals := PoolTotals{
		Bonded:    sdkmath.ZeroInt(),
		NotBonded: sdkmath.ZeroInt(),
	}

	validators, err := staking.ArrayAt("validators")
	if err != nil {
		return PoolTotals{}, err
	}
	for i, v := range validators {
		path := fmt.Sprintf("validators.%d", i)
		val, err := types.AsObject(v, path)
		if err != nil {
			return PoolTotals{}, err
		}

		status, err := bondStatus(val, path)
		if err != nil {
			return PoolTotals{}, err
		}
		tokens, err := val.IntAt("tokens")
		if err != nil {
			return PoolTotals{}, errorsmod.Wrap(err, path)
		}

		switch status {
		case Bonded:
			totals.Bonded = totals.Bonded.Add(tokens)
		case Unbonded, Unbonding:
			totals.NotBonded = totals.NotBonded.Add(tokens)
		default:
			return PoolTotals{}, types.ErrInvalidStatus.Wrapf("%s: status %d", path, status)
		}
	}

	ubds, err := staking.ArrayAt("unbonding_delegations")
	if err != nil {
		return PoolTotals{}, err
	}
	for i, u := range ubds {
		ubd, err := types.AsObject(u, fmt.Sprintf("unbonding_delegations.%d", i))
		if err != nil {
			return PoolTotals{}, err
		}
		entries, err := ubd.ArrayAt("entries")
		if err != nil {
			return PoolTotals{}, errorsmod.Wrapf(err, "unbonding_delegations.%d", i)
		}
		for j, e := range entries {
			entry, err := types.AsObject(e, fmt.Sprintf("unbonding_delegations.%d.entries.%d", i, j))
			if err != nil {
				return PoolTotals{}, err
			}
			balance, err := entry.IntAt("balance")
			if err != nil {
				return PoolTotals{}, errorsmod.Wrapf(err, "unbonding_delegations.%d.entries.%d", i, j)
			}
			totals.NotBonded = totals.NotBonded.Add(balance)
		}
	}

	return totals, nil
}

// bondStatus reads the numeric status of a validator. Anything that is not a
// JSON number with a whole value is rejected as an invalid status.
func bondStatus(val types.Object, path string) (int64, error) {
	v, err := val.ValueAt("status")
	if err != nil {
		return 0, errorsmod.Wrap(err, path)
	}
	n, ok := v.(json.Number)
	if !ok {
		return 0, types.ErrInvalidStatus.Wrapf("%s: status %v", path, v)
	}
	if status, err := n.Int64(); err == nil {
		return status, nil
	}
	// whole values written as 2.0 or 2e0 compare equal to their integer
	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, types.ErrInvalidStatus.Wrapf("%s: status %s", path, n)
	}
	return int64(f), nil
}

// MigrateValidators nests the flat commission rates of every validator under
// commission_rates, next to the existing update_time.
func MigrateValidators(staking types.Object) error {
	validators, err := staking.ArrayAt("validators")
	if err != nil {
		return err
	}

	for i, v := range validators {
		path := fmt.Sprintf("validators.%d", i)
		val, err := types.AsObject(v, path)
		if err != nil {
			return err
		}
		commission, err := val.ObjectAt("commission")
		if err != nil {
			return errorsmod.Wrap(err, path)
		}

		rates := make(types.Object, 3)
		for _, key := range []string{"rate", "max_rate", "max_change_rate"} {
			rate, err := commission.ValueAt(key)
			if err != nil {
				return errorsmod.Wrapf(err, "%s.commission", path)
			}
			rates[key] = rate
		}
		updateTime, err := commission.ValueAt("update_time")
		if err != nil {
			return errorsmod.Wrapf(err, "%s.commission", path)
		}

		val["commission"] = types.Object{
			"commission_rates": rates,
			"update_time":      updateTime,
		}
	}
	return nil
}
