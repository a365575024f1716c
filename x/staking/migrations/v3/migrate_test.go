package v3_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/terra-project/columbus-migrate/types"
	v3 "github.com/terra-project/columbus-migrate/x/staking/migrations/v3"

	sdkmath "cosmossdk.io/math"
)

func validator(status any, tokens string) map[string]any {
	return map[string]any{
		"operator_address": "terravaloper1",
		"status":           status,
		"tokens":           tokens,
		"commission": map[string]any{
			"rate":            "0.100000000000000000",
			"max_rate":        "0.200000000000000000",
			"max_change_rate": "0.010000000000000000",
			"update_time":     "2019-04-24T06:00:00Z",
		},
	}
}

func ubd(balances ...string) map[string]any {
	entries := make([]any, 0, len(balances))
	for _, b := range balances {
		entries = append(entries, map[string]any{"balance": b, "initial_balance": b})
	}
	return map[string]any{"delegator_address": "terra1", "entries": entries}
}

func staking(validators []any, ubds []any) types.Object {
	return types.Object{
		"params":                map[string]any{"bond_denom": "uluna"},
		"validators":            validators,
		"unbonding_delegations": ubds,
	}
}

func TestDerivePoolTotals(t *testing.T) {
	testCases := []struct {
		name         string
		staking      types.Object
		expBonded    int64
		expNotBonded int64
		expErr       error
	}{
		{
			"no validators",
			staking([]any{}, []any{}),
			0, 0, nil,
		},
		{
			"bonded and unbonding validators",
			staking([]any{
				validator(json.Number("2"), "100"),
				validator(json.Number("1"), "50"),
			}, []any{}),
			100, 50, nil,
		},
		{
			"unbonded validators and unbonding delegations",
			staking([]any{
				validator(json.Number("2"), "1000"),
				validator(json.Number("2"), "2000"),
				validator(json.Number("0"), "30"),
			}, []any{ubd("5", "7"), ubd("11")}),
			3000, 53, nil,
		},
		{
			"whole value statuses",
			staking([]any{
				validator(json.Number("2.0"), "100"),
				validator(json.Number("1e0"), "50"),
				validator(json.Number("0.0"), "5"),
			}, []any{}),
			100, 55, nil,
		},
		{
			"fractional status",
			staking([]any{validator(json.Number("2.5"), "100")}, []any{}),
			0, 0, types.ErrInvalidStatus,
		},
		{
			"whole value outside the known statuses",
			staking([]any{validator(json.Number("3.0"), "100")}, []any{}),
			0, 0, types.ErrInvalidStatus,
		},
		{
			"unknown status",
			staking([]any{validator(json.Number("3"), "100")}, []any{}),
			0, 0, types.ErrInvalidStatus,
		},
		{
			"negative status",
			staking([]any{validator(json.Number("-1"), "100")}, []any{}),
			0, 0, types.ErrInvalidStatus,
		},
		{
			"string status",
			staking([]any{validator("2", "100")}, []any{}),
			0, 0, types.ErrInvalidStatus,
		},
		{
			"invalid tokens",
			staking([]any{validator(json.Number("2"), "lots")}, []any{}),
			0, 0, types.ErrInvalidAmount,
		},
		{
			"missing unbonding delegations",
			types.Object{"validators": []any{}},
			0, 0, types.ErrKeyNotFound,
		},
		{
			"missing entry balance",
			staking([]any{}, []any{map[string]any{"entries": []any{map[string]any{}}}}),
			0, 0, types.ErrKeyNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			totals, err := v3.DerivePoolTotals(tc.staking)
			if tc.expErr != nil {
				require.ErrorIs(t, err, tc.expErr)
				return
			}
			require.NoError(t, err)
			require.True(t, sdkmath.NewInt(tc.expBonded).Equal(totals.Bonded), "bonded %s", totals.Bonded)
			require.True(t, sdkmath.NewInt(tc.expNotBonded).Equal(totals.NotBonded), "not bonded %s", totals.NotBonded)
		})
	}
}

func TestMigrateValidators(t *testing.T) {
	st := staking([]any{validator(json.Number("2"), "100")}, []any{})
	require.NoError(t, v3.MigrateValidators(st))

	vals, err := st.ArrayAt("validators")
	require.NoError(t, err)
	val, err := types.AsObject(vals[0], "validators.0")
	require.NoError(t, err)

	require.Equal(t, types.Object{
		"commission_rates": types.Object{
			"rate":            "0.100000000000000000",
			"max_rate":        "0.200000000000000000",
			"max_change_rate": "0.010000000000000000",
		},
		"update_time": "2019-04-24T06:00:00Z",
	}, val["commission"])
	require.Equal(t, "100", val["tokens"])
	require.Equal(t, "terravaloper1", val["operator_address"])
}

func TestMigrateValidatorsMissingRate(t *testing.T) {
	val := validator(json.Number("2"), "100")
	delete(val["commission"].(map[string]any), "max_rate")

	err := v3.MigrateValidators(staking([]any{val}, []any{}))
	require.ErrorIs(t, err, types.ErrKeyNotFound)
	require.Contains(t, err.Error(), "max_rate")
}
