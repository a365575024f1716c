package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/terra-project/columbus-migrate/types"

	sdkmath "cosmossdk.io/math"
)

func schedule(ratios ...string) []types.Schedule {
	out := make([]types.Schedule, 0, len(ratios))
	for _, r := range ratios {
		out = append(out, types.Schedule{StartTime: "0", EndTime: "1", Ratio: sdkmath.LegacyMustNewDecFromStr(r)})
	}
	return out
}

func TestVestingScheduleValidate(t *testing.T) {
	testCases := []struct {
		name    string
		vs      types.VestingSchedule
		expPass bool
	}{
		{
			"single tranche",
			types.VestingSchedule{Denom: "uluna", Schedules: schedule("1")},
			true,
		},
		{
			"ratios sum to one",
			types.VestingSchedule{Denom: "uluna", Schedules: schedule("0.1", "0.1", "0.1", "0.7")},
			true,
		},
		{
			"ratios sum below one",
			types.VestingSchedule{Denom: "uluna", Schedules: schedule("0.1", "0.1")},
			false,
		},
		{
			"ratios sum above one",
			types.VestingSchedule{Denom: "uluna", Schedules: schedule("0.5", "0.6")},
			false,
		},
		{
			"negative ratio",
			types.VestingSchedule{Denom: "uluna", Schedules: schedule("1.5", "-0.5")},
			false,
		},
		{
			"empty denom",
			types.VestingSchedule{Schedules: schedule("1")},
			false,
		},
		{
			"no schedules",
			types.VestingSchedule{Denom: "usdr"},
			false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.vs.Validate()
			if tc.expPass {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, types.ErrInvalidVesting)
			}
		})
	}
}

func TestValidateVestingSchedulesDuplicateDenom(t *testing.T) {
	vs := types.VestingSchedule{Denom: "uluna", Schedules: schedule("1")}
	require.NoError(t, types.ValidateVestingSchedules([]types.VestingSchedule{vs}))
	require.ErrorIs(t, types.ValidateVestingSchedules([]types.VestingSchedule{vs, vs}), types.ErrInvalidVesting)
}

func TestValidateChainID(t *testing.T) {
	require.NoError(t, types.ValidateChainID("columbus-3"))
	require.ErrorIs(t, types.ValidateChainID(""), types.ErrValidation)
	require.ErrorIs(t, types.ValidateChainID(" \t\n"), types.ErrValidation)
}

func TestValidateGenesisTime(t *testing.T) {
	require.NoError(t, types.ValidateGenesisTime("2019-10-02T19:00:00Z"))
	require.NoError(t, types.ValidateGenesisTime("2019-04-24T06:00:00.000000Z"))
	require.ErrorIs(t, types.ValidateGenesisTime("yesterday"), types.ErrValidation)
}
