package types

import (
	sdkmath "cosmossdk.io/math"
)

// GenesisAccount is an account record of the columbus-3 auth genesis state.
// Fields carried over from the exported state keep their decoded form.
type GenesisAccount struct {
	Address          string   `json:"address"`
	Coins            any      `json:"coins"`
	SequenceNumber   any      `json:"sequence_number"`
	AccountNumber    string   `json:"account_number"`
	OriginalVesting  any      `json:"original_vesting"`
	DelegatedFree    any      `json:"delegated_free"`
	DelegatedVesting any      `json:"delegated_vesting"`
	StartTime        string   `json:"start_time"`
	EndTime          string   `json:"end_time"`
	ModuleName       string   `json:"module_name"`
	Permissions      []string `json:"module_permissions"`
	VestingSchedules any      `json:"vesting_schedules"`
}

// IsModuleAccount reports whether the account is owned by a module.
func (acc GenesisAccount) IsModuleAccount() bool {
	return acc.ModuleName != ""
}

// Schedule releases Ratio of a denom linearly between StartTime and EndTime,
// both given in unix seconds.
type Schedule struct {
	StartTime string            `json:"start_time"`
	EndTime   string            `json:"end_time"`
	Ratio     sdkmath.LegacyDec `json:"ratio"`
}

// VestingSchedule groups the release schedules of one denom.
type VestingSchedule struct {
	Denom     string     `json:"denom"`
	Schedules []Schedule `json:"schedules"`
}

// TotalRatio returns the sum of all schedule ratios.
func (vs VestingSchedule) TotalRatio() sdkmath.LegacyDec {
	total := sdkmath.LegacyZeroDec()
	for _, s := range vs.Schedules {
		total = total.Add(s.Ratio)
	}
	return total
}

// Validate checks that the ratios are positive and sum up to exactly one.
func (vs VestingSchedule) Validate() error {
	if vs.Denom == "" {
		return ErrInvalidVesting.Wrap("empty denom")
	}
	for i, s := range vs.Schedules {
		if !s.Ratio.IsPositive() {
			return ErrInvalidVesting.Wrapf("%s schedule %d: non-positive ratio %s", vs.Denom, i, s.Ratio)
		}
	}
	if total := vs.TotalRatio(); !total.Equal(sdkmath.LegacyOneDec()) {
		return ErrInvalidVesting.Wrapf("%s: ratios sum to %s", vs.Denom, total)
	}
	return nil
}

// ValidateVestingSchedules validates every schedule and rejects duplicate denoms.
func ValidateVestingSchedules(schedules []VestingSchedule) error {
	seen := make(map[string]struct{}, len(schedules))
	for _, vs := range schedules {
		if _, ok := seen[vs.Denom]; ok {
			return ErrInvalidVesting.Wrapf("duplicate denom %s", vs.Denom)
		}
		seen[vs.Denom] = struct{}{}

		if err := vs.Validate(); err != nil {
			return err
		}
	}
	return nil
}
