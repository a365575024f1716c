package v3

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"

	"github.com/terra-project/columbus-migrate/types"
)

// MigrateAccount converts a columbus-2 genesis account into the columbus-3
// account format. Account numbers are reassigned by the account keeper during
// InitGenesis, so they are reset here.
func MigrateAccount(acc types.Object) (types.GenesisAccount, error) {
	address, err := acc.StringAt("address")
	if err != nil {
		return types.GenesisAccount{}, err
	}

	migrated := types.GenesisAccount{
		Address:       address,
		AccountNumber: "0",
		StartTime:     "0",
		EndTime:       "0",
		ModuleName:    "",
		Permissions:   []string{},
	}

	carried := []struct {
		key string
		dst *any
	}{
		{"coins", &migrated.Coins},
		{"sequence_number", &migrated.SequenceNumber},
		{"original_vesting", &migrated.OriginalVesting},
		{"delegated_free", &migrated.DelegatedFree},
		{"delegated_vesting", &migrated.DelegatedVesting},
		{"lazy_vesting_schedules", &migrated.VestingSchedules},
	}
	for _, field := range carried {
		v, err := acc.ValueAt(field.key)
		if err != nil {
			return types.GenesisAccount{}, errorsmod.Wrap(err, address)
		}
		*field.dst = v
	}

	if address == FlaggedAccount {
		schedules, err := FlaggedVestingSchedules()
		if err != nil {
			return types.GenesisAccount{}, errorsmod.Wrap(err, address)
		}
		migrated.VestingSchedules = schedules
	}

	return migrated, nil
}

// MigrateAccounts converts every account of the exported account list.
func MigrateAccounts(accounts types.Array) ([]types.GenesisAccount, error) {
	migrated := make([]types.GenesisAccount, 0, len(accounts)+len(moduleAccounts))
	for i, a := range accounts {
		path := fmt.Sprintf("accounts.%d", i)
		acc, err := types.AsObject(a, path)
		if err != nil {
			return nil, err
		}

		newAcc, err := MigrateAccount(acc)
		if err != nil {
			return nil, errorsmod.Wrap(err, path)
		}
		migrated = append(migrated, newAcc)
	}
	return migrated, nil
}

// MigrateGenesisState keeps the auth params and drops the collected fees,
// which move to the fee collector module account.
func MigrateGenesisState(auth types.Object) (types.Object, error) {
	params, err := auth.ValueAt("params")
	if err != nil {
		return nil, errorsmod.Wrap(err, "auth")
	}
	return types.Object{"params": params}, nil
}
