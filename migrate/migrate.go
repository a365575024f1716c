// Package migrate converts an exported columbus-2 genesis document into a
// columbus-3 genesis document.
package migrate

import (
	"strings"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"

	"github.com/terra-project/columbus-migrate/types"
	"github.com/terra-project/columbus-migrate/utils"
	authv3 "github.com/terra-project/columbus-migrate/x/auth/migrations/v3"
	distributionv3 "github.com/terra-project/columbus-migrate/x/distribution/migrations/v3"
	govv3 "github.com/terra-project/columbus-migrate/x/gov/migrations/v3"
	marketv3 "github.com/terra-project/columbus-migrate/x/market/migrations/v3"
	oraclev3 "github.com/terra-project/columbus-migrate/x/oracle/migrations/v3"
	stakingv3 "github.com/terra-project/columbus-migrate/x/staking/migrations/v3"
	supplyv3 "github.com/terra-project/columbus-migrate/x/supply/migrations/v3"
	treasuryv3 "github.com/terra-project/columbus-migrate/x/treasury/migrations/v3"
)

// Options are the values of the new network set during the migration.
type Options struct {
	// ChainID of the new network, trimmed before use.
	ChainID string
	// GenesisTime of the new network as an RFC 3339 timestamp.
	GenesisTime string
	// KeepCollectedFees funds the fee collector with the collected fees of
	// the auth state instead of leaving it empty.
	KeepCollectedFees bool
}

// Validate fails with ErrValidation for a blank chain id or a malformed
// genesis time.
func (o Options) Validate() error {
	if err := types.ValidateChainID(o.ChainID); err != nil {
		return err
	}
	return types.ValidateGenesisTime(o.GenesisTime)
}

// Migrate rewrites doc in place and returns it. doc must not be used after an
// error: it may be partially migrated.
func Migrate(logger log.Logger, doc types.Object, opts Options) (types.Object, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	appState, err := doc.ObjectAt("app_state")
	if err != nil {
		return nil, err
	}
	staking, err := appState.ObjectAt("staking")
	if err != nil {
		return nil, err
	}

	pools, err := stakingv3.DerivePoolTotals(staking)
	if err != nil {
		return nil, errorsmod.Wrap(err, "staking")
	}
	logger.Info("derived staking pools", "bonded", pools.Bonded.String(), "not_bonded", pools.NotBonded.String())

	legacyAccounts, err := appState.ArrayAt("accounts")
	if err != nil {
		return nil, err
	}
	accounts, err := authv3.MigrateAccounts(legacyAccounts)
	if err != nil {
		return nil, err
	}
	warnInvalidAddresses(logger, accounts)

	distr, err := appState.ObjectAt(distributionv3.LegacyModuleName)
	if err != nil {
		return nil, err
	}
	communityPool, err := distributionv3.CommunityPoolCoins(distr)
	if err != nil {
		return nil, err
	}

	auth, err := appState.ObjectAt("auth")
	if err != nil {
		return nil, err
	}
	balances := authv3.ModuleBalances{
		CommunityPool: communityPool,
		Bonded:        pools.Bonded,
		NotBonded:     pools.NotBonded,
	}
	if opts.KeepCollectedFees {
		if balances.FeeCollector, err = auth.ValueAt("collected_fees"); err != nil {
			return nil, errorsmod.Wrap(err, "auth")
		}
	}
	moduleAccounts, err := authv3.ModuleAccounts(balances)
	if err != nil {
		return nil, err
	}
	appState["accounts"] = append(accounts, moduleAccounts...)
	logger.Info("migrated accounts", "accounts", len(accounts), "module_accounts", len(moduleAccounts))

	if appState["auth"], err = authv3.MigrateGenesisState(auth); err != nil {
		return nil, err
	}
	logger.Debug("migrated module", "module", "auth")

	appState[govv3.ModuleName] = govv3.DefaultGenesisState()
	logger.Debug("migrated module", "module", govv3.ModuleName)

	if err := distributionv3.Migrate(appState); err != nil {
		return nil, err
	}
	logger.Debug("migrated module", "module", distributionv3.ModuleName)

	if err := stakingv3.MigrateValidators(staking); err != nil {
		return nil, errorsmod.Wrap(err, "staking")
	}
	logger.Debug("migrated module", "module", "staking")

	appState[supplyv3.ModuleName] = supplyv3.DefaultGenesisState()
	appState[marketv3.ModuleName] = marketv3.DefaultGenesisState()
	logger.Debug("migrated module", "module", supplyv3.ModuleName)
	logger.Debug("migrated module", "module", marketv3.ModuleName)

	legacyOracle, err := appState.ObjectAt(oraclev3.ModuleName)
	if err != nil {
		return nil, err
	}
	if appState[oraclev3.ModuleName], err = oraclev3.Migrate(legacyOracle); err != nil {
		return nil, err
	}
	logger.Debug("migrated module", "module", oraclev3.ModuleName)

	legacyTreasury, err := appState.ObjectAt(treasuryv3.ModuleName)
	if err != nil {
		return nil, err
	}
	if appState[treasuryv3.ModuleName], err = treasuryv3.Migrate(legacyTreasury); err != nil {
		return nil, err
	}
	logger.Debug("migrated module", "module", treasuryv3.ModuleName)

	doc["chain_id"] = strings.TrimSpace(opts.ChainID)
	doc["genesis_time"] = opts.GenesisTime
	logger.Info("migrated genesis", "chain_id", doc["chain_id"], "genesis_time", opts.GenesisTime)

	return doc, nil
}

// warnInvalidAddresses logs the accounts whose address is not a terra bech32
// address. They are migrated unchanged.
func warnInvalidAddresses(logger log.Logger, accounts []types.GenesisAccount) {
	cdc := utils.NewBech32Codec(types.Bech32Prefix)
	for _, acc := range accounts {
		if _, err := cdc.StringToBytes(acc.Address); err != nil {
			logger.Warn("account address is not a valid terra address", "address", acc.Address, "error", err)
		}
	}
}
