package v3

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	sdkmath "cosmossdk.io/math"

	"github.com/terra-project/columbus-migrate/types"
	"github.com/terra-project/columbus-migrate/utils"
)

// Module account names
const (
	FeeCollectorName  = "fee_collector"
	GovName           = "gov"
	DistributionName  = "distribution"
	BondedPoolName    = "bonded_tokens_pool"
	NotBondedPoolName = "not_bonded_tokens_pool"
	OracleName        = "oracle"
	MarketName        = "market"
	TreasuryName      = "treasury"
)

// moduleAccounts lists the module accounts created by the migration, in the
// order they are appended to the account list.
var moduleAccounts = []struct {
	name        string
	permissions []string
}{
	{FeeCollectorName, []string{types.Basic}},
	{GovName, []string{types.Burner}},
	{DistributionName, []string{types.Basic}},
	{BondedPoolName, []string{types.Burner, types.Staking}},
	{NotBondedPoolName, []string{types.Burner, types.Staking}},
	{OracleName, []string{types.Basic}},
	{MarketName, []string{types.Minter, types.Burner}},
	{TreasuryName, []string{types.Minter}},
}

// ModuleBalances holds the balances funded into module accounts. Modules
// without an entry start empty.
type ModuleBalances struct {
	// FeeCollector is carried verbatim when set.
	FeeCollector  any
	CommunityPool sdk.Coins
	Bonded        sdkmath.Int
	NotBonded     sdkmath.Int
}

func (b ModuleBalances) coins(name string) any {
	switch name {
	case FeeCollectorName:
		if b.FeeCollector != nil {
			return b.FeeCollector
		}
	case DistributionName:
		if b.CommunityPool != nil {
			return coinEntries(b.CommunityPool)
		}
	case BondedPoolName:
		return poolCoins(b.Bonded)
	case NotBondedPoolName:
		return poolCoins(b.NotBonded)
	}
	return sdk.Coins{}
}

// coinEntry is a coin record that keeps its denom key when the denom is empty,
// sdk.Coin drops it.
type coinEntry struct {
	Denom  string      `json:"denom"`
	Amount sdkmath.Int `json:"amount"`
}

func coinEntries(coins sdk.Coins) []coinEntry {
	entries := make([]coinEntry, 0, len(coins))
	for _, c := range coins {
		entries = append(entries, coinEntry{Denom: c.Denom, Amount: c.Amount})
	}
	return entries
}

// poolCoins keeps zero balances: the pool accounts always hold a bond denom
// entry.
func poolCoins(amt sdkmath.Int) sdk.Coins {
	if amt.IsNil() {
		amt = sdkmath.ZeroInt()
	}
	return sdk.Coins{sdk.Coin{Denom: types.BondDenom, Amount: amt}}
}

// NewModuleAccount returns a module owned genesis account. Its address is
// derived from the module name.
func NewModuleAccount(name string, coins any, permissions ...string) (types.GenesisAccount, error) {
	addr, err := utils.NewBech32Codec(types.Bech32Prefix).ModuleAddress(name)
	if err != nil {
		return types.GenesisAccount{}, err
	}
	if permissions == nil {
		permissions = []string{}
	}

	return types.GenesisAccount{
		Address:          addr,
		Coins:            coins,
		SequenceNumber:   "0",
		AccountNumber:    "0",
		OriginalVesting:  sdk.Coins{},
		DelegatedFree:    sdk.Coins{},
		DelegatedVesting: sdk.Coins{},
		StartTime:        "0",
		EndTime:          "0",
		ModuleName:       name,
		Permissions:      permissions,
		VestingSchedules: []types.VestingSchedule{},
	}, nil
}

// ModuleAccounts creates the eight module accounts of columbus-3.
func ModuleAccounts(balances ModuleBalances) ([]types.GenesisAccount, error) {
	accounts := make([]types.GenesisAccount, 0, len(moduleAccounts))
	for _, ma := range moduleAccounts {
		acc, err := NewModuleAccount(ma.name, balances.coins(ma.name), ma.permissions...)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, acc)
	}
	return accounts, nil
}
