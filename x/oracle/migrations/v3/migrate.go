package v3

import (
	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"

	"github.com/terra-project/columbus-migrate/types"
)

// ModuleName is the genesis key of the oracle state.
const ModuleName = "oracle"

// DefaultVotesWindow is the number of blocks a validator's votes are
// counted over for slashing.
const DefaultVotesWindow = "1000"

// GenesisState is the oracle genesis state of columbus-3.
type GenesisState struct {
	VotingInfos       types.Object `json:"voting_infos"`
	MissedVotes       types.Object `json:"missed_votes"`
	FeederDelegations any          `json:"feeder_delegations"`
	Prices            types.Object `json:"prices"`
	PricePrevotes     []any        `json:"price_prevotes"`
	PriceVotes        []any        `json:"price_votes"`
	Params            Params       `json:"params"`
}

// Params are the oracle parameters. The first three are carried over from
// columbus-2.
type Params struct {
	VotePeriod             any               `json:"vote_period"`
	VoteThreshold          any               `json:"vote_threshold"`
	RewardBand             any               `json:"reward_band"`
	VotesWindow            string            `json:"votes_window"`
	MinValidVotesPerWindow sdkmath.LegacyDec `json:"min_valid_votes_per_window"`
	SlashFraction          sdkmath.LegacyDec `json:"slash_fraction"`
	RewardFraction         sdkmath.LegacyDec `json:"reward_fraction"`
}

// Migrate rebuilds the oracle state. Only the feeder delegations and the vote
// period, vote threshold and reward band survive; votes, prevotes, prices and
// slashing windows start over.
func Migrate(oracle types.Object) (GenesisState, error) {
	feeders, err := oracle.ValueAt("feeder_delegations")
	if err != nil {
		return GenesisState{}, errorsmod.Wrap(err, ModuleName)
	}

	params, err := oracle.ObjectAt("params")
	if err != nil {
		return GenesisState{}, errorsmod.Wrap(err, ModuleName)
	}
	carried := make([]any, 3)
	for i, key := range []string{"vote_period", "vote_threshold", "oracle_reward_band"} {
		v, err := params.ValueAt(key)
		if err != nil {
			return GenesisState{}, errorsmod.Wrapf(err, "%s.params", ModuleName)
		}
		carried[i] = v
	}

	return GenesisState{
		VotingInfos:       types.Object{},
		MissedVotes:       types.Object{},
		FeederDelegations: feeders,
		Prices:            types.Object{},
		PricePrevotes:     []any{},
		PriceVotes:        []any{},
		Params: Params{
			VotePeriod:             carried[0],
			VoteThreshold:          carried[1],
			RewardBand:             carried[2],
			VotesWindow:            DefaultVotesWindow,
			MinValidVotesPerWindow: sdkmath.LegacyNewDecWithPrec(5, 2),
			SlashFraction:          sdkmath.LegacyNewDecWithPrec(1, 4),
			RewardFraction:         sdkmath.LegacyNewDecWithPrec(1, 2),
		},
	}, nil
}
