package v3

import (
	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/terra-project/columbus-migrate/types"
)

// ModuleName is the genesis key of the governance state.
const ModuleName = "gov"

// Durations are in nanoseconds.
const (
	DefaultMaxDepositPeriod = "1209600000000000"
	DefaultVotingPeriod     = "1209600000000000"
	DefaultStartingProposal = "1"
)

// DefaultMinDeposit is the minimum proposal deposit, 512 luna.
var DefaultMinDeposit = sdkmath.NewInt(512_000_000)

// GenesisState is the governance genesis state of columbus-3.
type GenesisState struct {
	StartingProposalID string        `json:"starting_proposal_id"`
	Deposits           []any         `json:"deposits"`
	Votes              []any         `json:"votes"`
	Proposals          []any         `json:"proposals"`
	DepositParams      DepositParams `json:"deposit_params"`
	VotingParams       VotingParams  `json:"voting_params"`
	TallyParams        TallyParams   `json:"tally_params"`
}

// DepositParams bounds proposal deposits.
type DepositParams struct {
	MinDeposit       sdk.Coins `json:"min_deposit"`
	MaxDepositPeriod string    `json:"max_deposit_period"`
}

// VotingParams bounds the voting window.
type VotingParams struct {
	VotingPeriod string `json:"voting_period"`
}

// TallyParams holds the tally thresholds.
type TallyParams struct {
	Quorum    sdkmath.LegacyDec `json:"quorum"`
	Threshold sdkmath.LegacyDec `json:"threshold"`
	Veto      sdkmath.LegacyDec `json:"veto"` // key read by the gov module, not "vete"
}

// DefaultGenesisState returns the governance state the network starts with:
// no proposals, a 40% quorum, a 50% threshold and a 33.4% veto.
func DefaultGenesisState() GenesisState {
	return GenesisState{
		StartingProposalID: DefaultStartingProposal,
		Deposits:           []any{},
		Votes:              []any{},
		Proposals:          []any{},
		DepositParams: DepositParams{
			MinDeposit:       sdk.Coins{sdk.Coin{Denom: types.BondDenom, Amount: DefaultMinDeposit}},
			MaxDepositPeriod: DefaultMaxDepositPeriod,
		},
		VotingParams: VotingParams{
			VotingPeriod: DefaultVotingPeriod,
		},
		TallyParams: TallyParams{
			Quorum:    sdkmath.LegacyNewDecWithPrec(4, 1),
			Threshold: sdkmath.LegacyNewDecWithPrec(5, 1),
			Veto:      sdkmath.LegacyNewDecWithPrec(334, 3),
		},
	}
}
