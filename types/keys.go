package types

const (
	// Bech32Prefix is the account address prefix of the terra networks.
	Bech32Prefix = "terra"

	// BondDenom is the staking denomination, also used for the pool accounts.
	BondDenom = "uluna"

	// MicroSDRDenom is the SDR-pegged terra denomination.
	MicroSDRDenom = "usdr"
)

// Module account permissions
const (
	Basic   = "basic"
	Minter  = "minter"
	Burner  = "burner"
	Staking = "staking"
)
