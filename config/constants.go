package config

// Command line flags
const (
	FlagChainID           = "chain-id"
	FlagStartTime         = "start-time"
	FlagKeepCollectedFees = "keep-collected-fees"
	FlagOutput            = "output"
	FlagLogLevel          = "log-level"
)

const (
	// DefaultChainID is the chain id of the columbus-3 drill network.
	DefaultChainID = "columbus-3-drill"
	// DefaultStartTime is the genesis time of the new network.
	DefaultStartTime = "2019-10-02T19:00:00Z"
	// DefaultLogLevel is the zerolog level of the diagnostics written to stderr.
	DefaultLogLevel = "info"
	// StdStream names standard input or output in place of a file path.
	StdStream = "-"
)
