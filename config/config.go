// Package config holds the settings of a migration run and binds them to
// command line flags.
package config

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	errorsmod "cosmossdk.io/errors"

	"github.com/terra-project/columbus-migrate/migrate"
	"github.com/terra-project/columbus-migrate/types"
)

// Config is the configuration of a migration run.
type Config struct {
	ChainID           string
	StartTime         string
	KeepCollectedFees bool
	// Output is the path the migrated genesis is written to, standard output
	// when empty or "-".
	Output   string
	LogLevel string
}

// DefaultConfig returns the configuration used when no flag is set.
func DefaultConfig() Config {
	return Config{
		ChainID:   DefaultChainID,
		StartTime: DefaultStartTime,
		Output:    StdStream,
		LogLevel:  DefaultLogLevel,
	}
}

// AddFlags registers the migration flags on cmd and binds them to v.
func AddFlags(cmd *cobra.Command, v *viper.Viper) error {
	defaults := DefaultConfig()

	f := cmd.Flags()
	f.String(FlagChainID, defaults.ChainID, "chain id of the new network")
	f.String(FlagStartTime, defaults.StartTime, "genesis time of the new network (RFC 3339)")
	f.Bool(FlagKeepCollectedFees, defaults.KeepCollectedFees, "fund the fee collector with the collected fees instead of leaving it empty")
	f.StringP(FlagOutput, "o", defaults.Output, "file to write the migrated genesis to, - for stdout")
	f.String(FlagLogLevel, defaults.LogLevel, "log level of the diagnostics written to stderr")

	for _, name := range []string{FlagChainID, FlagStartTime, FlagKeepCollectedFees, FlagOutput, FlagLogLevel} {
		if err := v.BindPFlag(name, f.Lookup(name)); err != nil {
			return err
		}
	}
	return nil
}

// Load reads the configuration from v and validates it.
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		ChainID:           cast.ToString(v.Get(FlagChainID)),
		StartTime:         cast.ToString(v.Get(FlagStartTime)),
		KeepCollectedFees: cast.ToBool(v.Get(FlagKeepCollectedFees)),
		Output:            cast.ToString(v.Get(FlagOutput)),
		LogLevel:          cast.ToString(v.Get(FlagLogLevel)),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the chain id, the start time and the log level.
func (c Config) Validate() error {
	if err := c.MigrateOptions().Validate(); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses the log level.
func (c Config) Level() (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return zerolog.NoLevel, errorsmod.Wrapf(types.ErrValidation, "log level %q", c.LogLevel)
	}
	return lvl, nil
}

// UseStdout reports whether the migrated genesis goes to standard output.
func (c Config) UseStdout() bool {
	return c.Output == "" || c.Output == StdStream
}

// MigrateOptions returns the options of the migration itself.
func (c Config) MigrateOptions() migrate.Options {
	return migrate.Options{
		ChainID:           c.ChainID,
		GenesisTime:       c.StartTime,
		KeepCollectedFees: c.KeepCollectedFees,
	}
}
