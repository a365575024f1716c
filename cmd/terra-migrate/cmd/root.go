package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"cosmossdk.io/log"

	"github.com/terra-project/columbus-migrate/config"
	"github.com/terra-project/columbus-migrate/genesis"
	"github.com/terra-project/columbus-migrate/migrate"
	"github.com/terra-project/columbus-migrate/types"
)

// NewRootCmd creates the terra-migrate command.
func NewRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "terra-migrate [exported-genesis]",
		Short: "Migrate an exported columbus-2 genesis to columbus-3",
		Long: `Read a genesis exported from columbus-2 and write the columbus-3 genesis.

The exported genesis is read from the given file, or from standard input when
the argument is "-" or omitted. The migrated genesis goes to standard output
unless --output is set.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			lvl, err := cfg.Level()
			if err != nil {
				return err
			}
			logger := log.NewLogger(cmd.ErrOrStderr(), log.LevelOption(lvl))

			input := config.StdStream
			if len(args) == 1 {
				input = args[0]
			}
			doc, err := load(cmd.InOrStdin(), input)
			if err != nil {
				return err
			}
			logger.Debug("loaded exported genesis", "input", input)

			migrated, err := migrate.Migrate(logger, doc, cfg.MigrateOptions())
			if err != nil {
				return err
			}

			// marshal before touching the output so a failure leaves it alone
			bz, err := genesis.Marshal(migrated)
			if err != nil {
				return err
			}
			if cfg.UseStdout() {
				_, err = cmd.OutOrStdout().Write(bz)
				return err
			}
			if err := os.WriteFile(cfg.Output, bz, 0o644); err != nil { //nolint:gosec
				return err
			}
			logger.Info("wrote migrated genesis", "output", cfg.Output)
			return nil
		},
	}

	if err := config.AddFlags(rootCmd, v); err != nil {
		panic(err)
	}
	return rootCmd
}

func load(stdin io.Reader, input string) (types.Object, error) {
	if input == "" || input == config.StdStream {
		return genesis.Load(stdin)
	}
	return genesis.LoadFile(input)
}
