package main

import (
	"fmt"
	"os"

	"github.com/terra-project/columbus-migrate/cmd/terra-migrate/cmd"
)

func main() {
	rootCmd := cmd.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}
