package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const serviceName = "scoring-service"

var version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "scoringd",
		Short:         "Synthetic transaction risk scoring service",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.AddCommand(newServeCmd(), newScoreCmd())

	return root
}
