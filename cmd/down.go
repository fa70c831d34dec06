package cmd

import (
	"github.com/spf13/cobra"
)

var downCmd = &cobra.Command{
	Use:   "down",
	Short: "Tear down the local DataHub environment",
	Long:  `Same as running dhctl with no arguments: stops and removes the datahub compose project, stray service containers and the ingestion environment, including volumes.`,
	Args:  cobra.NoArgs,
	RunE:  runTeardown,
}

func init() {
	rootCmd.AddCommand(downCmd)
}
