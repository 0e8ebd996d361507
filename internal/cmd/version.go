package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opmodel/opponentgen/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show opponentgen version information.

Displays the version, commit, build date and Go version.`,
		Args: cobra.NoArgs,
		RunE: runVersion,
	}
}

func runVersion(cmd *cobra.Command, _ []string) error {
	fmt.Fprint(cmd.OutOrStdout(), version.Get().String())
	return nil
}
