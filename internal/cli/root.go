// Package cli provides the command-line interface for the MedICS Extension SDK.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/medics-dev/MedICS-Extension-Base/internal/cli/commands"
	"github.com/medics-dev/MedICS-Extension-Base/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "medics-ext",
	Short: "MedICS Extension SDK - extension tooling",
	Long: `medics-ext is the tooling companion to the MedICS Extension SDK.
It scaffolds new extension packages that plug into the MedICS
medical-imaging platform.`,
	Version: version.Version,
}

func init() {
	rootCmd.AddCommand(commands.NewCreateCommand())
	rootCmd.AddCommand(commands.NewCategoriesCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return nil
}
