// Package commands provides CLI subcommands for the MedICS Extension SDK.
package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/medics-dev/MedICS-Extension-Base/internal/scaffold"
)

// NewCreateCommand creates the extension scaffolding subcommand.
func NewCreateCommand() *cobra.Command {
	var (
		output     string
		category   string
		author     string
		modulePath string
	)

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new extension template",
		Long: `Create a directory skeleton for a new MedICS extension:
a Go package with the extension type, a test file, a README, an ini-style
configuration file, and an icons directory.`,
		Example: `  # Create an extension in the current directory
  medics-ext create "Image Segmentation" --category Segmentation --author "Dr. Smith"

  # Create an extension under ./my_extensions
  medics-ext create "Custom Viewer" --output ./my_extensions --category Visualization`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := scaffold.Generate(scaffold.Options{
				Name:       args[0],
				Author:     author,
				Category:   category,
				OutputDir:  output,
				ModulePath: modulePath,
			})
			if err != nil {
				return fmt.Errorf("create extension: %w", err)
			}

			cmd.Println("✅ Extension template created successfully!")
			cmd.Printf("📁 Location: %s\n", result.Dir)
			cmd.Printf("📝 Extension type: %s\n", result.TypeName)
			cmd.Printf("🔧 Package: %s\n", result.PackageName)
			cmd.Println()
			cmd.Println("Next steps:")
			cmd.Println("1. Implement your analysis logic in ProcessData()")
			cmd.Println("2. Replace the stub widget in CreateWidget()")
			cmd.Println("3. Register the extension with your MedICS extension manager")
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", ".", "output directory for the extension")
	cmd.Flags().StringVarP(&category, "category", "c", "General",
		"extension category ("+strings.Join(scaffold.Categories, ", ")+")")
	cmd.Flags().StringVarP(&author, "author", "a", "Unknown", "extension author name")
	cmd.Flags().StringVar(&modulePath, "module-path", scaffold.DefaultModulePath, "SDK module path used in generated imports")

	return cmd
}
