package commands

import (
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/medics-dev/MedICS-Extension-Base/internal/scaffold"
)

var categoryDescriptions = map[string]string{
	"Analysis":      "Quantitative analysis of imaging data",
	"Segmentation":  "Region and structure segmentation",
	"Visualization": "Viewers and rendering tools",
	"Processing":    "Image processing and filtering",
	"Import/Export": "Data import and export",
	"Workflow":      "Multi-step processing pipelines",
	"Utilities":     "Small helper tools",
	"Research":      "Experimental research tools",
	"General":       "Everything else",
}

// NewCategoriesCommand creates the category listing subcommand.
func NewCategoriesCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "categories",
		Short:   "List the extension categories accepted by create",
		Example: `  medics-ext categories`,
		Run: func(cmd *cobra.Command, args []string) {
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Category", "Description"})
			table.SetBorder(false)
			for _, c := range scaffold.Categories {
				table.Append([]string{c, categoryDescriptions[c]})
			}
			table.Render()
		},
	}
}
