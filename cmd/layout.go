package cmd

import (
	"github.com/philipparndt/gostack/internal/report"
	"github.com/spf13/cobra"
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Print the resolved scene layout",
	Long:  "Show the layout the viewer would start with: variant settings, every shape and whether it rests on its support.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		layout, err := loadLayout()
		if err != nil {
			return err
		}
		return report.WriteLayout(cmd.OutOrStdout(), layout)
	},
}

func init() {
	rootCmd.AddCommand(layoutCmd)
}
