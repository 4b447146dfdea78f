package cmd

import (
	"github.com/philipparndt/gostack/internal/report"
	"github.com/philipparndt/gostack/internal/scene"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <layout.yaml>",
	Short: "Validate a layout file",
	Long:  "Load a layout file and fail if any shape floats, sinks into its support or intersects another shape.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		variant, err := scene.ParseVariant(variantFlag)
		if err != nil {
			return err
		}
		layout, err := scene.LoadLayout(args[0], variant)
		if err != nil {
			return err
		}
		return report.Check(cmd.OutOrStdout(), layout)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
