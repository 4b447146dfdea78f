package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/philipparndt/gostack/internal/app"
	"github.com/philipparndt/gostack/internal/scene"
	"github.com/philipparndt/gostack/version"
	"github.com/spf13/cobra"
)

var (
	variantFlag string
	layoutFlag  string
	watchFlag   bool
	verboseFlag bool
	widthFlag   int32
	heightFlag  int32
)

var rootCmd = &cobra.Command{
	Use:   "gostack",
	Short: "Drag, snap and stack boxes in a 3D scene",
	Long: `gostack opens a 3D scene with a floor and a set of boxes. Drag a box with the mouse
to move it on a 10 unit grid; it stacks on top of any box it overlaps. Arrow keys nudge
the last selected box by one grid step.

The orbit variant adds a damped orbit/pan camera and moves boxes relative to the view.`,
	Version:       version.GetFullVersion(),
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogger(verboseFlag)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		variant, err := scene.ParseVariant(variantFlag)
		if err != nil {
			return err
		}
		return app.Run(app.Options{
			Variant:    variant,
			LayoutPath: layoutFlag,
			Watch:      watchFlag,
			Width:      widthFlag,
			Height:     heightFlag,
			Logger:     slog.Default(),
		})
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&variantFlag, "variant", "", `scene variant: "orbit" or "fixed" (default from layout, else orbit)`)
	flags.StringVarP(&layoutFlag, "layout", "l", "", "YAML layout file overriding the built-in preset")
	flags.BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")

	rootCmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "reload the layout file when it changes")
	rootCmd.Flags().Int32Var(&widthFlag, "width", 1400, "window width")
	rootCmd.Flags().Int32Var(&heightFlag, "height", 900, "window height")
}

func setupLogger(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

// loadLayout resolves the persistent --variant and --layout flags
func loadLayout() (scene.Layout, error) {
	variant, err := scene.ParseVariant(variantFlag)
	if err != nil {
		return scene.Layout{}, err
	}
	return scene.LoadLayout(layoutFlag, variant)
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
