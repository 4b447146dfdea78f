package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/philipparndt/gostack/internal/gui"
	"github.com/philipparndt/gostack/internal/scene"
	"github.com/philipparndt/gostack/version"
	"github.com/spf13/cobra"
)

var (
	variantFlag string
	layoutFlag  string
	watchFlag   bool
	verboseFlag bool
)

// The fyne front end is its own binary: fyne and raylib each link their own GLFW.
var rootCmd = &cobra.Command{
	Use:   "gostack-gui [layout.yaml]",
	Short: "Drag, snap and stack boxes in a pure-Go 3D view",
	Long: `gostack-gui shows the same scene as gostack in a fyne window with a software
renderer and an information panel. Drag a box to move it on the grid; it stacks on top
of any box it overlaps. Arrow keys nudge the last selected box by one grid step.`,
	Version:       version.GetFullVersion(),
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		setupLogger(verboseFlag)

		variant, err := scene.ParseVariant(variantFlag)
		if err != nil {
			return err
		}
		path := layoutFlag
		if len(args) == 1 {
			path = args[0]
		}
		return gui.Run(gui.Options{
			Variant:    variant,
			LayoutPath: path,
			Watch:      watchFlag,
			Logger:     slog.Default(),
		})
	},
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&variantFlag, "variant", "", `scene variant: "orbit" or "fixed" (default from layout, else orbit)`)
	flags.StringVarP(&layoutFlag, "layout", "l", "", "YAML layout file overriding the built-in preset")
	flags.BoolVarP(&watchFlag, "watch", "w", false, "reload the layout file when it changes")
	flags.BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")
}

func setupLogger(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
