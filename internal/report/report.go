// Package report formats layouts and resting checks for the command line.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/philipparndt/gostack/internal/scene"
)

// WriteLayout prints a summary of the layout and one row per shape.
func WriteLayout(w io.Writer, layout scene.Layout) error {
	s := scene.New(layout)

	fmt.Fprintf(w, "Variant: %s\n", layout.Variant)
	fmt.Fprintf(w, "Grid: %g\n", s.Grid.Size)
	fmt.Fprintf(w, "Background: %s\n", layout.Background)
	fmt.Fprintf(w, "Floor: %g x %g x %g %s\n", layout.Floor.Size.X, layout.Floor.Size.Y, layout.Floor.Size.Z, layout.Floor.Color)
	if layout.Pad != nil {
		fmt.Fprintf(w, "Pad: %g x %g %s\n", layout.Pad.Size, layout.Pad.Size, layout.Pad.Color)
	}
	c := layout.Camera
	fmt.Fprintf(w, "Camera: (%g, %g, %g) -> (%g, %g, %g), fovy %g\n\n",
		c.Position.X, c.Position.Y, c.Position.Z, c.Target.X, c.Target.Y, c.Target.Z, c.Fovy)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tNAME\tPOSITION\tSIZE\tCOLOR\tRESTING")

	violations := make(map[int]scene.RestingViolation)
	for _, v := range s.CheckResting() {
		violations[v.Index] = v
	}

	for i, shape := range s.Shapes {
		resting := "yes"
		if v, ok := violations[i]; ok {
			resting = describe(v)
		}
		p, size := shape.Position, shape.Size
		fmt.Fprintf(tw, "%d\t%s\t(%g, %g, %g)\t%g x %g x %g\t%s\t%s\n",
			i+1, shape.Label(i), p.X, p.Y, p.Z, size.X, size.Y, size.Z, shape.Color, resting)
	}
	return tw.Flush()
}

// Check prints every resting violation and returns an error if there is any.
func Check(w io.Writer, layout scene.Layout) error {
	violations := scene.New(layout).CheckResting()
	if len(violations) == 0 {
		fmt.Fprintf(w, "OK: %d shapes resting\n", len(layout.Shapes))
		return nil
	}

	for _, v := range violations {
		fmt.Fprintln(w, v.String())
	}
	return fmt.Errorf("%d of %d shapes are not resting on their support", len(violations), len(layout.Shapes))
}

func describe(v scene.RestingViolation) string {
	if v.Overlaps != nil {
		return "no, intersects"
	}
	return fmt.Sprintf("no, expected y=%g", v.Expected)
}
