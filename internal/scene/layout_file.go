package scene

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/philipparndt/gostack/pkg/geometry"
	"github.com/philipparndt/gostack/pkg/placement"
	"gopkg.in/yaml.v3"
)

// layoutFile is the on-disk YAML form of a Layout. Every field is optional and
// overrides the preset of the selected variant.
type layoutFile struct {
	Variant    string      `yaml:"variant,omitempty"`
	GridSize   *float64    `yaml:"grid_size,omitempty"`
	Background string      `yaml:"background,omitempty"`
	Floor      *floorSpec  `yaml:"floor,omitempty"`
	Pad        *padSpec    `yaml:"pad,omitempty"`
	Camera     *cameraSpec `yaml:"camera,omitempty"`
	Light      *lightSpec  `yaml:"light,omitempty"`
	Shapes     []shapeSpec `yaml:"shapes,omitempty"`
}

type floorSpec struct {
	Size  []float64 `yaml:"size,omitempty"`
	Color string    `yaml:"color,omitempty"`
}

type padSpec struct {
	Size  float64 `yaml:"size"`
	Color string  `yaml:"color,omitempty"`
}

type cameraSpec struct {
	Position []float64 `yaml:"position,omitempty"`
	Target   []float64 `yaml:"target,omitempty"`
	Fovy     float64   `yaml:"fovy,omitempty"`
}

type lightSpec struct {
	Position  []float64 `yaml:"position,omitempty"`
	Intensity *float64  `yaml:"intensity,omitempty"`
	Ambient   *float64  `yaml:"ambient,omitempty"`
}

// shapeSpec positions are either [x, y, z] or [x, z]; the short form settles
// the shape on whatever was declared before it.
type shapeSpec struct {
	Name     string    `yaml:"name,omitempty"`
	Size     []float64 `yaml:"size"`
	Position []float64 `yaml:"position"`
	Color    string    `yaml:"color,omitempty"`
}

// defaultShapeColor is the color used for shapes that do not declare one.
var defaultShapeColor = Hex(0x44aa88)

// LoadLayout reads a layout file. An empty path returns the preset for variant.
// When variant is empty the file's own variant (or DefaultVariant) is used.
func LoadLayout(path string, variant Variant) (Layout, error) {
	if strings.TrimSpace(path) == "" {
		if variant == "" {
			variant = DefaultVariant
		}
		return Preset(variant), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("failed to read layout: %w", err)
	}

	layout, err := ParseLayout(data, variant)
	if err != nil {
		return Layout{}, fmt.Errorf("%s: %w", path, err)
	}
	return layout, nil
}

// ParseLayout decodes YAML layout data on top of the matching preset.
func ParseLayout(data []byte, variant Variant) (Layout, error) {
	var file layoutFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Layout{}, fmt.Errorf("invalid layout: %w", err)
	}

	if variant == "" {
		v, err := ParseVariant(file.Variant)
		if err != nil {
			return Layout{}, err
		}
		variant = v
	}
	if variant == "" {
		variant = DefaultVariant
	}

	layout := Preset(variant)
	if err := file.apply(&layout); err != nil {
		return Layout{}, err
	}
	if err := layout.Validate(); err != nil {
		return Layout{}, err
	}
	return layout, nil
}

func (f layoutFile) apply(layout *Layout) error {
	if f.GridSize != nil {
		layout.GridSize = *f.GridSize
	}

	if f.Background != "" {
		c, err := ParseColor(f.Background)
		if err != nil {
			return fmt.Errorf("background: %w", err)
		}
		layout.Background = c
	}

	if f.Floor != nil {
		if f.Floor.Size != nil {
			size, err := vector3("floor.size", f.Floor.Size)
			if err != nil {
				return err
			}
			layout.Floor.Size = size
		}
		if f.Floor.Color != "" {
			c, err := ParseColor(f.Floor.Color)
			if err != nil {
				return fmt.Errorf("floor.color: %w", err)
			}
			layout.Floor.Color = c
		}
	}

	if f.Pad != nil {
		if f.Pad.Size <= 0 {
			layout.Pad = nil
		} else {
			pad := Pad{Size: f.Pad.Size, Color: Hex(0xcfd0d5)}
			if layout.Pad != nil {
				pad.Color = layout.Pad.Color
			}
			if f.Pad.Color != "" {
				c, err := ParseColor(f.Pad.Color)
				if err != nil {
					return fmt.Errorf("pad.color: %w", err)
				}
				pad.Color = c
			}
			layout.Pad = &pad
		}
	}

	if f.Camera != nil {
		if f.Camera.Position != nil {
			p, err := vector3("camera.position", f.Camera.Position)
			if err != nil {
				return err
			}
			layout.Camera.Position = p
		}
		if f.Camera.Target != nil {
			p, err := vector3("camera.target", f.Camera.Target)
			if err != nil {
				return err
			}
			layout.Camera.Target = p
		}
		if f.Camera.Fovy != 0 {
			layout.Camera.Fovy = f.Camera.Fovy
		}
	}

	if f.Light != nil {
		if f.Light.Position != nil {
			p, err := vector3("light.position", f.Light.Position)
			if err != nil {
				return err
			}
			layout.Light.Position = p
		}
		if f.Light.Intensity != nil {
			layout.Light.Intensity = *f.Light.Intensity
		}
		if f.Light.Ambient != nil {
			layout.Light.Ambient = *f.Light.Ambient
		}
	}

	if f.Shapes != nil {
		shapes, err := buildShapes(f.Shapes, placement.NewGrid(layout.GridSize))
		if err != nil {
			return err
		}
		layout.Shapes = shapes
	}
	return nil
}

func buildShapes(specs []shapeSpec, grid placement.Grid) ([]Shape, error) {
	shapes := make([]Shape, 0, len(specs))
	placed := make([]geometry.Box, 0, len(specs))

	for i, spec := range specs {
		field := fmt.Sprintf("shapes[%d]", i)

		size, err := vector3(field+".size", spec.Size)
		if err != nil {
			return nil, err
		}

		shape := Shape{Name: spec.Name, Size: size, Color: defaultShapeColor}
		if spec.Color != "" {
			c, err := ParseColor(spec.Color)
			if err != nil {
				return nil, fmt.Errorf("%s.color: %w", field, err)
			}
			shape.Color = c
		}

		switch len(spec.Position) {
		case 3:
			shape.Position = geometry.NewVector3(spec.Position[0], spec.Position[1], spec.Position[2])
		case 2:
			target := geometry.Vector3{X: spec.Position[0], Z: spec.Position[1]}
			shape.Position = placement.Resolve(grid, shape.Half(), target, placed)
		default:
			return nil, fmt.Errorf("%s.position: expected [x, y, z] or [x, z], got %d values", field, len(spec.Position))
		}

		shapes = append(shapes, shape)
		placed = append(placed, shape.Bounds())
	}
	return shapes, nil
}

func vector3(field string, values []float64) (geometry.Vector3, error) {
	if len(values) != 3 {
		return geometry.Vector3{}, fmt.Errorf("%s: expected 3 values, got %d", field, len(values))
	}
	return geometry.NewVector3(values[0], values[1], values[2]), nil
}

// Validate checks the layout for values the scene cannot work with.
func (l Layout) Validate() error {
	var errs []error
	if !positive(l.GridSize) {
		errs = append(errs, fmt.Errorf("grid_size must be positive and finite, got %v", l.GridSize))
	}
	if !positiveSize(l.Floor.Size) {
		errs = append(errs, fmt.Errorf("floor.size must be positive and finite, got %v", l.Floor.Size))
	}
	if l.Pad != nil && !positive(l.Pad.Size) {
		errs = append(errs, fmt.Errorf("pad.size must be finite, got %v", l.Pad.Size))
	}
	if !(l.Camera.Fovy > 0 && l.Camera.Fovy < 180) {
		errs = append(errs, fmt.Errorf("camera.fovy must be between 0 and 180, got %v", l.Camera.Fovy))
	}
	if !l.Camera.Position.IsFinite() || !l.Camera.Target.IsFinite() {
		errs = append(errs, fmt.Errorf("camera position and target must be finite, got %v and %v", l.Camera.Position, l.Camera.Target))
	} else if l.Camera.Position == l.Camera.Target {
		errs = append(errs, errors.New("camera.position must differ from camera.target"))
	}
	if !l.Light.Position.IsFinite() || math.IsNaN(l.Light.Intensity) || math.IsInf(l.Light.Intensity, 0) ||
		math.IsNaN(l.Light.Ambient) || math.IsInf(l.Light.Ambient, 0) {
		errs = append(errs, fmt.Errorf("light values must be finite, got %+v", l.Light))
	}
	if len(l.Shapes) == 0 {
		errs = append(errs, errors.New("layout has no shapes"))
	}
	for i, s := range l.Shapes {
		if !positiveSize(s.Size) {
			errs = append(errs, fmt.Errorf("shapes[%d].size must be positive and finite, got %v", i, s.Size))
		}
		if !s.Position.IsFinite() {
			errs = append(errs, fmt.Errorf("shapes[%d].position must be finite, got %v", i, s.Position))
		}
	}
	return errors.Join(errs...)
}

// positive rejects zero, negative, NaN and infinite values
func positive(f float64) bool {
	return f > 0 && !math.IsInf(f, 1)
}

func positiveSize(v geometry.Vector3) bool {
	return positive(v.X) && positive(v.Y) && positive(v.Z)
}
