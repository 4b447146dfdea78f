package geometry

import (
	"math"
	"testing"
)

func TestBoxTopAndBottom(t *testing.T) {
	b := NewBox(NewVector3(0, 50, 0), NewVector3(100, 100, 100))

	if b.Top() != 100 {
		t.Errorf("Top failed: expected 100, got %v", b.Top())
	}
	if b.Bottom() != 0 {
		t.Errorf("Bottom failed: expected 0, got %v", b.Bottom())
	}
	if b.Size() != NewVector3(100, 100, 100) {
		t.Errorf("Size failed: got %v", b.Size())
	}
}

func TestBoxOverlapsXZ(t *testing.T) {
	cube := NewVector3(100, 100, 100)

	tests := []struct {
		name string
		a, b Box
		want bool
	}{
		{
			name: "same footprint",
			a:    NewBox(NewVector3(0, 50, 0), cube),
			b:    NewBox(NewVector3(0, 50, 0), cube),
			want: true,
		},
		{
			name: "partial overlap",
			a:    NewBox(NewVector3(0, 50, 0), cube),
			b:    NewBox(NewVector3(90, 50, -90), cube),
			want: true,
		},
		{
			name: "faces touch on x",
			a:    NewBox(NewVector3(0, 50, 0), cube),
			b:    NewBox(NewVector3(100, 50, 0), cube),
			want: false,
		},
		{
			name: "faces touch on z",
			a:    NewBox(NewVector3(0, 50, 0), cube),
			b:    NewBox(NewVector3(0, 50, -100), cube),
			want: false,
		},
		{
			name: "far apart",
			a:    NewBox(NewVector3(-250, 50, 0), cube),
			b:    NewBox(NewVector3(0, 50, 0), cube),
			want: false,
		},
		{
			name: "overlap on x only",
			a:    NewBox(NewVector3(0, 50, 0), cube),
			b:    NewBox(NewVector3(10, 50, 300), cube),
			want: false,
		},
		{
			name: "height is ignored",
			a:    NewBox(NewVector3(0, 50, 0), cube),
			b:    NewBox(NewVector3(0, 5000, 0), cube),
			want: true,
		},
		{
			name: "unequal sizes",
			a:    NewBox(NewVector3(0, 100, 0), NewVector3(200, 200, 100)),
			b:    NewBox(NewVector3(140, 50, 0), cube),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.OverlapsXZ(tt.b); got != tt.want {
				t.Errorf("OverlapsXZ(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got := tt.b.OverlapsXZ(tt.a); got != tt.want {
				t.Errorf("OverlapsXZ is not symmetric for %v, %v", tt.a, tt.b)
			}
		})
	}
}

func TestBoxFacesWinding(t *testing.T) {
	b := NewBox(NewVector3(10, 20, 30), NewVector3(4, 6, 8))

	for i, f := range b.Faces() {
		edge1 := f.Corners[1].Sub(f.Corners[0])
		edge2 := f.Corners[2].Sub(f.Corners[0])
		if edge1.Cross(edge2).Dot(f.Normal) <= 0 {
			t.Errorf("face %d is not counter-clockwise from outside", i)
		}

		// Every corner must lie on the face plane.
		for _, c := range f.Corners {
			d := c.Sub(b.Center).Dot(f.Normal)
			want := b.Half.Abs().Dot(f.Normal.Abs())
			if math.Abs(d-want) > 1e-9 {
				t.Errorf("face %d corner %v off plane: %v != %v", i, c, d, want)
			}
		}
	}
}

func TestBoxEdges(t *testing.T) {
	b := NewBox(NewVector3(0, 1, 0), NewVector3(2, 2, 2))

	for i, e := range b.Edges() {
		d := e[1].Sub(e[0]).Abs()
		axes := 0
		for _, c := range []float64{d.X, d.Y, d.Z} {
			if c != 0 {
				axes++
				if c != 2 {
					t.Errorf("edge %d has length %v, want 2", i, c)
				}
			}
		}
		if axes != 1 {
			t.Errorf("edge %d is not axis aligned: %v", i, e)
		}
	}

	grown := b.Grow(0.5)
	if grown.Size() != NewVector3(3, 3, 3) || grown.Center != b.Center {
		t.Errorf("Grow(0.5) = %+v", grown)
	}
}
