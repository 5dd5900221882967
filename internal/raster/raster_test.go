package raster

import (
	"reflect"
	"testing"

	"github.com/gogpu/caricon/internal/path"
)

type span struct{ y, x1, x2 int }

func collect(r *Rasterizer, polys []path.Polygon, rule FillRule) []span {
	var got []span
	r.Fill(polys, rule, func(y, x1, x2 int) {
		got = append(got, span{y, x1, x2})
	})
	return got
}

func square(x0, y0, x1, y1 float64) path.Polygon {
	return path.Polygon{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
}

func TestFillSquare(t *testing.T) {
	r := NewRasterizer(10, 10)
	got := collect(r, []path.Polygon{square(1, 1, 4, 4)}, FillRuleNonZero)
	want := []span{{1, 1, 4}, {2, 1, 4}, {3, 1, 4}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("spans = %v, want %v", got, want)
	}
}

func TestFillRules(t *testing.T) {
	polys := []path.Polygon{square(0, 0, 4, 1), square(2, 0, 6, 1)}

	tests := []struct {
		name string
		rule FillRule
		want []span
	}{
		{"non-zero unions", FillRuleNonZero, []span{{0, 0, 6}}},
		{"even-odd excludes overlap", FillRuleEvenOdd, []span{{0, 0, 2}, {0, 4, 6}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect(NewRasterizer(8, 1), polys, tt.rule)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("spans = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFillOppositeWindingCancels(t *testing.T) {
	outer := square(0, 0, 6, 1)
	// Counter-clockwise hole.
	hole := path.Polygon{{X: 2, Y: 0}, {X: 2, Y: 1}, {X: 4, Y: 1}, {X: 4, Y: 0}}

	got := collect(NewRasterizer(8, 1), []path.Polygon{outer, hole}, FillRuleNonZero)
	want := []span{{0, 0, 2}, {0, 4, 6}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("spans = %v, want %v", got, want)
	}
}

func TestFillClipsToBounds(t *testing.T) {
	r := NewRasterizer(2, 2)
	got := collect(r, []path.Polygon{square(-2, -2, 3, 3)}, FillRuleNonZero)
	want := []span{{0, 0, 2}, {1, 0, 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("spans = %v, want %v", got, want)
	}
}

func TestFillTriangleSamplesCentres(t *testing.T) {
	// Right triangle with the hypotenuse x = y.
	tri := path.Polygon{{X: 0, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}}
	got := collect(NewRasterizer(4, 4), []path.Polygon{tri}, FillRuleNonZero)
	// Row 0 samples exactly on the hypotenuse, which is exclusive.
	want := []span{{1, 0, 1}, {2, 0, 2}, {3, 0, 3}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("spans = %v, want %v", got, want)
	}
}

func TestFillDegenerate(t *testing.T) {
	r := NewRasterizer(4, 4)
	tests := []struct {
		name  string
		polys []path.Polygon
	}{
		{"nil", nil},
		{"flat", []path.Polygon{{{X: 0, Y: 1}, {X: 3, Y: 1}, {X: 2, Y: 1}}}},
		{"thinner than a pixel centre", []path.Polygon{square(1.6, 0, 1.9, 4)}},
		{"outside", []path.Polygon{square(10, 10, 12, 12)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := collect(r, tt.polys, FillRuleNonZero); len(got) != 0 {
				t.Errorf("spans = %v, want none", got)
			}
		})
	}
}

func TestNewEdgeDirection(t *testing.T) {
	down := NewEdge(path.Point{X: 0, Y: 0}, path.Point{X: 2, Y: 4})
	up := NewEdge(path.Point{X: 2, Y: 4}, path.Point{X: 0, Y: 0})
	if down.Dir() != 1 || up.Dir() != -1 {
		t.Errorf("Dir() = %d, %d, want 1, -1", down.Dir(), up.Dir())
	}
	if x := up.XAtY(2); x != 1 {
		t.Errorf("XAtY(2) = %v, want 1", x)
	}
}
