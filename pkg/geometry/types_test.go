package geometry

import (
	"testing"
)

func TestRectIntUnion(t *testing.T) {
	tests := []struct {
		name string
		a, b RectInt
		want RectInt
	}{
		{
			name: "disjoint",
			a:    NewRectInt(0, 0, 2, 2),
			b:    NewRectInt(4, 4, 2, 2),
			want: NewRectInt(0, 0, 6, 6),
		},
		{
			name: "contained",
			a:    NewRectInt(0, 0, 10, 10),
			b:    NewRectInt(2, 2, 3, 3),
			want: NewRectInt(0, 0, 10, 10),
		},
		{
			name: "empty left operand",
			a:    RectInt{},
			b:    NewRectInt(1, 2, 3, 4),
			want: NewRectInt(1, 2, 3, 4),
		},
		{
			name: "empty right operand",
			a:    NewRectInt(1, 2, 3, 4),
			b:    RectInt{},
			want: NewRectInt(1, 2, 3, 4),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Union(tt.b); got != tt.want {
				t.Errorf("Union() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRectIntIntersect(t *testing.T) {
	tests := []struct {
		name string
		a, b RectInt
		want RectInt
	}{
		{
			name: "partial overlap",
			a:    NewRectInt(0, 0, 4, 4),
			b:    NewRectInt(2, 2, 4, 4),
			want: NewRectInt(2, 2, 2, 2),
		},
		{
			name: "no overlap",
			a:    NewRectInt(0, 0, 2, 2),
			b:    NewRectInt(5, 5, 2, 2),
			want: RectInt{},
		},
		{
			name: "touching edges",
			a:    NewRectInt(0, 0, 2, 2),
			b:    NewRectInt(2, 0, 2, 2),
			want: RectInt{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersect(tt.b); got != tt.want {
				t.Errorf("Intersect() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRectIntContains(t *testing.T) {
	r := NewRectInt(1, 1, 3, 2)

	inside := []PointInt{{1, 1}, {3, 1}, {3, 2}}
	for _, p := range inside {
		if !r.Contains(p) {
			t.Errorf("Contains(%+v) = false, want true", p)
		}
	}
	outside := []PointInt{{0, 1}, {4, 1}, {1, 3}, {-1, -1}}
	for _, p := range outside {
		if r.Contains(p) {
			t.Errorf("Contains(%+v) = true, want false", p)
		}
	}
}

func TestAffineScaleInverse(t *testing.T) {
	scales := []float64{1, 2, 12, 15.5}
	for _, s := range scales {
		fwd := Scale(s, s)
		inv, ok := fwd.Inverse()
		if !ok {
			t.Fatalf("Scale(%v) has no inverse", s)
		}

		p := NewPoint2D(7, 13)
		got := inv.Apply(fwd.Apply(p))
		if diff := got.Sub(p); diff.X > 1e-9 || diff.X < -1e-9 || diff.Y > 1e-9 || diff.Y < -1e-9 {
			t.Errorf("inverse roundtrip at scale %v = %+v, want %+v", s, got, p)
		}
	}
}

func TestAffineSingularInverse(t *testing.T) {
	if _, ok := Scale(0, 0).Inverse(); ok {
		t.Error("Inverse() of zero scale reported ok")
	}
}

func TestPoint2DTruncate(t *testing.T) {
	tests := []struct {
		p    Point2D
		want PointInt
	}{
		{NewPoint2D(2.9, 3.1), PointInt{X: 2, Y: 3}},
		{NewPoint2D(0, 0), PointInt{X: 0, Y: 0}},
		{NewPoint2D(-0.5, -1.5), PointInt{X: -1, Y: -2}},
	}
	for _, tt := range tests {
		if got := tt.p.Truncate(); got != tt.want {
			t.Errorf("Truncate(%+v) = %+v, want %+v", tt.p, got, tt.want)
		}
	}
}
