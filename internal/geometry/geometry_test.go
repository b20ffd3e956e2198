package geometry

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestRect_Intersects(t *testing.T) {
	type tc struct {
		a, b Rect
		want bool
	}

	tests := map[string]tc{
		"overlapping": {
			a:    NewRect(0, 0, 100, 100),
			b:    NewRect(50, 50, 100, 100),
			want: true,
		},
		"touching right edge": {
			a:    NewRect(0, 0, 100, 100),
			b:    NewRect(100, 0, 50, 50),
			want: false,
		},
		"touching bottom edge": {
			a:    NewRect(0, 0, 100, 100),
			b:    NewRect(0, 100, 100, 100),
			want: false,
		},
		"touching corner": {
			a:    NewRect(0, 0, 10, 10),
			b:    NewRect(10, 10, 10, 10),
			want: false,
		},
		"contained": {
			a:    NewRect(0, 0, 100, 100),
			b:    NewRect(10, 10, 5, 5),
			want: true,
		},
		"disjoint": {
			a:    NewRect(0, 0, 10, 10),
			b:    NewRect(50, 50, 10, 10),
			want: false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects() = %v, want %v", got, tt.want)
			}
			if got := tt.b.Intersects(tt.a); got != tt.want {
				t.Errorf("Intersects() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRect_Within(t *testing.T) {
	room := NewRect(0, 0, 800, 500)

	type tc struct {
		r    Rect
		want bool
	}

	tests := map[string]tc{
		"inside":          {r: NewRect(10, 10, 100, 100), want: true},
		"flush to corner": {r: NewRect(0, 0, 800, 500), want: true},
		"past right edge": {r: NewRect(750, 0, 100, 100), want: false},
		"negative x":      {r: NewRect(-1, 0, 10, 10), want: false},
		"past bottom":     {r: NewRect(0, 450, 10, 51), want: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.r.Within(room); got != tt.want {
				t.Errorf("Within() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRect_Union(t *testing.T) {
	got := NewRect(0, 0, 10, 10).Union(NewRect(20, 5, 10, 20))
	want := NewRect(0, 0, 30, 25)
	if got != want {
		t.Errorf("Union() = %+v, want %+v", got, want)
	}

	if got := (Rect{}).Union(want); got != want {
		t.Errorf("Union() with empty = %+v, want %+v", got, want)
	}
}

func TestSnapToGrid(t *testing.T) {
	type tc struct {
		v, grid float64
		want    float64
	}

	tests := map[string]tc{
		"exact multiple":      {v: 100, grid: 50, want: 100},
		"rounds down":         {v: 74, grid: 50, want: 50},
		"rounds up":           {v: 76, grid: 50, want: 100},
		"half rounds up":      {v: 75, grid: 50, want: 100},
		"negative half":       {v: -25, grid: 50, want: 0},
		"negative":            {v: -30, grid: 50, want: -50},
		"fractional grid":     {v: 0.26, grid: 0.5, want: 0.5},
		"zero grid unchanged": {v: 13.7, grid: 0, want: 13.7},
		"negative grid":       {v: 13.7, grid: -5, want: 13.7},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := SnapToGrid(tt.v, tt.grid); math.Abs(got-tt.want) > eps {
				t.Errorf("SnapToGrid(%v, %v) = %v, want %v", tt.v, tt.grid, got, tt.want)
			}
		})
	}
}

func TestSnapToGrid_Idempotent(t *testing.T) {
	grids := []float64{1, 5, 7.5, 50, 0.1, 33.3}
	for _, g := range grids {
		for v := -500.0; v <= 500; v += 3.7 {
			once := SnapToGrid(v, g)
			twice := SnapToGrid(once, g)
			if once != twice {
				t.Fatalf("SnapToGrid not idempotent for v=%v g=%v: %v then %v", v, g, once, twice)
			}
		}
	}
}

func TestCeilToGrid(t *testing.T) {
	if got := CeilToGrid(350, 50); got != 400 {
		t.Errorf("CeilToGrid(350, 50) = %v, want 400", got)
	}
	if got := CeilToGrid(400, 50); got != 400 {
		t.Errorf("CeilToGrid(400, 50) = %v, want 400", got)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(-5, 0, 10); got != 0 {
		t.Errorf("Clamp below = %v, want 0", got)
	}
	if got := Clamp(15, 0, 10); got != 10 {
		t.Errorf("Clamp above = %v, want 10", got)
	}
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp inside = %v, want 5", got)
	}
	if got := Clamp(5, 10, 0); got != 10 {
		t.Errorf("Clamp inverted bounds = %v, want 10", got)
	}
}

func TestMatrix2D_RotateDegreesQuarterTurnsAreExact(t *testing.T) {
	x, y := RotateDegrees(90).TransformPoint(1, 0)
	if x != 0 || y != 1 {
		t.Errorf("rotate 90 of (1,0) = (%v,%v), want (0,1)", x, y)
	}
	x, y = RotateDegrees(-90).TransformPoint(1, 0)
	if x != 0 || y != -1 {
		t.Errorf("rotate -90 of (1,0) = (%v,%v), want (0,-1)", x, y)
	}
	x, y = RotateDegrees(180).TransformPoint(3, 4)
	if x != -3 || y != -4 {
		t.Errorf("rotate 180 of (3,4) = (%v,%v), want (-3,-4)", x, y)
	}
}

func TestMatrix2D_InvertRoundTrip(t *testing.T) {
	m := Translate(150, 80).Multiply(Scale(0.7, 0.7)).Multiply(RotateDegrees(30))
	inv := m.Invert()

	x, y := m.TransformPoint(12.5, -40)
	bx, by := inv.TransformPoint(x, y)
	if math.Abs(bx-12.5) > eps || math.Abs(by+40) > eps {
		t.Errorf("inverse round trip = (%v,%v), want (12.5,-40)", bx, by)
	}

	if got := (Matrix2D{}).Invert(); got != Identity() {
		t.Errorf("singular Invert() = %v, want identity", got)
	}
}

func TestRotateAbout_KeepsPivotFixed(t *testing.T) {
	m := RotateAbout(90, 50, 20)
	x, y := m.TransformPoint(50, 20)
	if math.Abs(x-50) > eps || math.Abs(y-20) > eps {
		t.Errorf("pivot moved to (%v,%v)", x, y)
	}
	x, y = m.TransformPoint(60, 20)
	if math.Abs(x-50) > eps || math.Abs(y-30) > eps {
		t.Errorf("rotated point = (%v,%v), want (50,30)", x, y)
	}
}
