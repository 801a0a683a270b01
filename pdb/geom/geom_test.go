package geom_test

import (
	"math"
	"testing"

	. "github.com/andrew-torda/pdbcodec/pdb/cmmn"
	. "github.com/andrew-torda/pdbcodec/pdb/geom"
)

// permuteXyz rotates x, y znd z for tests whose answers should not change
// when we move the axes around.
func permuteXyz(x Xyz) Xyz {
	x.X, x.Y, x.Z = x.Y, x.Z, x.X
	return x
}

// shift moves a point one unit along each axis.
func shift(x Xyz) Xyz { return Xyz{X: x.X + 1, Y: x.Y + 1, Z: x.Z + 1} }

// notApproxEqual returns true if x and y are not approximately equal.
func notApproxEqual(x, y float32) bool {
	diff := float64(x - y)
	return math.IsNaN(diff) || math.Abs(diff) > 0.00001
}

var disttests = []struct {
	x1, x2 Xyz
	res    float32
}{
	{Xyz{X: 3.80, Y: 0.00, Z: 0}, Xyz{X: 0, Y: 0, Z: 0}, 3.8},
	{Xyz{X: 0.00, Y: 0.00, Z: 0}, Xyz{X: 1, Y: 0, Z: 0}, 1},
	{Xyz{X: 3.00, Y: 4.00, Z: 0}, Xyz{X: 0, Y: 0, Z: 0}, 5},
	{Xyz{X: 1.00, Y: 2.00, Z: 3}, Xyz{X: 1, Y: 2, Z: 3}, 0},
}

func TestDist(t *testing.T) {
	for _, test := range disttests {
		x1, x2 := test.x1, test.x2
		for i := 0; i < 3; i++ {
			if d := Dist(x1, x2); notApproxEqual(d, test.res) {
				t.Errorf("Dist %v %v got %f wanted %f", x1, x2, d, test.res)
			}
			if d := Dist(x2, x1); notApproxEqual(d, test.res) {
				t.Errorf("Dist not symmetric for %v %v", x1, x2)
			}
			x1, x2 = permuteXyz(shift(x1)), permuteXyz(shift(x2))
		}
	}
}

var angletests = []struct {
	x1, x2, x3 Xyz
	res        float32
}{
	{Xyz{X: +1, Y: 0, Z: 0}, Xyz{X: 0, Y: 0, Z: 0}, Xyz{X: 0.9999, Y: 0, Z: 0}, 0},
	{Xyz{X: -0, Y: 1, Z: 0}, Xyz{X: 0, Y: 0, Z: 0}, Xyz{X: 1.0000, Y: 0, Z: 0}, math.Pi / 2},
	{Xyz{X: -1, Y: 0, Z: 0}, Xyz{X: 0, Y: 0, Z: 0}, Xyz{X: 1.0000, Y: 0, Z: 0}, math.Pi},
	{Xyz{X: +0, Y: 1, Z: 0}, Xyz{X: 0, Y: 0, Z: 0}, Xyz{X: 0.1000, Y: 0, Z: 0}, math.Pi / 2},
	{Xyz{X: +0, Y: 1, Z: 0}, Xyz{X: 0, Y: 0, Z: 0}, Xyz{X: 9.9000, Y: 0, Z: 0}, math.Pi / 2},
	{Xyz{X: -1, Y: 0, Z: 0}, Xyz{X: 0, Y: 0, Z: 0}, Xyz{X: 1.0000, Y: 1, Z: 0}, math.Pi * 3 / 4},
	{Xyz{X: -1, Y: 0, Z: 0}, Xyz{X: 0, Y: 0, Z: 0}, Xyz{X: 9.9, Y: 9.9, Z: 0}, math.Pi * 3 / 4},
}

func TestAngle(t *testing.T) {
	for _, test := range angletests {
		x1, x2, x3 := test.x1, test.x2, test.x3
		for i := 0; i < 3; i++ {
			if a, err := Angle(x1, x2, x3); err != nil {
				t.Errorf("%v error with %v %v %v", err, x1, x2, x3)
			} else if notApproxEqual(a, test.res) {
				t.Errorf("Angle got %f wanted %f, %v, %v, %v", a, test.res, x1, x2, x3)
			}
			x1, x2, x3 = permuteXyz(x1), permuteXyz(x2), permuteXyz(x3)
		}
	}
	if _, err := Angle(Xyz{}, Xyz{}, Xyz{X: 1}); err != ErrAngle {
		t.Error("two identical points should give ErrAngle, got", err)
	}
}

var dhdrltests = []struct {
	x1, x2, x3, x4 Xyz
	res            float32
}{
	{Xyz{X: 0, Y: 1, Z: 0}, Xyz{X: 1, Y: 0, Z: 0}, Xyz{X: 2, Y: 0, Z: 0}, Xyz{X: 3, Y: 1, Z: 0}, 0},
	{Xyz{X: 0, Y: 1, Z: 0}, Xyz{X: 1, Y: 0, Z: 0}, Xyz{X: 2, Y: 0, Z: 0}, Xyz{X: 3, Y: 1, Z: 1e-5}, 0},
	{Xyz{X: 0, Y: 1, Z: 0}, Xyz{X: 1, Y: 0, Z: 0}, Xyz{X: 2, Y: 0, Z: 0}, Xyz{X: 3, Y: -1, Z: 0}, math.Pi},
	{Xyz{X: 0, Y: 1, Z: 0}, Xyz{X: 1, Y: 0, Z: 0}, Xyz{X: 2, Y: 0, Z: 0}, Xyz{X: 3, Y: 0, Z: 1}, -math.Pi / 2},
	{Xyz{X: 0, Y: 1, Z: 0}, Xyz{X: 1, Y: 0, Z: 0}, Xyz{X: 2, Y: 0, Z: 0}, Xyz{X: 3, Y: 0, Z: -1}, math.Pi / 2},
	{Xyz{X: 0, Y: 1, Z: 0}, Xyz{X: 1, Y: 0, Z: 0}, Xyz{X: 2, Y: 0, Z: 0}, Xyz{X: 3, Y: 1, Z: -1}, math.Pi / 4},
	{Xyz{X: 0, Y: 1, Z: 0}, Xyz{X: 1, Y: 0, Z: 0}, Xyz{X: 2, Y: 0, Z: 0}, Xyz{X: 3, Y: -1, Z: -1}, math.Pi * (3.0 / 4.0)},
}

func TestDihedral(t *testing.T) {
	for _, test := range dhdrltests {
		x1, x2, x3, x4 := test.x1, test.x2, test.x3, test.x4
		const emsg = "error with %v %v %v %v wanted: %.3g got: %.3g"
		for i := 0; i < 3; i++ {
			if a := Dihedral(x1, x2, x3, x4); notApproxEqual(a, test.res) {
				t.Errorf(emsg, x1, x2, x3, x4, test.res, a)
			}
			x1, x2, x3, x4 = permuteXyz(x1), permuteXyz(x2), permuteXyz(x3), permuteXyz(x4)
		}
	}
}

func TestAngleDiff(t *testing.T) {
	var tests = []struct{ a, b, want float64 }{
		{0, 0, 0},
		{10, -10, 20},
		{179, -179, 2},
		{-170, 190, 0},
		{0, 180, 180},
	}
	for _, tt := range tests {
		if got := AngleDiff(tt.a, tt.b); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("AngleDiff(%g, %g) = %g want %g", tt.a, tt.b, got, tt.want)
		}
	}
	if d := Deg(math.Pi / 2); math.Abs(d-90) > 1e-4 {
		t.Error("Deg(pi/2) gave", d)
	}
}
