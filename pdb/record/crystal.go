package record

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/andrew-torda/matrix"
	"github.com/andrew-torda/pdbcodec/pdb/cmmn"
)

// UnitCell is CRYST1.
type UnitCell struct {
	raw
	A, B, C            float64
	Alpha, Beta, Gamma float64
	SGroup             string
	Z                  cmmn.NullInt
}

func (*UnitCell) Tag() string { return "CRYST1" }

func (u *UnitCell) Parse(line string) error {
	c := cmmn.NewCols("CRYST1", line)
	u.A = c.Float(7, 15)
	u.B = c.Float(16, 24)
	u.C = c.Float(25, 33)
	u.Alpha = c.Float(34, 40)
	u.Beta = c.Float(41, 47)
	u.Gamma = c.Float(48, 54)
	u.SGroup = c.Str(56, 66)
	u.Z = c.NullInt(67, 70)
	u.keep(line)
	return c.Err()
}

func (u *UnitCell) Format() ([]string, error) {
	return one(trimmed("CRYST1%9.3f%9.3f%9.3f%7.2f%7.2f%7.2f %-11s%4s",
		u.A, u.B, u.C, u.Alpha, u.Beta, u.Gamma, u.SGroup, u.Z.Fmt(4)))
}

// Kinds of transform
const (
	OrigX = "ORIGX" // orthogonal to submitted coordinates
	Scale = "SCALE" // orthogonal to fractional
	MTrix = "MTRIX" // non-crystallographic symmetry
)

// Transform is one row of an ORIGXn, SCALEn or MTRIXn family. N is the
// row, from 1 to 3.
type Transform struct {
	raw
	Kind   string
	N      int
	Serial int    // MTRIX only
	IGiven string // MTRIX only, "1" if the copy is already in the file
	M      [3]float64
	T      float64
}

// NewTransform is for one of the families above, with the row number
// taken from the last character of the record name.
func NewTransform(tag string) (*Transform, error) {
	if len(tag) != 6 {
		return nil, errors.New("bad transform record name " + tag)
	}
	n, err := strconv.Atoi(tag[5:])
	if err != nil || n < 1 || n > 3 {
		return nil, errors.New("bad transform record name " + tag)
	}
	switch tag[:5] {
	case OrigX, Scale, MTrix:
	default:
		return nil, errors.New("bad transform record name " + tag)
	}
	return &Transform{Kind: tag[:5], N: n}, nil
}

func (t *Transform) Tag() string { return fmt.Sprintf("%s%d", t.Kind, t.N) }

func (t *Transform) Parse(line string) error {
	c := cmmn.NewCols(t.Tag(), line)
	if t.Kind == MTrix {
		t.Serial = c.Int(8, 10)
		t.IGiven = c.Str(60, 60)
	}
	t.M[0] = c.Float(11, 20)
	t.M[1] = c.Float(21, 30)
	t.M[2] = c.Float(31, 40)
	t.T = c.Float(46, 55)
	t.keep(line)
	return c.Err()
}

func (t *Transform) Format() ([]string, error) {
	if t.Kind == MTrix {
		return one(trimmed("MTRIX%d %3d%10.6f%10.6f%10.6f     %10.5f    %1s",
			t.N, t.Serial, t.M[0], t.M[1], t.M[2], t.T, t.IGiven))
	}
	return one(trimmed("%s%d    %10.6f%10.6f%10.6f     %10.5f",
		t.Kind, t.N, t.M[0], t.M[1], t.M[2], t.T))
}

// TransformMatrix puts the rows of one family into a 3 x 4 matrix with
// the translation in the last column. Missing rows are left as the
// identity.
func TransformMatrix(rows []*Transform) *matrix.FMatrix2d {
	m := matrix.NewFMatrix2d(3, 4)
	for i := 0; i < 3; i++ {
		m.Mat[i][i] = 1
	}
	for _, r := range rows {
		if r.N < 1 || r.N > 3 {
			continue
		}
		row := m.Mat[r.N-1]
		for j := 0; j < 3; j++ {
			row[j] = float32(r.M[j])
		}
		row[3] = float32(r.T)
	}
	return m
}

// Apply transforms a coordinate with a matrix from TransformMatrix.
func Apply(m *matrix.FMatrix2d, xyz cmmn.Xyz) cmmn.Xyz {
	v := [3]float32{xyz.X, xyz.Y, xyz.Z}
	var out [3]float32
	for i := 0; i < 3; i++ {
		r := m.Mat[i]
		out[i] = r[0]*v[0] + r[1]*v[1] + r[2]*v[2] + r[3]
	}
	return cmmn.Xyz{X: out[0], Y: out[1], Z: out[2]}
}
