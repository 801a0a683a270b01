// Package geom has the bits of geometry we need to check what a file
// says against its coordinates. Bond lengths for LINK and SSBOND and
// the omega angle for CISPEP.
// Angles are in radians, except where a function says otherwise.
package geom

import (
	"errors"
	"math"

	"github.com/andrew-torda/pdbcodec/pdb/cmmn"
)

// ErrAngle is returned when three points do not give a valid angle,
// as when two of them are the same.
var ErrAngle = errors.New("broken angle")

// diff gets the difference of two vectors
func diff(start, end cmmn.Xyz) cmmn.Xyz {
	return cmmn.Xyz{X: end.X - start.X, Y: end.Y - start.Y, Z: end.Z - start.Z}
}

// vecProd returns the vector product of two vectors
func vecProd(u, v cmmn.Xyz) (res cmmn.Xyz) {
	res.X = u.Y*v.Z - u.Z*v.Y
	res.Y = u.Z*v.X - u.X*v.Z
	res.Z = u.X*v.Y - u.Y*v.X
	return res
}

// sclrProd returns the dot / scalar product of two vectors
func sclrProd(u, v cmmn.Xyz) float32 { return u.X*v.X + u.Y*v.Y + u.Z*v.Z }

func len2(v cmmn.Xyz) float32 { return sclrProd(v, v) }

func vecLen(v cmmn.Xyz) float32 { return float32(math.Sqrt(float64(len2(v)))) }

// Dist is the distance between two points.
func Dist(a, b cmmn.Xyz) float32 { return vecLen(diff(a, b)) }

// Angle takes three points and returns the angle at the middle one.
func Angle(a, b, c cmmn.Xyz) (float32, error) {
	x1 := diff(b, a)
	x2 := diff(b, c)
	cosalpha := float64(sclrProd(x1, x2)) / (math.Sqrt(float64(len2(x1))) * math.Sqrt(float64(len2(x2))))
	switch {
	case cosalpha > 1 && cosalpha < 1.01: // numerical noise
		return 0, nil
	case cosalpha < -1 && cosalpha > -1.01:
		return math.Pi, nil
	case math.IsNaN(cosalpha) || cosalpha < -1 || cosalpha > 1:
		return float32(math.NaN()), ErrAngle
	}
	return float32(math.Acos(cosalpha)), nil
}

// Dihedral takes four points and returns the dihedral angle about the
// middle two, from -pi to pi.
func Dihedral(ii, jj, kk, ll cmmn.Xyz) float32 {
	rij := diff(ii, jj)
	rkj := diff(kk, jj)
	rkl := diff(kk, ll)
	along := func(v cmmn.Xyz) cmmn.Xyz { // component of v along rkj
		t := sclrProd(v, rkj) / len2(rkj)
		return cmmn.Xyz{X: t * rkj.X, Y: t * rkj.Y, Z: t * rkj.Z}
	}
	rim := diff(rij, along(rij))
	rln := diff(along(rkl), rkl)

	tCos := float64(sclrProd(rim, rln) / (vecLen(rim) * vecLen(rln)))
	var tau float32
	switch {
	case tCos > 1: // numerical errors can catch us
		tau = 0
	case tCos < -1:
		tau = math.Pi
	default:
		tau = float32(math.Acos(tCos))
	}
	if sclrProd(rij, vecProd(rkj, rkl)) >= 0 {
		return tau
	}
	return -tau
}

// Deg converts radians to degrees.
func Deg(rad float32) float64 { return float64(rad) * 180 / math.Pi }

// AngleDiff is the difference between two angles in degrees, folded
// into 0 to 180.
func AngleDiff(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 360)
	if d > 180 {
		d = 360 - d
	}
	return d
}
