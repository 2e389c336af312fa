// Package geom holds the vector math shared by the gravity, locomotion and
// camera packages: the six signed world axes and orientation helpers.
package geom

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Axis is one of the six signed principal world axes.
type Axis int

// Enumeration order is also the tie-break order of ClosestAxis.
const (
	PosX Axis = iota
	NegX
	PosY
	NegY
	PosZ
	NegZ
)

const (
	// MinLength is the shortest vector ClosestAxis will snap.
	MinLength = 1e-6
	// AngleEpsilon is how close two angles (radians) must be to count as a tie.
	AngleEpsilon = 1e-5
)

var axisVectors = [...]rl.Vector3{
	PosX: {X: 1},
	NegX: {X: -1},
	PosY: {Y: 1},
	NegY: {Y: -1},
	PosZ: {Z: 1},
	NegZ: {Z: -1},
}

var axisNames = [...]string{"+X", "-X", "+Y", "-Y", "+Z", "-Z"}

// Axes returns the six axes in enumeration order.
func Axes() []Axis {
	return []Axis{PosX, NegX, PosY, NegY, PosZ, NegZ}
}

func (a Axis) Valid() bool {
	return a >= PosX && a <= NegZ
}

// Vector returns the unit vector of the axis.
func (a Axis) Vector() rl.Vector3 {
	if !a.Valid() {
		return rl.Vector3{}
	}
	return axisVectors[a]
}

// Opposite returns the axis pointing the other way.
func (a Axis) Opposite() Axis {
	return a ^ 1
}

func (a Axis) String() string {
	if !a.Valid() {
		return "invalid"
	}
	return axisNames[a]
}

// ClosestAxis returns the axis with the smallest angle to v. v need not be
// normalized. Ties keep the axis that comes first in enumeration order. A
// near-zero v returns NegY and false.
func ClosestAxis(v rl.Vector3) (Axis, bool) {
	length := rl.Vector3Length(v)
	if length < MinLength || math.IsNaN(float64(length)) {
		return NegY, false
	}
	dir := rl.Vector3Scale(v, 1/length)

	best := PosX
	bestAngle := float32(math.MaxFloat32)
	for _, a := range Axes() {
		angle := rl.Vector3Angle(dir, axisVectors[a])
		if angle < bestAngle-AngleEpsilon {
			best = a
			bestAngle = angle
		}
	}
	return best, true
}

// AxisOf reports which axis v is, if it is one within tolerance.
func AxisOf(v rl.Vector3) (Axis, bool) {
	for _, a := range Axes() {
		if rl.Vector3Distance(v, axisVectors[a]) < 1e-4 {
			return a, true
		}
	}
	return NegY, false
}
