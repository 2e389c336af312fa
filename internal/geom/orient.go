package geom

import (
	"github.com/go-gl/mathgl/mgl32"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// NearZeroSqr is the squared length under which a direction is treated as
// degenerate.
const NearZeroSqr = 1e-8

// NearZero reports whether v is too short to define a direction.
func NearZero(v rl.Vector3) bool {
	return rl.Vector3LengthSqr(v) < NearZeroSqr
}

// Project returns the component of v along onto.
func Project(v, onto rl.Vector3) rl.Vector3 {
	denom := rl.Vector3DotProduct(onto, onto)
	if denom < NearZeroSqr {
		return rl.Vector3{}
	}
	return rl.Vector3Scale(onto, rl.Vector3DotProduct(v, onto)/denom)
}

// ProjectOnPlane removes the component of v along normal.
func ProjectOnPlane(v, normal rl.Vector3) rl.Vector3 {
	return rl.Vector3Subtract(v, Project(v, normal))
}

// FromToRotation is the minimal rotation taking direction from onto
// direction to. Opposite directions rotate half a turn about some
// perpendicular axis. Degenerate input yields identity.
func FromToRotation(from, to rl.Vector3) rl.Quaternion {
	if NearZero(from) || NearZero(to) {
		return rl.QuaternionIdentity()
	}
	q := mgl32.QuatBetweenVectors(toMgl(from), toMgl(to))
	return fromMglQuat(q.Normalize())
}

// LookRotation builds the orientation whose forward is forward and whose up
// is as close to up as possible. Reports false when forward is degenerate or
// parallel to up.
func LookRotation(forward, up rl.Vector3) (rl.Quaternion, bool) {
	if NearZero(forward) || NearZero(up) {
		return rl.QuaternionIdentity(), false
	}
	f := rl.Vector3Normalize(forward)
	r := rl.Vector3CrossProduct(up, f)
	if NearZero(r) {
		return rl.QuaternionIdentity(), false
	}
	r = rl.Vector3Normalize(r)
	u := rl.Vector3CrossProduct(f, r)

	basis := mgl32.Mat3FromCols(toMgl(r), toMgl(u), toMgl(f))
	q := mgl32.Mat4ToQuat(basis.Mat4()).Normalize()
	return fromMglQuat(q), true
}

// Rotate applies q to v.
func Rotate(q rl.Quaternion, v rl.Vector3) rl.Vector3 {
	return rl.Vector3RotateByQuaternion(v, q)
}

// Compose returns the rotation that applies inner first, then outer.
func Compose(outer, inner rl.Quaternion) rl.Quaternion {
	return rl.QuaternionNormalize(rl.QuaternionMultiply(outer, inner))
}

// slerpSnap is the SameRotation tolerance under which Slerp lands on its
// target, so repeated smoothing converges instead of stalling in float32.
const slerpSnap = 1e-6

// Slerp interpolates along the shorter arc. t is clamped to [0,1].
func Slerp(from, to rl.Quaternion, t float32) rl.Quaternion {
	if t <= 0 {
		return from
	}
	if t >= 1 || SameRotation(from, to, slerpSnap) {
		return to
	}
	a, b := toMglQuat(from), toMglQuat(to)
	if a.Dot(b) < 0 {
		b = b.Scale(-1)
	}
	return fromMglQuat(mgl32.QuatSlerp(a, b, t).Normalize())
}

// SameRotation reports whether a and b represent the same orientation
// (q and -q are equal rotations).
func SameRotation(a, b rl.Quaternion, tolerance float32) bool {
	dot := a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
	if dot < 0 {
		dot = -dot
	}
	return 1-dot < tolerance
}

func toMgl(v rl.Vector3) mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

func toMglQuat(q rl.Quaternion) mgl32.Quat {
	return mgl32.Quat{W: q.W, V: mgl32.Vec3{q.X, q.Y, q.Z}}
}

func fromMglQuat(q mgl32.Quat) rl.Quaternion {
	return rl.Quaternion{X: q.V[0], Y: q.V[1], Z: q.V[2], W: q.W}
}
