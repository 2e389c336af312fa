package world

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	frustumNear = 0.1
	frustumFar  = 1000.0
)

// Frustum is the six clip planes of a camera: left, right, bottom, top,
// near, far.
type Frustum struct {
	planes [6]Plane
}

// Plane is ax + by + cz + d = 0 with a unit normal.
type Plane struct {
	normal   rl.Vector3
	distance float32
}

// ExtractFrustum pulls the planes out of the camera's view-projection
// matrix (Gribb/Hartmann).
func ExtractFrustum(camera rl.Camera3D, aspect float32) Frustum {
	view := rl.MatrixLookAt(camera.Position, camera.Target, camera.Up)

	var proj rl.Matrix
	if camera.Projection == rl.CameraPerspective {
		proj = rl.MatrixPerspective(camera.Fovy, aspect, frustumNear, frustumFar)
	} else {
		halfH := camera.Fovy / 2.0
		halfW := halfH * aspect
		proj = rl.MatrixOrtho(-halfW, halfW, -halfH, halfH, frustumNear, frustumFar)
	}
	vp := rl.MatrixMultiply(view, proj)

	rows := [4][4]float32{
		{vp.M0, vp.M4, vp.M8, vp.M12},
		{vp.M1, vp.M5, vp.M9, vp.M13},
		{vp.M2, vp.M6, vp.M10, vp.M14},
		{vp.M3, vp.M7, vp.M11, vp.M15},
	}
	// each plane is row4 +/- row1..3
	var f Frustum
	for i := 0; i < 6; i++ {
		sign := float32(1)
		if i%2 == 1 {
			sign = -1
		}
		r := rows[i/2]
		f.planes[i] = normalizePlane(Plane{
			normal: rl.Vector3{
				X: rows[3][0] + sign*r[0],
				Y: rows[3][1] + sign*r[1],
				Z: rows[3][2] + sign*r[2],
			},
			distance: rows[3][3] + sign*r[3],
		})
	}
	return f
}

func normalizePlane(p Plane) Plane {
	length := rl.Vector3Length(p.normal)
	if length == 0 {
		return p
	}
	return Plane{
		normal:   rl.Vector3Scale(p.normal, 1.0/length),
		distance: p.distance / length,
	}
}

// ContainsSphere reports whether a sphere is at least partly inside.
func (f *Frustum) ContainsSphere(center rl.Vector3, radius float32) bool {
	for _, p := range f.planes {
		if rl.Vector3DotProduct(p.normal, center)+p.distance < -radius {
			return false
		}
	}
	return true
}

func (f *Frustum) ContainsPoint(point rl.Vector3) bool {
	return f.ContainsSphere(point, 0)
}
