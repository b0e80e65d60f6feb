package scene

import "math"

// Camera is a perspective viewing transform.
type Camera struct {
	Position Vec3
	Target   Vec3
	Up       Vec3

	FOVY float64 // radians
	Near float64
	Far  float64
}

// NewCamera returns the default board camera: 45 degrees, above and in front
// of the board, looking at its center.
func NewCamera() Camera {
	return Camera{
		Position: V3(0, 10, 10),
		Target:   V3(0, 0, 0),
		Up:       V3(0, 1, 0),
		FOVY:     45 * math.Pi / 180,
		Near:     0.1,
		Far:      1000,
	}
}

func (c Camera) View() Mat4 {
	up := c.Up
	if up == (Vec3{}) {
		up = V3(0, 1, 0)
	}
	return LookAt(c.Position, c.Target, up)
}

func (c Camera) Projection(aspect float64) Mat4 {
	fov := c.FOVY
	if fov == 0 {
		fov = 45 * math.Pi / 180
	}
	return Perspective(fov, aspect, c.Near, c.Far)
}

// ViewProjection combines projection and view for a viewport of w x h pixels.
func (c Camera) ViewProjection(w, h int) Mat4 {
	aspect := 1.0
	if h > 0 {
		aspect = float64(w) / float64(h)
	}
	return Mul(c.Projection(aspect), c.View())
}

// Ray is a half-line in world space. Dir is normalized.
type Ray struct {
	Origin Vec3
	Dir    Vec3
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Dir.Mul(t))
}

// Ray builds the pick ray through the device pixel (px, py) of a w x h viewport.
func (c Camera) Ray(px, py float64, w, h int) (Ray, bool) {
	if w <= 0 || h <= 0 {
		return Ray{}, false
	}

	inv, ok := Invert(c.ViewProjection(w, h))
	if !ok {
		return Ray{}, false
	}

	ndcX := px/float64(w)*2 - 1
	ndcY := -(py/float64(h)*2 - 1)

	near := TransformPoint(inv, V3(ndcX, ndcY, -1))
	far := TransformPoint(inv, V3(ndcX, ndcY, 1))

	dir := Normalize(far.Sub(near))
	if dir == (Vec3{}) {
		return Ray{}, false
	}

	return Ray{Origin: near, Dir: dir}, true
}

// Projected is a vertex after projection to the viewport.
type Projected struct {
	X, Y  float64 // device pixels
	Depth float64 // NDC z in [-1, 1]
}

// Project maps a world point to device pixels. It reports false for points
// behind the camera.
func Project(vp Mat4, p Vec3, w, h int) (Projected, bool) {
	clip := MulV4(vp, Vec4{X: p.X, Y: p.Y, Z: p.Z, W: 1})
	if clip.W <= 0 {
		return Projected{}, false
	}

	inv := 1 / clip.W
	ndcX, ndcY, ndcZ := clip.X*inv, clip.Y*inv, clip.Z*inv

	return Projected{
		X:     (ndcX*0.5 + 0.5) * float64(w),
		Y:     (1 - (ndcY*0.5 + 0.5)) * float64(h),
		Depth: ndcZ,
	}, true
}
