package scene

import "math"

// OrbitController turns yaw/pitch/radius into a camera position around a
// target. It does not depend on any input system.
type OrbitController struct {
	Target Vec3
	Yaw    float64
	Pitch  float64
	Radius float64

	MinRadius float64
	MaxRadius float64
	MinPitch  float64
	MaxPitch  float64
}

// NewOrbit derives the orbit that reproduces the camera's current placement.
func NewOrbit(cam Camera) *OrbitController {
	offset := cam.Position.Sub(cam.Target)
	radius := Len(offset)

	var yaw, pitch float64
	if radius > 0 {
		yaw = math.Atan2(offset.X, offset.Z)
		pitch = -math.Asin(offset.Y / radius)
	}

	return &OrbitController{
		Target:    cam.Target,
		Yaw:       yaw,
		Pitch:     pitch,
		Radius:    radius,
		MinRadius: 4,
		MaxRadius: 40,
		MinPitch:  -math.Pi/2 + 0.05,
		MaxPitch:  -0.05,
	}
}

func (c *OrbitController) Apply(cam *Camera) {
	if cam == nil {
		return
	}

	r := c.Radius
	if r == 0 {
		r = 3
	}

	// pitch is a rotation about X: negative values lift the camera above the board
	m := Mul(RotateY(c.Yaw), RotateX(c.Pitch))
	p := MulV4(m, Vec4{X: 0, Y: 0, Z: r, W: 1})

	cam.Position = c.Target.Add(V3(p.X, p.Y, p.Z))
	cam.Target = c.Target
	if cam.Up == (Vec3{}) {
		cam.Up = V3(0, 1, 0)
	}
}

func (c *OrbitController) Rotate(deltaYaw, deltaPitch float64) {
	c.Yaw += deltaYaw
	c.Pitch += deltaPitch
	if c.MinPitch != 0 || c.MaxPitch != 0 {
		c.Pitch = math.Max(c.MinPitch, math.Min(c.MaxPitch, c.Pitch))
	}
}

func (c *OrbitController) Zoom(delta float64) {
	c.Radius += delta
	if c.MinRadius != 0 && c.Radius < c.MinRadius {
		c.Radius = c.MinRadius
	}
	if c.MaxRadius != 0 && c.Radius > c.MaxRadius {
		c.Radius = c.MaxRadius
	}
}
