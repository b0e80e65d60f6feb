package scene

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Kind tags what a mesh stands for. It is set when the mesh is spawned so
// nothing has to be inferred from geometry later.
type Kind uint8

const (
	KindCell Kind = iota + 1
	KindPiece
	KindHighlight
)

func (k Kind) String() string {
	switch k {
	case KindCell:
		return "cell"
	case KindPiece:
		return "piece"
	case KindHighlight:
		return "highlight"
	default:
		return "unknown"
	}
}

// Geometry is an indexed triangle list in local space.
type Geometry struct {
	Positions []Vec3
	Indices   []int
}

// Transformed returns a copy of g with every position transformed by m.
func (g Geometry) Transformed(m Mat4) Geometry {
	out := Geometry{
		Positions: make([]Vec3, len(g.Positions)),
		Indices:   append([]int(nil), g.Indices...),
	}
	for i, p := range g.Positions {
		out.Positions[i] = TransformPoint(m, p)
	}
	return out
}

// Merge concatenates geometries into one.
func Merge(parts ...Geometry) Geometry {
	var out Geometry
	for _, part := range parts {
		base := len(out.Positions)
		out.Positions = append(out.Positions, part.Positions...)
		for _, idx := range part.Indices {
			out.Indices = append(out.Indices, base+idx)
		}
	}
	return out
}

// Material is a minimal surface description. Unlit surfaces ignore the lights.
type Material struct {
	Color colorful.Color
	Unlit bool
}

// Mesh is a geometry placed in the world.
type Mesh struct {
	ID   int
	Kind Kind
	// Cell is the board index a cell or piece belongs to, -1 otherwise.
	Cell int

	Geometry Geometry
	Material Material

	Position Vec3
	Rotation Vec3 // XYZ Euler, radians
	Scale    Vec3

	Visible bool
}

func NewMesh(kind Kind, geometry Geometry, material Material) *Mesh {
	return &Mesh{
		Kind:     kind,
		Cell:     -1,
		Geometry: geometry,
		Material: material,
		Scale:    V3(1, 1, 1),
		Visible:  true,
	}
}

// World is the local-to-world matrix: translate * rotate * scale.
func (m *Mesh) World() Mat4 {
	return Mul(Translate(m.Position), Mul(Euler(m.Rotation), Scale(m.Scale)))
}

// SetUniformScale scales the mesh equally on all axes.
func (m *Mesh) SetUniformScale(s float64) {
	m.Scale = V3(s, s, s)
}

// Plane builds a w x d rectangle lying on y=0, centered on the origin.
func Plane(w, d float64) Geometry {
	hw, hd := w/2, d/2
	return Geometry{
		Positions: []Vec3{
			V3(-hw, 0, -hd),
			V3(hw, 0, -hd),
			V3(hw, 0, hd),
			V3(-hw, 0, hd),
		},
		Indices: []int{0, 2, 1, 0, 3, 2},
	}
}

// Box builds a w x h x d box centered on the origin.
func Box(w, h, d float64) Geometry {
	hw, hh, hd := w/2, h/2, d/2
	p := []Vec3{
		V3(-hw, -hh, -hd), V3(hw, -hh, -hd), V3(hw, hh, -hd), V3(-hw, hh, -hd),
		V3(-hw, -hh, hd), V3(hw, -hh, hd), V3(hw, hh, hd), V3(-hw, hh, hd),
	}
	return Geometry{
		Positions: p,
		Indices: []int{
			4, 5, 6, 4, 6, 7, // front
			1, 0, 3, 1, 3, 2, // back
			0, 4, 7, 0, 7, 3, // left
			5, 1, 2, 5, 2, 6, // right
			3, 7, 6, 3, 6, 2, // top
			0, 1, 5, 0, 5, 4, // bottom
		},
	}
}

// Torus builds a ring lying flat on y=0. radius is the distance from the
// center to the middle of the tube.
func Torus(radius, tube float64, radialSegments, tubularSegments int) Geometry {
	if radialSegments < 3 {
		radialSegments = 3
	}
	if tubularSegments < 3 {
		tubularSegments = 3
	}

	var g Geometry
	for j := 0; j <= radialSegments; j++ {
		v := float64(j) / float64(radialSegments) * 2 * math.Pi
		for i := 0; i <= tubularSegments; i++ {
			u := float64(i) / float64(tubularSegments) * 2 * math.Pi
			ring := radius + tube*math.Cos(v)
			g.Positions = append(g.Positions, V3(ring*math.Cos(u), tube*math.Sin(v), ring*math.Sin(u)))
		}
	}

	stride := tubularSegments + 1
	for j := 1; j <= radialSegments; j++ {
		for i := 1; i <= tubularSegments; i++ {
			a := stride*j + i - 1
			b := stride*(j-1) + i - 1
			c := stride*(j-1) + i
			d := stride*j + i
			g.Indices = append(g.Indices, a, b, d, b, c, d)
		}
	}

	return g
}

// Hit is a ray intersection with a mesh.
type Hit struct {
	Mesh     *Mesh
	Distance float64
	Point    Vec3
}

// Intersect tests the ray against every triangle of the mesh in world space
// and returns the nearest hit.
func (m *Mesh) Intersect(ray Ray) (Hit, bool) {
	world := m.World()
	best := Hit{Distance: math.Inf(1)}
	found := false

	idx := m.Geometry.Indices
	for i := 0; i+2 < len(idx); i += 3 {
		a := TransformPoint(world, m.Geometry.Positions[idx[i]])
		b := TransformPoint(world, m.Geometry.Positions[idx[i+1]])
		c := TransformPoint(world, m.Geometry.Positions[idx[i+2]])

		t, ok := intersectTriangle(ray, a, b, c)
		if ok && t < best.Distance {
			best = Hit{Mesh: m, Distance: t, Point: ray.At(t)}
			found = true
		}
	}

	return best, found
}

// intersectTriangle is the Moller-Trumbore test, double sided.
func intersectTriangle(ray Ray, a, b, c Vec3) (float64, bool) {
	const eps = 1e-9

	e1 := b.Sub(a)
	e2 := c.Sub(a)
	p := Cross(ray.Dir, e2)
	det := Dot(e1, p)
	if math.Abs(det) < eps {
		return 0, false
	}
	inv := 1 / det

	s := ray.Origin.Sub(a)
	u := Dot(s, p) * inv
	if u < 0 || u > 1 {
		return 0, false
	}

	q := Cross(s, e1)
	v := Dot(ray.Dir, q) * inv
	if v < 0 || u+v > 1 {
		return 0, false
	}

	t := Dot(e2, q) * inv
	if t <= eps {
		return 0, false
	}

	return t, true
}
