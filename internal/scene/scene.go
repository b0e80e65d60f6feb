package scene

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Light is an ambient term plus one directional light.
type Light struct {
	Ambient   float64
	Dir       Vec3 // direction towards the scene
	DirAmount float64
}

// Intensity returns the flat-shading factor for a surface normal.
func (l Light) Intensity(n Vec3) float64 {
	amb := Clamp01(l.Ambient)
	ld := Normalize(l.Dir)
	if ld == (Vec3{}) {
		return amb
	}
	d := Dot(Normalize(n), ld.Mul(-1))
	if d < 0 {
		d = 0
	}
	return Clamp01(amb + d*Clamp01(l.DirAmount))
}

// Scene is the set of meshes drawn each frame, with the camera and lights.
type Scene struct {
	Camera     Camera
	Light      Light
	Background colorful.Color

	meshes []*Mesh
	nextID int
}

func New() *Scene {
	return &Scene{
		Camera: NewCamera(),
		Light: Light{
			Ambient: 0.5,
			// light positioned at (5, 10, 7.5) shining on the origin
			Dir:       Normalize(V3(-5, -10, -7.5)),
			DirAmount: 1,
		},
		Background: colorful.Color{R: 0x20 / 255.0, G: 0x20 / 255.0, B: 0x20 / 255.0},
	}
}

// Add puts the mesh in the scene and returns its id.
func (s *Scene) Add(m *Mesh) int {
	s.nextID++
	m.ID = s.nextID
	s.meshes = append(s.meshes, m)
	return m.ID
}

// Remove takes the mesh with the given id out of the scene.
func (s *Scene) Remove(id int) bool {
	for i, m := range s.meshes {
		if m.ID == id {
			s.meshes = append(s.meshes[:i], s.meshes[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveKind drops every mesh of the kind and returns how many were removed.
func (s *Scene) RemoveKind(kind Kind) int {
	kept := s.meshes[:0]
	removed := 0
	for _, m := range s.meshes {
		if m.Kind == kind {
			removed++
			continue
		}
		kept = append(kept, m)
	}
	for i := len(kept); i < len(s.meshes); i++ {
		s.meshes[i] = nil
	}
	s.meshes = kept
	return removed
}

func (s *Scene) Each(fn func(m *Mesh)) {
	for _, m := range s.meshes {
		fn(m)
	}
}

func (s *Scene) Len() int {
	return len(s.meshes)
}

// Count returns the number of meshes of a kind.
func (s *Scene) Count(kind Kind) int {
	n := 0
	for _, m := range s.meshes {
		if m.Kind == kind {
			n++
		}
	}
	return n
}

// Pick returns the board cell under the ray: the nearest visible cell mesh it
// hits. Pieces and highlights are not hit targets.
func (s *Scene) Pick(ray Ray) (int, bool) {
	best := math.Inf(1)
	cell := -1

	for _, m := range s.meshes {
		if m.Kind != KindCell || !m.Visible {
			continue
		}
		hit, ok := m.Intersect(ray)
		if ok && hit.Distance < best {
			best = hit.Distance
			cell = m.Cell
		}
	}

	return cell, cell >= 0
}

// PickScreen builds the camera ray through a device pixel and picks with it.
func (s *Scene) PickScreen(px, py float64, w, h int) (int, bool) {
	ray, ok := s.Camera.Ray(px, py, w, h)
	if !ok {
		return -1, false
	}
	return s.Pick(ray)
}
