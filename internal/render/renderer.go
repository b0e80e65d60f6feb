package render

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/rocketscienceinc/tictactoe3d/internal/scene"
)

// maxBatchVertices keeps a batch addressable with uint16 indices.
const maxBatchVertices = 65535 - 3

// Triangle is one flat-shaded face after projection.
type Triangle struct {
	Points [3]scene.Projected
	Color  colorful.Color
	Depth  float64
	Kind   scene.Kind
}

// Renderer projects the scene to screen triangles and draws them back to
// front with a 1x1 white source image.
type Renderer struct {
	triangles []Triangle
	vertices  []ebiten.Vertex
	indices   []uint16
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

var whitePixelImage *ebiten.Image

func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}

// Collect returns the visible triangles of the scene sorted far to near. The
// returned slice is reused by the next call.
func (r *Renderer) Collect(s *scene.Scene, w, h int) []Triangle {
	r.triangles = r.triangles[:0]
	if w <= 0 || h <= 0 {
		return r.triangles
	}

	vp := s.Camera.ViewProjection(w, h)
	eye := s.Camera.Position

	s.Each(func(m *scene.Mesh) {
		if !m.Visible {
			return
		}

		world := m.World()
		positions, indices := m.Geometry.Positions, m.Geometry.Indices

		for i := 0; i+2 < len(indices); i += 3 {
			a := scene.TransformPoint(world, positions[indices[i]])
			b := scene.TransformPoint(world, positions[indices[i+1]])
			c := scene.TransformPoint(world, positions[indices[i+2]])

			pa, okA := scene.Project(vp, a, w, h)
			pb, okB := scene.Project(vp, b, w, h)
			pc, okC := scene.Project(vp, c, w, h)
			if !okA || !okB || !okC {
				continue
			}

			shade := 1.0
			if !m.Material.Unlit {
				normal := scene.Normalize(scene.Cross(b.Sub(a), c.Sub(a)))
				centroid := a.Add(b).Add(c).Mul(1.0 / 3)
				// faces are lit from whichever side the camera sees
				if scene.Dot(normal, eye.Sub(centroid)) < 0 {
					normal = normal.Mul(-1)
				}
				shade = s.Light.Intensity(normal)
			}

			base := m.Material.Color
			r.triangles = append(r.triangles, Triangle{
				Points: [3]scene.Projected{pa, pb, pc},
				Color:  colorful.Color{R: base.R * shade, G: base.G * shade, B: base.B * shade},
				Depth:  (pa.Depth + pb.Depth + pc.Depth) / 3,
				Kind:   m.Kind,
			})
		}
	})

	sort.SliceStable(r.triangles, func(i, j int) bool {
		ti, tj := r.triangles[i], r.triangles[j]
		// the board is always below everything standing on it
		if (ti.Kind == scene.KindCell) != (tj.Kind == scene.KindCell) {
			return ti.Kind == scene.KindCell
		}
		return ti.Depth > tj.Depth
	})

	return r.triangles
}

// Draw fills the triangles onto the target in order.
func (r *Renderer) Draw(target *ebiten.Image, triangles []Triangle) {
	r.vertices = r.vertices[:0]
	r.indices = r.indices[:0]

	for _, tri := range triangles {
		if len(r.vertices) >= maxBatchVertices {
			r.flush(target)
		}

		base := uint16(len(r.vertices))
		cr, cg, cb := float32(tri.Color.R), float32(tri.Color.G), float32(tri.Color.B)
		for _, p := range tri.Points {
			r.vertices = append(r.vertices, ebiten.Vertex{
				DstX:   float32(p.X),
				DstY:   float32(p.Y),
				SrcX:   0.5,
				SrcY:   0.5,
				ColorR: cr,
				ColorG: cg,
				ColorB: cb,
				ColorA: 1,
			})
		}
		r.indices = append(r.indices, base, base+1, base+2)
	}

	r.flush(target)
}

func (r *Renderer) flush(target *ebiten.Image) {
	if len(r.indices) == 0 {
		return
	}

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	target.DrawTriangles(r.vertices, r.indices, ensureWhitePixel(), op)

	r.vertices = r.vertices[:0]
	r.indices = r.indices[:0]
}
