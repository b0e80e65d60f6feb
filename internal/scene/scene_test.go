package scene

import (
	"math"
	"testing"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe3d/internal/entity"
)

const (
	viewW = 1280
	viewH = 720
)

func assertVec(t *testing.T, want, got Vec3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-6)
	assert.InDelta(t, want.Y, got.Y, 1e-6)
	assert.InDelta(t, want.Z, got.Z, 1e-6)
}

func TestMul_Identity(t *testing.T) {
	a := Identity()
	b := Translate(V3(1, 2, 3))
	require.Equal(t, b, Mul(a, b))
	require.Equal(t, b, Mul(b, a))
}

func TestInvert(t *testing.T) {
	// Given: a non-trivial transform
	m := Mul(Translate(V3(1, -2, 3)), Mul(Euler(V3(0.3, 1.1, -0.4)), Scale(V3(2, 3, 0.5))))

	// When: it is inverted
	inv, ok := Invert(m)

	// Then: the product is the identity
	require.True(t, ok)
	product := Mul(m, inv)
	for i, v := range Identity() {
		assert.InDelta(t, v, product[i], 1e-9, "element %d", i)
	}

	_, ok = Invert(Mat4{})
	assert.False(t, ok)
}

func TestRotateY_QuarterTurn(t *testing.T) {
	// a quarter turn about Y maps +X onto -Z
	assertVec(t, V3(0, 0, -1), TransformPoint(RotateY(math.Pi/2), V3(1, 0, 0)))
}

func TestCamera_ProjectCenter(t *testing.T) {
	// Given: the default camera looking at the origin
	cam := NewCamera()
	vp := cam.ViewProjection(viewW, viewH)

	// When: the origin is projected
	p, ok := Project(vp, V3(0, 0, 0), viewW, viewH)

	// Then: it lands in the middle of the viewport
	require.True(t, ok)
	assert.InDelta(t, viewW/2, p.X, 1e-6)
	assert.InDelta(t, viewH/2, p.Y, 1e-6)

	// Then: a point behind the camera is not projected
	_, ok = Project(vp, V3(0, 20, 20), viewW, viewH)
	assert.False(t, ok)
}

func TestCamera_RayThroughProjectedPoint(t *testing.T) {
	cam := NewCamera()
	vp := cam.ViewProjection(viewW, viewH)

	for index := 0; index < entity.BoardSize; index++ {
		// Given: the screen position of a cell center
		center := CellCenter(index)
		p, ok := Project(vp, center, viewW, viewH)
		require.True(t, ok)

		// When: a ray is cast through that pixel
		ray, ok := cam.Ray(p.X, p.Y, viewW, viewH)
		require.True(t, ok)

		// Then: it passes through the cell center
		d := Dot(center.Sub(ray.Origin), ray.Dir)
		assertVec(t, center, ray.At(d))
	}
}

func TestCamera_RayInvalidViewport(t *testing.T) {
	_, ok := NewCamera().Ray(10, 10, 0, 0)
	assert.False(t, ok)
}

func TestScene_PickScreen(t *testing.T) {
	t.Run("Every cell center picks its own cell", func(t *testing.T) {
		// Given: a board
		s := New()
		NewBoard(s)
		vp := s.Camera.ViewProjection(viewW, viewH)

		for index := 0; index < entity.BoardSize; index++ {
			p, ok := Project(vp, CellCenter(index), viewW, viewH)
			require.True(t, ok)

			// When: the projected center is clicked
			cell, hit := s.PickScreen(p.X, p.Y, viewW, viewH)

			// Then: that cell is picked
			require.True(t, hit)
			assert.Equal(t, index, cell)
		}
	})

	t.Run("Gap between cells misses", func(t *testing.T) {
		// Given: a board
		s := New()
		NewBoard(s)
		vp := s.Camera.ViewProjection(viewW, viewH)

		// When: the gap between cells 4 and 5 is clicked
		gap := CellCenter(4).Add(V3(CellSpacing/2, 0, 0))
		p, ok := Project(vp, gap, viewW, viewH)
		require.True(t, ok)
		_, hit := s.PickScreen(p.X, p.Y, viewW, viewH)

		// Then: nothing is picked
		assert.False(t, hit)
	})

	t.Run("Corner of the window misses", func(t *testing.T) {
		s := New()
		NewBoard(s)

		_, hit := s.PickScreen(1, 1, viewW, viewH)

		assert.False(t, hit)
	})

	t.Run("Pieces are not hit targets", func(t *testing.T) {
		// Given: a scene with a full-size piece but no cells
		s := New()
		piece := NewPiece(entity.PlayerX, colorful.Color{R: 1}, 4)
		piece.SetUniformScale(1)
		s.Add(piece)

		// When: the piece is clicked
		_, hit := s.Pick(Ray{Origin: V3(0, 5, 0), Dir: V3(0, -1, 0)})

		// Then: nothing is picked
		assert.False(t, hit)
	})
}

func TestScene_OrbitKeepsPicking(t *testing.T) {
	// Given: a board seen from an orbited camera
	s := New()
	NewBoard(s)
	orbit := NewOrbit(s.Camera)
	orbit.Rotate(0.7, 0.2)
	orbit.Zoom(-3)
	orbit.Apply(&s.Camera)
	vp := s.Camera.ViewProjection(viewW, viewH)

	// When: a cell center is clicked
	p, ok := Project(vp, CellCenter(2), viewW, viewH)
	require.True(t, ok)
	cell, hit := s.PickScreen(p.X, p.Y, viewW, viewH)

	// Then: the same cell is picked
	require.True(t, hit)
	assert.Equal(t, 2, cell)
}

func TestOrbit_ReproducesCamera(t *testing.T) {
	// Given: the default camera
	cam := NewCamera()

	// When: an orbit is derived and applied without changes
	orbit := NewOrbit(cam)
	applied := cam
	orbit.Apply(&applied)

	// Then: the camera stays where it was
	assertVec(t, cam.Position, applied.Position)
}

func TestOrbit_Clamps(t *testing.T) {
	orbit := NewOrbit(NewCamera())

	orbit.Zoom(-1000)
	assert.InDelta(t, orbit.MinRadius, orbit.Radius, 1e-9)

	orbit.Zoom(1000)
	assert.InDelta(t, orbit.MaxRadius, orbit.Radius, 1e-9)

	orbit.Rotate(0, 10)
	assert.InDelta(t, orbit.MaxPitch, orbit.Pitch, 1e-9)

	orbit.Rotate(0, -10)
	assert.InDelta(t, orbit.MinPitch, orbit.Pitch, 1e-9)
}

func TestScene_RemoveKind(t *testing.T) {
	// Given: a board with two pieces and a highlight
	s := New()
	NewBoard(s)
	s.Add(NewPiece(entity.PlayerX, colorful.Color{R: 1}, 0))
	s.Add(NewPiece(entity.PlayerO, colorful.Color{B: 1}, 1))
	s.Add(NewHighlight([3]int{0, 1, 2}))

	// When: pieces and highlights are cleared
	pieces := s.RemoveKind(KindPiece)
	highlights := s.RemoveKind(KindHighlight)

	// Then: only the cells are left
	assert.Equal(t, 2, pieces)
	assert.Equal(t, 1, highlights)
	assert.Equal(t, entity.BoardSize, s.Len())
	assert.Equal(t, entity.BoardSize, s.Count(KindCell))
}

func TestScene_Remove(t *testing.T) {
	s := New()
	id := s.Add(NewPiece(entity.PlayerO, colorful.Color{B: 1}, 3))

	assert.True(t, s.Remove(id))
	assert.False(t, s.Remove(id))
	assert.Zero(t, s.Len())
}

func TestNewPiece(t *testing.T) {
	// When: a piece is created for cell 8
	color := colorful.Color{R: 0.2, G: 0.4, B: 0.6}
	piece := NewPiece(entity.PlayerO, color, 8)

	// Then: it is tagged, colored and starts shrunk above the cell
	assert.Equal(t, KindPiece, piece.Kind)
	assert.Equal(t, 8, piece.Cell)
	assert.Equal(t, color, piece.Material.Color)
	assertVec(t, V3(CellSpacing, PieceHeight, CellSpacing), piece.Position)
	assert.InDelta(t, StartScale, piece.Scale.X, 1e-12)
	assert.Equal(t, ringGeometry.Positions, piece.Geometry.Positions)

	cross := NewPiece(entity.PlayerX, color, 0)
	assert.Len(t, cross.Geometry.Positions, 16)
	assert.Len(t, cross.Geometry.Indices, 72)
}

func TestNewHighlight(t *testing.T) {
	// When: the anti-diagonal is highlighted
	bar := NewHighlight([3]int{2, 4, 6})

	// Then: it sits over the middle cell and spans both ends
	assert.Equal(t, KindHighlight, bar.Kind)
	assert.InDelta(t, 0, bar.Position.X, 1e-9)
	assert.InDelta(t, 0, bar.Position.Z, 1e-9)

	end := TransformPoint(bar.World(), V3(Len(CellCenter(6).Sub(CellCenter(2)))/2, 0, 0))
	assert.InDelta(t, CellCenter(6).X, end.X, 1e-9)
	assert.InDelta(t, CellCenter(6).Z, end.Z, 1e-9)
}

func TestTorus(t *testing.T) {
	g := Torus(0.8, 0.2, 4, 8)

	assert.Len(t, g.Positions, 5*9)
	assert.Len(t, g.Indices, 4*8*6)
	for _, p := range g.Positions {
		r := math.Hypot(p.X, p.Z)
		assert.GreaterOrEqual(t, r, 0.6-1e-9)
		assert.LessOrEqual(t, r, 1.0+1e-9)
	}
}

func TestLight_Intensity(t *testing.T) {
	l := Light{Ambient: 0.5, Dir: V3(0, -1, 0), DirAmount: 1}

	assert.InDelta(t, 1.0, l.Intensity(V3(0, 1, 0)), 1e-9)
	assert.InDelta(t, 0.5, l.Intensity(V3(0, -1, 0)), 1e-9)
	assert.InDelta(t, 0.5, Light{Ambient: 0.5}.Intensity(V3(0, 1, 0)), 1e-9)
}

func TestPlacementTween(t *testing.T) {
	// Given: a fresh piece and its placement tween
	piece := NewPiece(entity.PlayerX, colorful.Color{R: 1}, 4)
	tween := PlacementTween(piece, 500*time.Millisecond)

	var tweens Tweens
	tweens.Add(tween)

	// When: half of the animation has run
	tweens.Update(250 * time.Millisecond)

	// Then: the piece has grown but is still animating
	assert.False(t, tween.Done)
	assert.Greater(t, piece.Scale.X, StartScale)
	assert.Equal(t, 1, tweens.Len())

	// When: the rest of the animation runs
	tweens.Update(300 * time.Millisecond)

	// Then: the piece is at full size and the tween is dropped
	assert.True(t, tween.Done)
	assert.InDelta(t, 1, piece.Scale.X, 1e-5)
	assert.InDelta(t, piece.Scale.X, piece.Scale.Z, 1e-12)
	assert.Zero(t, tweens.Len())
}
