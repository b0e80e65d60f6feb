package scene

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/rocketscienceinc/tictactoe3d/internal/entity"
)

const (
	CellSize    = 2.0
	CellSpacing = 2.2
	PieceHeight = 0.1

	// StartScale is where a new piece begins before it grows in.
	StartScale = 0.001
)

var (
	CellColor      = colorful.Color{R: 0xaa / 255.0, G: 0xaa / 255.0, B: 0xaa / 255.0}
	HighlightColor = colorful.Color{R: 1, G: 0.85, B: 0.2}
)

// CellCenter returns the world position of a cell's center on the board plane.
func CellCenter(index int) Vec3 {
	row, col := entity.Row(index), entity.Col(index)
	return V3(float64(col-1)*CellSpacing, 0, float64(row-1)*CellSpacing)
}

// NewBoard adds the nine cell hit-targets and returns them in index order.
func NewBoard(s *Scene) []*Mesh {
	cells := make([]*Mesh, 0, entity.BoardSize)
	for index := 0; index < entity.BoardSize; index++ {
		cell := NewMesh(KindCell, Plane(CellSize, CellSize), Material{Color: CellColor, Unlit: true})
		cell.Cell = index
		cell.Position = CellCenter(index)
		s.Add(cell)
		cells = append(cells, cell)
	}
	return cells
}

var (
	crossGeometry = Merge(
		Box(1.8, 0.2, 0.2).Transformed(RotateY(math.Pi/4)),
		Box(1.8, 0.2, 0.2).Transformed(RotateY(-math.Pi/4)),
	)
	ringGeometry = Torus(0.8, 0.2, 16, 48)
)

// NewPiece builds the mark's shape anchored above the cell, shrunk to
// StartScale so it can be tweened in.
func NewPiece(mark entity.Mark, color colorful.Color, index int) *Mesh {
	geometry := ringGeometry
	if mark == entity.PlayerX {
		geometry = crossGeometry
	}

	piece := NewMesh(KindPiece, geometry, Material{Color: color})
	piece.Cell = index
	piece.Position = CellCenter(index).Add(V3(0, PieceHeight, 0))
	piece.SetUniformScale(StartScale)

	return piece
}

// NewHighlight builds a bar spanning the winning line.
func NewHighlight(line [3]int) *Mesh {
	from, to := CellCenter(line[0]), CellCenter(line[2])
	delta := to.Sub(from)

	bar := NewMesh(KindHighlight, Box(Len(delta)+CellSize*0.6, 0.12, 0.12), Material{Color: HighlightColor, Unlit: true})
	bar.Position = from.Add(delta.Mul(0.5)).Add(V3(0, 0.35, 0))
	bar.Rotation = V3(0, math.Atan2(-delta.Z, delta.X), 0)

	return bar
}
