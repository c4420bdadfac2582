package flowtiles

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// World-space conversions. Positions are 3D with y ignored; the world is
// centred on the origin and the sector grid's (0, 0) corner sits at
// (-x/2, 0, -z/2). Positions outside the map clamp into the edge sectors
// rather than failing.

// SectorIDFromWorld derives the sector a world position falls in.
func SectorIDFromWorld(position mgl32.Vec3, dims MapDimensions) SectorID {
	// Shift into a coordinate system with the origin at the grid's top left.
	xOrigin := position.X() + float32(dims.X())/2
	zOrigin := position.Z() + float32(dims.Z())/2
	column := int(math.Floor(float64(xOrigin / SectorResolution)))
	row := int(math.Floor(float64(zOrigin / SectorResolution)))
	if column < 0 {
		column = 0
	}
	if row < 0 {
		row = 0
	}
	// Positions exactly on the positive map boundary land in the last sector.
	if column >= int(dims.ColumnCount()) {
		column = int(dims.ColumnCount()) - 1
	}
	if row >= int(dims.RowCount()) {
		row = int(dims.RowCount()) - 1
	}
	return SectorID{uint32(column), uint32(row)}
}

// FieldCellFromWorld derives the cell inside sector id that a world
// position falls in. The absolute difference from the sector's top-left
// corner is intentional: a position west or north of the corner (which a
// correct SectorIDFromWorld never produces) mirrors into the sector
// instead of underflowing.
func FieldCellFromWorld(position mgl32.Vec3, id SectorID, dims MapDimensions) FieldCell {
	topLeft := SectorTopLeftWorld(id, dims)
	column := int(math.Floor(math.Abs(float64(topLeft.X() - position.X()))))
	row := int(math.Floor(math.Abs(float64(topLeft.Z() - position.Z()))))
	if column >= FieldResolution {
		column = FieldResolution - 1
	}
	if row >= FieldResolution {
		row = FieldResolution - 1
	}
	return FieldCell{column, row}
}

// SectorAndFieldCellFromWorld derives both the sector and the cell within
// it for a world position.
func SectorAndFieldCellFromWorld(position mgl32.Vec3, dims MapDimensions) (SectorID, FieldCell) {
	id := SectorIDFromWorld(position, dims)
	return id, FieldCellFromWorld(position, id, dims)
}

// SectorTopLeftWorld is the world position of the top-left corner of a
// sector.
func SectorTopLeftWorld(id SectorID, dims MapDimensions) mgl32.Vec3 {
	x := float32(int64(id.Column)*SectorResolution - int64(dims.X()/2))
	z := float32(int64(id.Row)*SectorResolution - int64(dims.Z()/2))
	return mgl32.Vec3{x, 0, z}
}

// SectorCenterWorld is the world position of the centre of a sector.
func SectorCenterWorld(id SectorID, dims MapDimensions) mgl32.Vec3 {
	topLeft := SectorTopLeftWorld(id, dims)
	return mgl32.Vec3{topLeft.X() + SectorResolution/2, 0, topLeft.Z() + SectorResolution/2}
}

// CellCenterWorld returns the world position of a field cell within a
// sector, offset from the sector's top-left corner by (index+1)*0.5 on each
// axis. The offset grows half a world unit per index while cells span one
// unit, so the result lies inside its own cell only for indices 0 and 1;
// FieldCellFromWorld maps it back to cell floor((index+1)/2).
func CellCenterWorld(id SectorID, cell FieldCell, dims MapDimensions) mgl32.Vec3 {
	topLeft := SectorTopLeftWorld(id, dims)
	xOffset := float32(cell.Column+1) * 0.5
	zOffset := float32(cell.Row+1) * 0.5
	return mgl32.Vec3{topLeft.X() + xOffset, 0, topLeft.Z() + zOffset}
}
