// Package fieldviz renders cost and integration fields as labelled grid
// images for debugging. Output is an offline PNG, not a live view.
package fieldviz

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/gekko3d/flowtiles"
)

// CellSize is the pixel edge length of one rendered field cell.
const CellSize = 48

// RenderIntegration draws an integration field as a grid with each cell
// labelled with its integration cost. Unreached cells are filled dark with
// no label.
func RenderIntegration(field *flowtiles.IntegrationField) image.Image {
	grid := field.Grid()
	return renderGrid(func(column, row int) (string, bool) {
		value := grid[column][row]
		if value == flowtiles.Unreached {
			return "", true
		}
		return fmt.Sprintf("%d", value), false
	})
}

// RenderCost draws a cost field as a grid with each cell labelled with its
// traversal cost. Impassable cells are filled dark with no label.
func RenderCost(field *flowtiles.CostField) image.Image {
	grid := field.Grid()
	return renderGrid(func(column, row int) (string, bool) {
		value := grid[column][row]
		if value == flowtiles.ImpassableCost {
			return "", true
		}
		return fmt.Sprintf("%d", value), false
	})
}

// SavePNG writes a rendered field image to disk.
func SavePNG(path string, img image.Image) error {
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("failed to save field image: %w", err)
	}
	return nil
}

func renderGrid(cell func(column, row int) (label string, blocked bool)) image.Image {
	size := flowtiles.FieldResolution * CellSize
	dc := gg.NewContext(size, size)

	dc.SetRGB(1, 1, 1)
	dc.Clear()

	// Blocked cells first so the grid lines stroke over them.
	for column := 0; column < flowtiles.FieldResolution; column++ {
		for row := 0; row < flowtiles.FieldResolution; row++ {
			if _, blocked := cell(column, row); blocked {
				dc.SetRGB(0.15, 0.15, 0.15)
				dc.DrawRectangle(float64(column*CellSize), float64(row*CellSize), CellSize, CellSize)
				dc.Fill()
			}
		}
	}

	dc.SetRGB(0.6, 0.6, 0.6)
	dc.SetLineWidth(1)
	for i := 0; i <= flowtiles.FieldResolution; i++ {
		offset := float64(i * CellSize)
		dc.DrawLine(offset, 0, offset, float64(size))
		dc.DrawLine(0, offset, float64(size), offset)
	}
	dc.Stroke()

	dc.SetFontFace(basicfont.Face7x13)
	dc.SetRGB(0, 0, 0)
	for column := 0; column < flowtiles.FieldResolution; column++ {
		for row := 0; row < flowtiles.FieldResolution; row++ {
			label, blocked := cell(column, row)
			if blocked || label == "" {
				continue
			}
			x := float64(column*CellSize) + CellSize/2
			y := float64(row*CellSize) + CellSize/2
			dc.DrawStringAnchored(label, x, y, 0.5, 0.5)
		}
	}

	return dc.Image()
}
