package flowtiles

import "fmt"

// CostField is the per-cell traversal cost grid of one sector. Cells hold
// values in [1, 255] where 1 is the default traversable cost and 255 marks
// an impassable cell. The grid is addressed (column, row) with column as the
// first axis and is never resized.
type CostField struct {
	grid [FieldResolution][FieldResolution]uint8
}

// NewCostField returns a cost field with every cell at the default cost of 1.
func NewCostField() *CostField {
	f := &CostField{}
	for i := range f.grid {
		for j := range f.grid[i] {
			f.grid[i][j] = 1
		}
	}
	return f
}

// Get reads the cost at (column, row).
func (f *CostField) Get(column, row int) (uint8, error) {
	if !inField(column, row) {
		return 0, fmt.Errorf("%w: cost field cell (%d, %d)", ErrIndexOutOfBounds, column, row)
	}
	return f.grid[column][row], nil
}

// Set overwrites the cost at (column, row).
func (f *CostField) Set(column, row int, value uint8) error {
	if !inField(column, row) {
		return fmt.Errorf("%w: cost field cell (%d, %d)", ErrIndexOutOfBounds, column, row)
	}
	f.grid[column][row] = value
	return nil
}

// Grid returns a copy of the whole cost grid for serialization or
// inspection.
func (f *CostField) Grid() [FieldResolution][FieldResolution]uint8 {
	return f.grid
}

func inField(column, row int) bool {
	return column >= 0 && column < FieldResolution && row >= 0 && row < FieldResolution
}
