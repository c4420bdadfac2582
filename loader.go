package flowtiles

import (
	"encoding/json"
	"fmt"
	"os"
)

// On-disk record format for sector cost fields. Sectors absent from the
// file keep the default all-1 grid.
type sectorCostRecord struct {
	ID   [2]uint32 `json:"id"`
	Grid [][]int   `json:"grid"`
}

type sectorCostFile struct {
	Sectors []sectorCostRecord `json:"sectors"`
}

// LoadSectorCostFields reads per-sector cost grids from a JSON file into a
// dense SectorMap covering dims. Each record's grid is addressed
// [column][row] and every value must lie in [1, 255].
func LoadSectorCostFields(path string, dims MapDimensions) (*SectorMap[*CostField], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read cost fields file: %w", err)
	}

	var file sectorCostFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to decode cost fields file %s: %w", path, err)
	}

	fields := NewSectorMap(dims, NewCostField)
	for _, record := range file.Sectors {
		id := SectorID{record.ID[0], record.ID[1]}
		field, err := fields.Get(id)
		if err != nil {
			return nil, err
		}
		if len(record.Grid) != FieldResolution {
			return nil, fmt.Errorf("%w: sector %v grid has %d columns", ErrIndexOutOfBounds, id, len(record.Grid))
		}
		for column, values := range record.Grid {
			if len(values) != FieldResolution {
				return nil, fmt.Errorf("%w: sector %v column %d has %d rows", ErrIndexOutOfBounds, id, column, len(values))
			}
			for row, value := range values {
				if value < 1 || value > int(ImpassableCost) {
					return nil, fmt.Errorf("%w: sector %v cell (%d, %d) = %d", ErrInvalidCost, id, column, row, value)
				}
				if err := field.Set(column, row, uint8(value)); err != nil {
					return nil, err
				}
			}
		}
	}
	return fields, nil
}
