package flowtiles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellNeighbors_Center(t *testing.T) {
	neighbors := CellNeighbors(FieldCell{4, 4})
	expected := []FieldCell{{4, 3}, {5, 4}, {4, 5}, {3, 4}}
	assert.Equal(t, expected, neighbors)
}

func TestCellNeighbors_Edges(t *testing.T) {
	tests := []struct {
		name     string
		cell     FieldCell
		expected []FieldCell
	}{
		{"top left corner", FieldCell{0, 0}, []FieldCell{{1, 0}, {0, 1}}},
		{"bottom right corner", FieldCell{9, 9}, []FieldCell{{9, 8}, {8, 9}}},
		{"top edge", FieldCell{5, 0}, []FieldCell{{6, 0}, {5, 1}, {4, 0}}},
		{"west edge", FieldCell{0, 5}, []FieldCell{{0, 4}, {1, 5}, {0, 6}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CellNeighbors(tt.cell))
		})
	}
}

func TestSectorNeighbors_Center(t *testing.T) {
	dims, err := NewMapDimensions(200, 200)
	require.NoError(t, err)

	neighbors := SectorNeighbors(SectorID{5, 7}, dims)
	expected := []SectorID{{5, 6}, {6, 7}, {5, 8}, {4, 7}}
	assert.Equal(t, expected, neighbors)
}

func TestSectorNeighbors_MapEdges(t *testing.T) {
	dims, err := NewMapDimensions(200, 200)
	require.NoError(t, err)

	tests := []struct {
		name     string
		id       SectorID
		expected []SectorID
	}{
		{"northern edge", SectorID{4, 0}, []SectorID{{5, 0}, {4, 1}, {3, 0}}},
		{"eastern edge", SectorID{19, 3}, []SectorID{{19, 2}, {19, 4}, {18, 3}}},
		{"southern edge", SectorID{5, 19}, []SectorID{{5, 18}, {6, 19}, {4, 19}}},
		{"western edge", SectorID{0, 5}, []SectorID{{0, 4}, {1, 5}, {0, 6}}},
		{"top left corner", SectorID{0, 0}, []SectorID{{1, 0}, {0, 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SectorNeighbors(tt.id, dims))
		})
	}
}

func TestSectorNeighborsWithOrdinal(t *testing.T) {
	dims, err := NewMapDimensions(200, 200)
	require.NoError(t, err)

	assert.Equal(t, []SectorNeighbor{
		{North, SectorID{5, 6}},
		{East, SectorID{6, 7}},
		{South, SectorID{5, 8}},
		{West, SectorID{4, 7}},
	}, SectorNeighborsWithOrdinal(SectorID{5, 7}, dims))

	assert.Equal(t, []SectorNeighbor{
		{East, SectorID{1, 0}},
		{South, SectorID{0, 1}},
	}, SectorNeighborsWithOrdinal(SectorID{0, 0}, dims))

	assert.Equal(t, []SectorNeighbor{
		{North, SectorID{19, 2}},
		{South, SectorID{19, 4}},
		{West, SectorID{18, 3}},
	}, SectorNeighborsWithOrdinal(SectorID{19, 3}, dims))
}

func TestOrdinal_String(t *testing.T) {
	assert.Equal(t, "North", North.String())
	assert.Equal(t, "East", East.String())
	assert.Equal(t, "South", South.String())
	assert.Equal(t, "West", West.String())
}
