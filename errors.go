package flowtiles

import "errors"

// Sentinel errors for flowtiles operations.
var (
	// ErrIndexOutOfBounds indicates a cell or sector index outside its grid.
	// Index errors are programmer errors: they abort the enclosing operation
	// and propagate without recovery.
	ErrIndexOutOfBounds = errors.New("flowtiles: index out of bounds")
	// ErrInvalidMapDimensions indicates a map extent that is zero or not a
	// multiple of SectorResolution.
	ErrInvalidMapDimensions = errors.New("flowtiles: map dimensions must be positive multiples of the sector resolution")
	// ErrUnknownSector indicates a sector id outside the map's sector grid.
	ErrUnknownSector = errors.New("flowtiles: sector id outside the map")
	// ErrInvalidCost indicates a loaded cost value outside [1, 255].
	ErrInvalidCost = errors.New("flowtiles: cost value outside [1, 255]")
	// ErrPortalPathUnreachable indicates the portal graph found no path
	// between the requested source and target.
	ErrPortalPathUnreachable = errors.New("flowtiles: no portal path between source and target")
)
