package flowtiles

// RouteStep is one element of a sector-portal route: a sector and the cell
// inside it the route passes through.
type RouteStep struct {
	Sector SectorID
	Cell   FieldCell
}

// NodePath is an ordered sequence of portal graph nodes, referenced by
// index into the portal subsystem's own storage. Opaque to the core.
type NodePath []int

// Portals records the portal cells along each edge of a sector. The portal
// subsystem owns their derivation; the core only stores and hands back the
// per-sector payload.
type Portals struct {
	sides [4][]FieldCell
}

// NewPortals returns a Portals with no portal cells on any side.
func NewPortals() *Portals {
	return &Portals{}
}

// Side returns the portal cells along the given edge of the sector.
func (p *Portals) Side(o Ordinal) []FieldCell {
	return p.sides[o]
}

// SetSide replaces the portal cells along the given edge of the sector.
func (p *Portals) SetSide(o Ordinal, cells []FieldCell) {
	p.sides[o] = cells
}

// PortalGraph is the narrow interface the core consumes from the portal
// subsystem. Implementations search a graph of portal nodes connecting
// neighboring sectors; the core never inspects that graph directly.
type PortalGraph interface {
	// FindBestPath returns the total cost and node path of the best route
	// from source to target through the portal graph. When no route exists
	// the error wraps ErrPortalPathUnreachable.
	FindBestPath(source, target RouteStep, portals *SectorMap[*Portals], costs *SectorMap[*CostField]) (uint32, NodePath, error)
	// ConvertNodePathToSectorCells translates a node path into the core's
	// route format, source first.
	ConvertNodePathToSectorCells(path NodePath, portals *SectorMap[*Portals]) []RouteStep
	// UpdatePortalsForSector recalculates the portals of a sector and its
	// neighbors after that sector's cost field changed.
	UpdatePortalsForSector(id SectorID, costs *SectorMap[*CostField], dims MapDimensions)
}
