package flowtiles

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// PathContext is the long-lived navigation context: the map extent, the
// per-sector cost fields and the per-sector portals. Cost fields are owned
// here for the lifetime of the map; integration fields are transient and
// built fresh per request.
type PathContext struct {
	dims    MapDimensions
	costs   *SectorMap[*CostField]
	portals *SectorMap[*Portals]
	log     Logger
}

// NewPathContext binds a validated map extent to its cost fields and
// portals. A nil logger is replaced with a no-op one.
func NewPathContext(dims MapDimensions, costs *SectorMap[*CostField], portals *SectorMap[*Portals], logger Logger) *PathContext {
	if logger == nil {
		logger = NewNopLogger()
	}
	return &PathContext{dims: dims, costs: costs, portals: portals, log: logger}
}

// Dims returns the map extent of the context.
func (c *PathContext) Dims() MapDimensions { return c.dims }

// CostFields returns the per-sector cost fields owned by the context.
func (c *PathContext) CostFields() *SectorMap[*CostField] { return c.costs }

// Portals returns the per-sector portals owned by the context.
func (c *PathContext) Portals() *SectorMap[*Portals] { return c.portals }

// IntegrationFieldsForRoute turns a source-first sector-portal route into
// per-sector integration fields. The route is walked goal to source and
// collapsed so each sector is computed exactly once, from the portal cell
// by which the route first enters that sector when traveling backward from
// the goal. The result covers exactly the sectors the route traverses;
// sectors off the route have no entry.
//
// The call is single-shot: any error aborts it with no partial result.
func (c *PathContext) IntegrationFieldsForRoute(route []RouteStep) (map[SectorID]*IntegrationField, error) {
	requestID := uuid.NewString()
	c.log.Infof("path request %s: integrating %d route steps", requestID, len(route))

	// Walk goal to source keeping the first cell seen per sector.
	goals := make([]RouteStep, 0, len(route))
	seen := make(map[SectorID]struct{}, len(route))
	for i := len(route) - 1; i >= 0; i-- {
		step := route[i]
		if _, ok := seen[step.Sector]; ok {
			continue
		}
		seen[step.Sector] = struct{}{}
		goals = append(goals, step)
	}

	fields := make(map[SectorID]*IntegrationField, len(goals))
	for _, goal := range goals {
		costs, err := c.costs.Get(goal.Sector)
		if err != nil {
			return nil, fmt.Errorf("path request %s: %w", requestID, err)
		}
		field := NewIntegrationField()
		if err := field.Reset(goal.Cell); err != nil {
			return nil, fmt.Errorf("path request %s: %w", requestID, err)
		}
		if err := field.Calculate(goal.Cell, costs); err != nil {
			return nil, fmt.Errorf("path request %s: %w", requestID, err)
		}
		fields[goal.Sector] = field
		c.log.Debugf("path request %s: sector %v integrated from cell %v", requestID, goal.Sector, goal.Cell)
	}
	c.log.Infof("path request %s: %d sectors integrated", requestID, len(fields))
	return fields, nil
}

// FindRoute asks the portal graph for the best route between two world
// positions and integrates every sector along it. An unreachable target
// surfaces the portal subsystem's error unchanged.
func (c *PathContext) FindRoute(sourcePos, targetPos mgl32.Vec3, graph PortalGraph) (map[SectorID]*IntegrationField, error) {
	sourceSector, sourceCell := SectorAndFieldCellFromWorld(sourcePos, c.dims)
	targetSector, targetCell := SectorAndFieldCellFromWorld(targetPos, c.dims)
	source := RouteStep{Sector: sourceSector, Cell: sourceCell}
	target := RouteStep{Sector: targetSector, Cell: targetCell}

	_, nodePath, err := graph.FindBestPath(source, target, c.portals, c.costs)
	if err != nil {
		return nil, err
	}
	route := graph.ConvertNodePathToSectorCells(nodePath, c.portals)
	return c.IntegrationFieldsForRoute(route)
}

// CostFieldChanged keeps the portal subsystem in sync after a sector's cost
// field was edited.
func (c *PathContext) CostFieldChanged(id SectorID, graph PortalGraph) error {
	if !c.dims.Contains(id) {
		return fmt.Errorf("%w: %v", ErrUnknownSector, id)
	}
	graph.UpdatePortalsForSector(id, c.costs, c.dims)
	return nil
}
