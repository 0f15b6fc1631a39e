package kernel

import (
	"errors"
	"fmt"

	"geoshop/internal/pkg/errs"
	"geoshop/internal/pkg/guard"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
)

// DefaultSRID is the Swiss LV95 projection. Its unit is the metre, so
// polygon areas come out in square metres.
const DefaultSRID = 2056

var ErrGeometryIsNotConstructed = errors.New("Geometry must be created via NewGeometry, NewPolygon or NewPoint")

// Geometry couples an orb geometry with the SRID its coordinates are in.
// Orders, products and pricing layers must all share one planar SRID.
type Geometry struct {
	geom  orb.Geometry
	srid  int
	guard guard.ConstructorGuard
}

// NewGeometry accepts polygons, multipolygons and points.
func NewGeometry(g orb.Geometry, srid int) (Geometry, error) {
	switch v := g.(type) {
	case orb.Polygon:
		return NewPolygon(v, srid)
	case orb.MultiPolygon:
		if len(v) == 0 {
			return Geometry{}, errs.NewValueIsRequiredError("geometry")
		}
		for _, p := range v {
			if err := validatePolygon(p); err != nil {
				return Geometry{}, err
			}
		}
		return newGeometry(v, srid)
	case orb.Point:
		return NewPoint(v, srid)
	case nil:
		return Geometry{}, errs.NewValueIsRequiredError("geometry")
	default:
		return Geometry{}, errs.NewValueIsInvalidErrorWithCause(
			"geometry",
			fmt.Errorf("%s is not a supported geometry type", g.GeoJSONType()),
		)
	}
}

// NewPolygon requires a closed outer ring of at least four positions.
// Self-intersection is not checked here.
func NewPolygon(p orb.Polygon, srid int) (Geometry, error) {
	if err := validatePolygon(p); err != nil {
		return Geometry{}, err
	}
	return newGeometry(p, srid)
}

func NewPoint(p orb.Point, srid int) (Geometry, error) {
	return newGeometry(p, srid)
}

func newGeometry(g orb.Geometry, srid int) (Geometry, error) {
	if srid <= 0 {
		return Geometry{}, errs.NewValueIsInvalidErrorWithCause("srid", fmt.Errorf("%d is not a valid SRID", srid))
	}
	return Geometry{geom: g, srid: srid, guard: guard.NewConstructorGuard()}, nil
}

func validatePolygon(p orb.Polygon) error {
	if len(p) == 0 {
		return errs.NewValueIsRequiredError("polygon")
	}
	for _, ring := range p {
		if len(ring) < 4 {
			return errs.NewValueIsInvalidErrorWithCause(
				"polygon",
				fmt.Errorf("ring has %d positions, at least 4 are required", len(ring)),
			)
		}
		if !ring.Closed() {
			return errs.NewValueIsInvalidErrorWithCause("polygon", errors.New("ring is not closed"))
		}
	}
	return nil
}

func (g Geometry) Validate() error {
	return g.guard.Validate(ErrGeometryIsNotConstructed)
}

// Orb exposes the underlying geometry for adapters doing the math.
func (g Geometry) Orb() orb.Geometry {
	return g.geom
}

func (g Geometry) SRID() int {
	return g.srid
}

func (g Geometry) IsPolygon() bool {
	_, ok := g.geom.(orb.Polygon)
	return ok
}

// IsPolygonal reports polygons and multipolygons.
func (g Geometry) IsPolygonal() bool {
	switch g.geom.(type) {
	case orb.Polygon, orb.MultiPolygon:
		return true
	default:
		return false
	}
}

func (g Geometry) IsPoint() bool {
	_, ok := g.geom.(orb.Point)
	return ok
}

func (g Geometry) Bound() orb.Bound {
	return g.geom.Bound()
}

// WKT renders the geometry without its SRID, e.g. for ST_GeomFromText.
func (g Geometry) WKT() string {
	return wkt.MarshalString(g.geom)
}

func (g Geometry) String() string {
	return fmt.Sprintf("SRID=%d;%s", g.srid, g.WKT())
}
