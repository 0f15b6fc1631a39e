package ports

import (
	"context"

	"geoshop/internal/core/domain/model/kernel"
)

// GeometryProvider answers the spatial questions of the pricing engine.
// Areas are in the square units of the geometries' SRID (m² for LV95).
// Every call may block on an external engine and honours ctx.
type GeometryProvider interface {
	Area(ctx context.Context, g kernel.Geometry) (float64, error)

	Intersects(ctx context.Context, a, b kernel.Geometry) (bool, error)

	// Intersection returns a∩b, or ok=false when they don't overlap.
	Intersection(ctx context.Context, a, b kernel.Geometry) (result kernel.Geometry, ok bool, err error)

	// Within reports whether g lies strictly inside polygon, boundary excluded.
	Within(ctx context.Context, g, polygon kernel.Geometry) (bool, error)

	// CountWithin counts the geometries for which Within holds.
	CountWithin(ctx context.Context, geoms []kernel.Geometry, polygon kernel.Geometry) (int, error)
}
