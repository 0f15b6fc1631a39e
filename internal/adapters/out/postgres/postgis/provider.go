package postgis

import (
	"context"

	"geoshop/internal/core/domain/model/kernel"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Provider answers geometry questions with PostGIS. It holds no transaction
// and can be shared.
type Provider struct {
	db *gorm.DB
}

func NewProvider(db *gorm.DB) *Provider {
	return &Provider{db: db}
}

func (p *Provider) Area(ctx context.Context, g kernel.Geometry) (float64, error) {
	var area float64
	err := p.db.WithContext(ctx).
		Raw("SELECT ST_Area(?::geometry)", FromKernel(g)).
		Row().Scan(&area)
	return area, err
}

func (p *Provider) Intersects(ctx context.Context, a, b kernel.Geometry) (bool, error) {
	var ok bool
	err := p.db.WithContext(ctx).
		Raw("SELECT ST_Intersects(?::geometry, ?::geometry)", FromKernel(a), FromKernel(b)).
		Row().Scan(&ok)
	return ok, err
}

// Intersection keeps the polygonal part of a∩b.
func (p *Provider) Intersection(ctx context.Context, a, b kernel.Geometry) (kernel.Geometry, bool, error) {
	var result Geometry
	err := p.db.WithContext(ctx).
		Raw(`
			SELECT CASE WHEN ST_IsEmpty(g) THEN NULL ELSE g END
			FROM (
				SELECT ST_CollectionExtract(ST_Intersection(?::geometry, ?::geometry), 3) AS g
			) AS overlay`, FromKernel(a), FromKernel(b)).
		Row().Scan(&result)
	if err != nil {
		return kernel.Geometry{}, false, err
	}
	if !result.Valid {
		return kernel.Geometry{}, false, nil
	}
	g, err := result.ToKernel()
	if err != nil {
		return kernel.Geometry{}, false, err
	}
	return g, true, nil
}

func (p *Provider) Within(ctx context.Context, g, polygon kernel.Geometry) (bool, error) {
	var ok bool
	err := p.db.WithContext(ctx).
		Raw("SELECT ST_Within(?::geometry, ?::geometry)", FromKernel(g), FromKernel(polygon)).
		Row().Scan(&ok)
	return ok, err
}

// CountWithin sends all candidates in one array parameter.
func (p *Provider) CountWithin(ctx context.Context, geoms []kernel.Geometry, polygon kernel.Geometry) (int, error) {
	if len(geoms) == 0 {
		return 0, nil
	}

	encoded := make([]string, 0, len(geoms))
	for _, g := range geoms {
		v, err := FromKernel(g).Value()
		if err != nil {
			return 0, err
		}
		if s, ok := v.(string); ok {
			encoded = append(encoded, s)
		}
	}

	var count int
	err := p.db.WithContext(ctx).
		Raw(`
			SELECT count(*)
			FROM unnest(?::geometry[]) AS candidate
			WHERE ST_Within(candidate, ?::geometry)`, pq.Array(encoded), FromKernel(polygon)).
		Row().Scan(&count)
	return count, err
}
