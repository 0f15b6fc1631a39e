package pricingrepo

import (
	"context"
	"errors"

	"geoshop/internal/adapters/out/postgres/postgis"
	"geoshop/internal/core/domain/model/kernel"
	"geoshop/internal/core/domain/model/pricing"
	"geoshop/internal/pkg/errs"

	"gorm.io/gorm"
)

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormPricingRepository implements PricingRepository using GORM.
type GormPricingRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormPricingRepository(db *gorm.DB, tracker aggregateTracker) *GormPricingRepository {
	return &GormPricingRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormPricingRepository) Add(ctx context.Context, aggregate *pricing.Pricing) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := FromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormPricingRepository) Get(ctx context.Context, id kernel.UUID) (*pricing.Pricing, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PricingDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pricing", id.String())
		}
		return nil, err
	}

	return ToDomain(dto)
}

// GormGeometryRepository stores pricing layer features and serves the
// engine's spatial prefilter.
type GormGeometryRepository struct {
	db *gorm.DB
}

func NewGormGeometryRepository(db *gorm.DB) *GormGeometryRepository {
	return &GormGeometryRepository{db: db}
}

func (r *GormGeometryRepository) Add(ctx context.Context, geometry *pricing.Geometry) error {
	if err := geometry.Validate(); err != nil {
		return err
	}

	dto := geometryFromDomain(geometry)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// FindIntersecting returns the features linked to pricingID, plus unlinked
// shared points, whose geometry intersects the polygon. The GiST index on
// geom serves the && bounding box test.
func (r *GormGeometryRepository) FindIntersecting(
	ctx context.Context,
	pricingID kernel.UUID,
	polygon kernel.Geometry,
) ([]*pricing.Geometry, error) {
	if err := errors.Join(pricingID.Validate(), polygon.Validate()); err != nil {
		return nil, err
	}

	area := postgis.FromKernel(polygon)
	var dtos []GeometryDTO
	err := r.db.WithContext(ctx).
		Table("pricing_geometries AS g").
		Select("g.id, g.name, g.geom, g.pricing_id, g.unit_price, p.currency").
		Joins("LEFT JOIN pricings p ON p.id = g.pricing_id").
		Where("g.pricing_id = ? OR (g.pricing_id IS NULL AND ST_GeometryType(g.geom) = 'ST_Point')", pricingID.Bytes()).
		Where("g.geom && ?::geometry AND ST_Intersects(g.geom, ?::geometry)", area, area).
		Order("g.name").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	geoms := make([]*pricing.Geometry, 0, len(dtos))
	for _, dto := range dtos {
		g, convErr := geometryToDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		geoms = append(geoms, g)
	}
	return geoms, nil
}
