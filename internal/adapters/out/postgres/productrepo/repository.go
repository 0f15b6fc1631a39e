package productrepo

import (
	"context"
	"errors"

	"geoshop/internal/core/domain/model/kernel"
	"geoshop/internal/core/domain/model/product"
	"geoshop/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormProductRepository implements ProductRepository using GORM.
type GormProductRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormProductRepository(db *gorm.DB, tracker aggregateTracker) *GormProductRepository {
	return &GormProductRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add stores the product, its contacts and formats. Formats already known
// by id are reused as they are.
func (r *GormProductRepository) Add(ctx context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	formats := make([]DataFormatDTO, 0, len(dto.Formats))
	for _, pf := range dto.Formats {
		formats = append(formats, pf.Format)
	}
	if len(formats) > 0 {
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&formats).Error; err != nil {
			return err
		}
	}

	if err := db.Omit("Pricing").Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := r.preloaded(r.db.WithContext(ctx)).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Children returns the direct members of a group, by label.
func (r *GormProductRepository) Children(ctx context.Context, groupID kernel.UUID) ([]*product.Product, error) {
	if err := groupID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ProductDTO
	if err := r.preloaded(r.db.WithContext(ctx)).
		Where("group_id = ?", groupID.Bytes()).
		Order("label").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	products := make([]*product.Product, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

func (r *GormProductRepository) preloaded(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Pricing").
		Preload("Contacts").
		Preload("Formats", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		Preload("Formats.Format")
}
