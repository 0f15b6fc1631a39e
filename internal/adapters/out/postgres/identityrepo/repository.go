// Package identityrepo persists identities.
package identityrepo

import (
	"context"
	"errors"

	"geoshop/internal/core/domain/model/identity"
	"geoshop/internal/core/domain/model/kernel"
	"geoshop/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type IdentityDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email       string    `gorm:"size:254;not null"`
	Name        string    `gorm:"size:255"`
	CompanyName string    `gorm:"size:255"`
	Subscribed  bool
}

func (IdentityDTO) TableName() string {
	return "identities"
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormIdentityRepository implements IdentityRepository using GORM.
type GormIdentityRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormIdentityRepository(db *gorm.DB, tracker aggregateTracker) *GormIdentityRepository {
	return &GormIdentityRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormIdentityRepository) Add(ctx context.Context, aggregate *identity.Identity) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := IdentityDTO{
		ID:          aggregate.ID().Bytes(),
		Email:       aggregate.Email(),
		Name:        aggregate.Name(),
		CompanyName: aggregate.CompanyName(),
		Subscribed:  aggregate.IsSubscribed(),
	}
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormIdentityRepository) Get(ctx context.Context, id kernel.UUID) (*identity.Identity, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto IdentityDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("identity", id.String())
		}
		return nil, err
	}

	restoredID, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return identity.NewIdentity(restoredID, dto.Email, dto.Name, dto.CompanyName, dto.Subscribed)
}
