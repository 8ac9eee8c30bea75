package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/lyepez-glitch/VitalCore/internal/domain"
)

type LifeFactorRepo struct{ db *gorm.DB }

func NewLifeFactorRepo(db *gorm.DB) *LifeFactorRepo { return &LifeFactorRepo{db: db} }

func (r *LifeFactorRepo) Create(ctx context.Context, f *domain.LifeFactor) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *LifeFactorRepo) List(ctx context.Context) ([]domain.LifeFactor, error) {
	var factors []domain.LifeFactor
	err := r.db.WithContext(ctx).Order("id").Find(&factors).Error
	return factors, err
}
