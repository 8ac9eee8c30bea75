package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/lyepez-glitch/VitalCore/internal/domain"
)

type GeneRepo struct{ db *gorm.DB }

func NewGeneRepo(db *gorm.DB) *GeneRepo { return &GeneRepo{db: db} }

func (r *GeneRepo) Create(ctx context.Context, g *domain.Gene) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *GeneRepo) List(ctx context.Context) ([]domain.Gene, error) {
	var genes []domain.Gene
	err := r.db.WithContext(ctx).Order("id").Find(&genes).Error
	return genes, err
}

func (r *GeneRepo) FindByID(ctx context.Context, id uint) (*domain.Gene, error) {
	var g domain.Gene
	err := r.db.WithContext(ctx).First(&g, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *GeneRepo) UpdateImpact(ctx context.Context, id uint, impact *int) (*domain.Gene, error) {
	g, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(g).Update("impact_on_lifespan", impact).Error; err != nil {
		return nil, err
	}
	g.ImpactOnLifespan = impact
	return g, nil
}
