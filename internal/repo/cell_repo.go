package repo

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/lyepez-glitch/VitalCore/internal/domain"
)

type CellRepo struct{ db *gorm.DB }

func NewCellRepo(db *gorm.DB) *CellRepo { return &CellRepo{db: db} }

func (r *CellRepo) Create(ctx context.Context, c *domain.Cell) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CellRepo) List(ctx context.Context) ([]domain.Cell, error) {
	var cells []domain.Cell
	err := r.db.WithContext(ctx).Order("id").Find(&cells).Error
	return cells, err
}

func (r *CellRepo) FindByID(ctx context.Context, id uint) (*domain.Cell, error) {
	var c domain.Cell
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CellRepo) UpdateLifespan(ctx context.Context, id uint, lifespan int) error {
	res := r.db.WithContext(ctx).Model(&domain.Cell{}).Where("id = ?", id).Update("lifespan", lifespan)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateLifespanByPosition treats position i in values as the cell with id
// i+1 and issues one update per position, in order, awaiting each. The loop
// is deliberately not wrapped in a transaction: a failure at position k
// leaves positions 0..k-1 committed and returns how many were applied.
//
// Known limitation: the mapping only holds while cell ids are contiguous
// from 1, which is true here because cells are never deleted.
func (r *CellRepo) UpdateLifespanByPosition(ctx context.Context, values []int) (int, error) {
	for i, v := range values {
		id := uint(i + 1)
		if err := r.UpdateLifespan(ctx, id, v); err != nil {
			return i, fmt.Errorf("cell %d: %w", id, err)
		}
	}
	return len(values), nil
}
