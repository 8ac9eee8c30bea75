package domain

import (
	"context"
	"strings"
	"time"
)

// LifeFactor records are created at bootstrap only; no mutation path exists.
type LifeFactor struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	FactorName     string    `gorm:"size:255;not null" json:"factor_name"`
	FactorImpact   float64   `gorm:"type:decimal(5,2);not null" json:"factor_impact"`
	LifespanChange *int      `json:"lifespan_change"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (LifeFactor) TableName() string { return "life_factors" }

func (f *LifeFactor) Validate() error {
	if strings.TrimSpace(f.FactorName) == "" {
		return invalid("factor_name", "must not be empty")
	}
	return nil
}

type LifeFactorRepository interface {
	Create(ctx context.Context, f *LifeFactor) error
	List(ctx context.Context) ([]LifeFactor, error)
}
