package domain

import (
	"context"
	"strings"
	"time"
)

type Gene struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	GeneName         string    `gorm:"size:255;not null" json:"gene_name"`
	MutationRate     float64   `gorm:"type:decimal(5,2);not null" json:"mutation_rate"`
	ImpactOnLifespan *int      `json:"impact_on_lifespan"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func (Gene) TableName() string { return "genes" }

func (g *Gene) Validate() error {
	if strings.TrimSpace(g.GeneName) == "" {
		return invalid("gene_name", "must not be empty")
	}
	if g.MutationRate < 0 {
		return invalid("mutation_rate", "must not be negative")
	}
	return nil
}

type GeneRepository interface {
	Create(ctx context.Context, g *Gene) error
	List(ctx context.Context) ([]Gene, error)
	FindByID(ctx context.Context, id uint) (*Gene, error)
	// UpdateImpact rewrites impact_on_lifespan in place and returns the
	// refreshed record, or ErrNotFound for an unknown id.
	UpdateImpact(ctx context.Context, id uint, impact *int) (*Gene, error)
}
