package domain

import (
	"context"
	"strings"
	"time"
)

type Cell struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CellType     string    `gorm:"size:255;not null" json:"cell_type"`
	Age          int       `gorm:"not null" json:"age"`
	RepairRate   float64   `gorm:"type:decimal(5,2);not null" json:"repair_rate"`
	MutationRate float64   `gorm:"type:decimal(5,2);not null" json:"mutation_rate"`
	Lifespan     int       `gorm:"not null" json:"lifespan"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (Cell) TableName() string { return "cells" }

// Validate applies the declared column constraints before persistence.
func (c *Cell) Validate() error {
	if strings.TrimSpace(c.CellType) == "" {
		return invalid("cell_type", "must not be empty")
	}
	if c.Age < 0 {
		return invalid("age", "must not be negative")
	}
	if c.RepairRate < 0 {
		return invalid("repair_rate", "must not be negative")
	}
	if c.MutationRate < 0 {
		return invalid("mutation_rate", "must not be negative")
	}
	return nil
}

type CellRepository interface {
	Create(ctx context.Context, c *Cell) error
	List(ctx context.Context) ([]Cell, error)
	FindByID(ctx context.Context, id uint) (*Cell, error)
	UpdateLifespan(ctx context.Context, id uint, lifespan int) error
	UpdateLifespanByPosition(ctx context.Context, values []int) (int, error)
}
