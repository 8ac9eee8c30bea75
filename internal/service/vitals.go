package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/lyepez-glitch/VitalCore/internal/domain"
)

// VitalsService owns the rules over the three entity kinds: validation runs
// before anything is persisted, and no other component writes records.
type VitalsService struct {
	cells   domain.CellRepository
	genes   domain.GeneRepository
	factors domain.LifeFactorRepository
	log     *zap.Logger
}

func NewVitalsService(cells domain.CellRepository, genes domain.GeneRepository, factors domain.LifeFactorRepository, log *zap.Logger) *VitalsService {
	return &VitalsService{cells: cells, genes: genes, factors: factors, log: log}
}

func (s *VitalsService) CreateCell(ctx context.Context, c *domain.Cell) error {
	if err := c.Validate(); err != nil {
		return err
	}
	return s.cells.Create(ctx, c)
}

func (s *VitalsService) ListCells(ctx context.Context) ([]domain.Cell, error) {
	return s.cells.List(ctx)
}

// CellLifespans returns just the lifespan column, in id order.
func (s *VitalsService) CellLifespans(ctx context.Context) ([]int, error) {
	cells, err := s.cells.List(ctx)
	if err != nil {
		return nil, err
	}
	lifespans := make([]int, 0, len(cells))
	for _, c := range cells {
		lifespans = append(lifespans, c.Lifespan)
	}
	return lifespans, nil
}

// UpdateLifespans applies the positional bulk update. Partial application on
// a mid-sequence failure is the documented behavior; the count of applied
// positions is returned either way.
func (s *VitalsService) UpdateLifespans(ctx context.Context, values []int) (int, error) {
	applied, err := s.cells.UpdateLifespanByPosition(ctx, values)
	if err != nil {
		s.log.Warn("bulk lifespan update stopped early",
			zap.Int("applied", applied), zap.Int("requested", len(values)), zap.Error(err))
	}
	return applied, err
}

func (s *VitalsService) AddGene(ctx context.Context, name string, mutationRate float64, impact *int) (*domain.Gene, error) {
	g := &domain.Gene{GeneName: name, MutationRate: mutationRate, ImpactOnLifespan: impact}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if err := s.genes.Create(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *VitalsService) ListGenes(ctx context.Context) ([]domain.Gene, error) {
	return s.genes.List(ctx)
}

func (s *VitalsService) GetGene(ctx context.Context, id uint) (*domain.Gene, error) {
	return s.genes.FindByID(ctx, id)
}

func (s *VitalsService) ModifyGeneActivity(ctx context.Context, id uint, impact *int) (*domain.Gene, error) {
	return s.genes.UpdateImpact(ctx, id, impact)
}

func (s *VitalsService) CreateLifeFactor(ctx context.Context, f *domain.LifeFactor) error {
	if err := f.Validate(); err != nil {
		return err
	}
	return s.factors.Create(ctx, f)
}

func (s *VitalsService) ListLifeFactors(ctx context.Context) ([]domain.LifeFactor, error) {
	return s.factors.List(ctx)
}
