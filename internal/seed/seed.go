// Package seed creates the bootstrap records the system has always shipped
// with: one cell, one gene, one life factor.
package seed

import (
	"context"

	"go.uber.org/zap"

	"github.com/lyepez-glitch/VitalCore/internal/domain"
	"github.com/lyepez-glitch/VitalCore/internal/service"
)

// Bootstrap is idempotent: a kind that already has rows is left alone.
func Bootstrap(ctx context.Context, svc *service.VitalsService, log *zap.Logger) error {
	cells, err := svc.ListCells(ctx)
	if err != nil {
		return err
	}
	if len(cells) == 0 {
		c := domain.Cell{CellType: "Muscle", Age: 5, RepairRate: 0.95, MutationRate: 0.02, Lifespan: 100}
		if err := svc.CreateCell(ctx, &c); err != nil {
			return err
		}
	}

	genes, err := svc.ListGenes(ctx)
	if err != nil {
		return err
	}
	if len(genes) == 0 {
		impact := 20
		if _, err := svc.AddGene(ctx, "GeneA", 0.1, &impact); err != nil {
			return err
		}
	}

	factors, err := svc.ListLifeFactors(ctx)
	if err != nil {
		return err
	}
	if len(factors) == 0 {
		change := -5
		f := domain.LifeFactor{FactorName: "Radiation", FactorImpact: 0.5, LifespanChange: &change}
		if err := svc.CreateLifeFactor(ctx, &f); err != nil {
			return err
		}
	}

	log.Info("bootstrap records ensured")
	return nil
}
