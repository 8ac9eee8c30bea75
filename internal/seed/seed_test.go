package seed

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/lyepez-glitch/VitalCore/internal/repo"
	"github.com/lyepez-glitch/VitalCore/internal/service"
)

func TestBootstrapIsIdempotent(t *testing.T) {
	svc := service.NewVitalsService(
		repo.NewInMemoryCellRepo(nil),
		repo.NewInMemoryGeneRepo(nil),
		repo.NewInMemoryLifeFactorRepo(nil),
		zap.NewNop(),
	)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := Bootstrap(ctx, svc, zap.NewNop()); err != nil {
			t.Fatalf("bootstrap #%d: %v", i+1, err)
		}
	}

	cells, _ := svc.ListCells(ctx)
	genes, _ := svc.ListGenes(ctx)
	factors, _ := svc.ListLifeFactors(ctx)
	if len(cells) != 1 || len(genes) != 1 || len(factors) != 1 {
		t.Fatalf("expected one of each, got %d/%d/%d", len(cells), len(genes), len(factors))
	}
	if cells[0].CellType != "Muscle" || genes[0].GeneName != "GeneA" || factors[0].FactorName != "Radiation" {
		t.Fatal("unexpected bootstrap records")
	}
}
