package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/lyepez-glitch/VitalCore/internal/domain"
	"github.com/lyepez-glitch/VitalCore/internal/repo"
)

func intp(v int) *int { return &v }

func newVitals(cells []domain.Cell, genes []domain.Gene, factors []domain.LifeFactor) *VitalsService {
	return NewVitalsService(
		repo.NewInMemoryCellRepo(cells),
		repo.NewInMemoryGeneRepo(genes),
		repo.NewInMemoryLifeFactorRepo(factors),
		zap.NewNop(),
	)
}

func TestCreateCellRoundTrip(t *testing.T) {
	svc := newVitals(nil, nil, nil)
	ctx := context.Background()

	in := domain.Cell{CellType: "Muscle", Age: 5, RepairRate: 0.95, MutationRate: 0.02, Lifespan: 100}
	if err := svc.CreateCell(ctx, &in); err != nil {
		t.Fatalf("create: %v", err)
	}

	cells, err := svc.ListCells(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(cells) != 1 {
		t.Fatalf("expected 1 cell, got %d", len(cells))
	}
	got := cells[0]
	if got.CellType != in.CellType || got.Age != in.Age || got.RepairRate != in.RepairRate ||
		got.MutationRate != in.MutationRate || got.Lifespan != in.Lifespan {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestCreateCellRejectsInvalid(t *testing.T) {
	svc := newVitals(nil, nil, nil)
	err := svc.CreateCell(context.Background(), &domain.Cell{CellType: "", Lifespan: 10})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
	cells, _ := svc.ListCells(context.Background())
	if len(cells) != 0 {
		t.Fatal("invalid cell was persisted")
	}
}

func TestUpdateLifespansPartialApplication(t *testing.T) {
	seed := []domain.Cell{
		{CellType: "Muscle", Lifespan: 100, RepairRate: 0.9, MutationRate: 0.1},
		{CellType: "Nerve", Lifespan: 80, RepairRate: 0.8, MutationRate: 0.2},
	}
	svc := newVitals(seed, nil, nil)
	ctx := context.Background()

	// three positions against two cells: position 3 has no record
	applied, err := svc.UpdateLifespans(ctx, []int{110, 90, 70})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if applied != 2 {
		t.Fatalf("applied = %d, want 2", applied)
	}

	lifespans, _ := svc.CellLifespans(ctx)
	if lifespans[0] != 110 || lifespans[1] != 90 {
		t.Fatalf("earlier positions must stay committed, got %v", lifespans)
	}
}

func TestAddGeneAndGet(t *testing.T) {
	svc := newVitals(nil, nil, nil)
	ctx := context.Background()

	g, err := svc.AddGene(ctx, "GeneA", 0.1, intp(20))
	if err != nil {
		t.Fatalf("add gene: %v", err)
	}
	if g.ID != 1 {
		t.Fatalf("gene id = %d", g.ID)
	}

	got, err := svc.GetGene(ctx, g.ID)
	if err != nil {
		t.Fatalf("get gene: %v", err)
	}
	if got.GeneName != "GeneA" || *got.ImpactOnLifespan != 20 {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestAddGeneRejectsEmptyName(t *testing.T) {
	svc := newVitals(nil, nil, nil)
	if _, err := svc.AddGene(context.Background(), " ", 0.1, nil); err == nil {
		t.Fatal("empty gene_name accepted")
	}
	genes, _ := svc.ListGenes(context.Background())
	if len(genes) != 0 {
		t.Fatal("invalid gene was persisted")
	}
}

func TestModifyGeneActivity(t *testing.T) {
	svc := newVitals(nil, []domain.Gene{{GeneName: "GeneA", MutationRate: 0.1, ImpactOnLifespan: intp(20)}}, nil)
	ctx := context.Background()

	g, err := svc.ModifyGeneActivity(ctx, 1, intp(35))
	if err != nil {
		t.Fatalf("modify: %v", err)
	}
	if *g.ImpactOnLifespan != 35 {
		t.Fatalf("impact = %d, want 35", *g.ImpactOnLifespan)
	}
}

func TestModifyGeneActivityUnknownID(t *testing.T) {
	svc := newVitals(nil, nil, nil)
	if _, err := svc.ModifyGeneActivity(context.Background(), 99, intp(1)); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLifeFactorRoundTrip(t *testing.T) {
	svc := newVitals(nil, nil, nil)
	ctx := context.Background()

	change := -5
	if err := svc.CreateLifeFactor(ctx, &domain.LifeFactor{FactorName: "Radiation", FactorImpact: 0.5, LifespanChange: &change}); err != nil {
		t.Fatalf("create: %v", err)
	}
	factors, err := svc.ListLifeFactors(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(factors) != 1 || factors[0].FactorName != "Radiation" || *factors[0].LifespanChange != -5 {
		t.Fatalf("round trip mismatch: %+v", factors)
	}
}
