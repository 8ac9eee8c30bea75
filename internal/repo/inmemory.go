package repo

import (
	"context"
	"fmt"
	"sync"

	"github.com/lyepez-glitch/VitalCore/internal/domain"
)

// In-memory repository implementations. They back the tests and make the
// process runnable without a database; ids are handed out from 1 exactly
// like the SQL auto-increment the positional update depends on.

type InMemoryCellRepo struct {
	mu    sync.Mutex
	cells []domain.Cell
}

func NewInMemoryCellRepo(seed []domain.Cell) *InMemoryCellRepo {
	r := &InMemoryCellRepo{}
	for i := range seed {
		c := seed[i]
		c.ID = uint(len(r.cells) + 1)
		r.cells = append(r.cells, c)
	}
	return r
}

func (r *InMemoryCellRepo) Create(_ context.Context, c *domain.Cell) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c.ID = uint(len(r.cells) + 1)
	r.cells = append(r.cells, *c)
	return nil
}

func (r *InMemoryCellRepo) List(_ context.Context) ([]domain.Cell, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Cell, len(r.cells))
	copy(out, r.cells)
	return out, nil
}

func (r *InMemoryCellRepo) FindByID(_ context.Context, id uint) (*domain.Cell, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.cells {
		if r.cells[i].ID == id {
			c := r.cells[i]
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *InMemoryCellRepo) UpdateLifespan(_ context.Context, id uint, lifespan int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.cells {
		if r.cells[i].ID == id {
			r.cells[i].Lifespan = lifespan
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *InMemoryCellRepo) UpdateLifespanByPosition(ctx context.Context, values []int) (int, error) {
	for i, v := range values {
		id := uint(i + 1)
		if err := r.UpdateLifespan(ctx, id, v); err != nil {
			return i, fmt.Errorf("cell %d: %w", id, err)
		}
	}
	return len(values), nil
}

type InMemoryGeneRepo struct {
	mu    sync.Mutex
	genes []domain.Gene
}

func NewInMemoryGeneRepo(seed []domain.Gene) *InMemoryGeneRepo {
	r := &InMemoryGeneRepo{}
	for i := range seed {
		g := seed[i]
		g.ID = uint(len(r.genes) + 1)
		r.genes = append(r.genes, g)
	}
	return r
}

func (r *InMemoryGeneRepo) Create(_ context.Context, g *domain.Gene) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	g.ID = uint(len(r.genes) + 1)
	r.genes = append(r.genes, *g)
	return nil
}

func (r *InMemoryGeneRepo) List(_ context.Context) ([]domain.Gene, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Gene, len(r.genes))
	copy(out, r.genes)
	return out, nil
}

func (r *InMemoryGeneRepo) FindByID(_ context.Context, id uint) (*domain.Gene, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.genes {
		if r.genes[i].ID == id {
			g := r.genes[i]
			return &g, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *InMemoryGeneRepo) UpdateImpact(_ context.Context, id uint, impact *int) (*domain.Gene, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.genes {
		if r.genes[i].ID == id {
			r.genes[i].ImpactOnLifespan = impact
			g := r.genes[i]
			return &g, nil
		}
	}
	return nil, domain.ErrNotFound
}

type InMemoryLifeFactorRepo struct {
	mu      sync.Mutex
	factors []domain.LifeFactor
}

func NewInMemoryLifeFactorRepo(seed []domain.LifeFactor) *InMemoryLifeFactorRepo {
	r := &InMemoryLifeFactorRepo{}
	for i := range seed {
		f := seed[i]
		f.ID = uint(len(r.factors) + 1)
		r.factors = append(r.factors, f)
	}
	return r
}

func (r *InMemoryLifeFactorRepo) Create(_ context.Context, f *domain.LifeFactor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	f.ID = uint(len(r.factors) + 1)
	r.factors = append(r.factors, *f)
	return nil
}

func (r *InMemoryLifeFactorRepo) List(_ context.Context) ([]domain.LifeFactor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.LifeFactor, len(r.factors))
	copy(out, r.factors)
	return out, nil
}

type InMemoryUserRepo struct {
	mu    sync.Mutex
	users []domain.User
}

func NewInMemoryUserRepo() *InMemoryUserRepo { return &InMemoryUserRepo{} }

func (r *InMemoryUserRepo) Create(_ context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.users {
		if r.users[i].Email == u.Email {
			return domain.ErrEmailTaken
		}
	}
	u.ID = uint(len(r.users) + 1)
	r.users = append(r.users, *u)
	return nil
}

func (r *InMemoryUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.users {
		if r.users[i].Email == email {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, domain.ErrNotFound
}
