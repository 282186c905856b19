package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/Zekken26/quick-serve/internal/entity"
	"github.com/google/uuid"
)

type categoryRepository struct {
	mu    sync.RWMutex
	items []*entity.Category
}

func NewCategoryRepository(seed []*entity.Category) CategoryRepository {
	r := &categoryRepository{}
	for _, c := range seed {
		clone := *c
		r.items = append(r.items, &clone)
	}
	return r
}

func (r *categoryRepository) Create(ctx context.Context, name string) (*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.items {
		if strings.EqualFold(c.Name, name) {
			return nil, entity.ErrCategoryAlreadyExists
		}
	}

	category := &entity.Category{ID: uuid.NewString(), Name: name}
	r.items = append(r.items, category)
	clone := *category
	return &clone, nil
}

func (r *categoryRepository) GetAll(ctx context.Context) ([]*entity.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.Category, 0, len(r.items))
	for _, c := range r.items {
		clone := *c
		out = append(out, &clone)
	}
	return out, nil
}
