package memory

import (
	"context"
	"sync"

	"github.com/Zekken26/quick-serve/internal/entity"
	"github.com/google/uuid"
)

type serviceRepository struct {
	mu    sync.RWMutex
	items []*entity.Service
}

func NewServiceRepository(seed []*entity.Service) ServiceRepository {
	r := &serviceRepository{}
	for _, s := range seed {
		clone := *s
		r.items = append(r.items, &clone)
	}
	return r
}

// Create assigns a collision-resistant identifier and appends the record.
func (r *serviceRepository) Create(ctx context.Context, service *entity.Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if service.ID == "" {
		service.ID = uuid.NewString()
	}
	clone := *service
	r.items = append(r.items, &clone)
	return nil
}

func (r *serviceRepository) GetByID(ctx context.Context, id string) (*entity.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.items {
		if s.ID == id {
			clone := *s
			return &clone, nil
		}
	}
	return nil, entity.ErrServiceNotFound
}

// GetAll returns the catalog in insertion order.
func (r *serviceRepository) GetAll(ctx context.Context) ([]*entity.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.Service, 0, len(r.items))
	for _, s := range r.items {
		clone := *s
		out = append(out, &clone)
	}
	return out, nil
}

// Update shallow-merges the patch into the stored record. Fields the
// patch does not name keep their current values.
func (r *serviceRepository) Update(ctx context.Context, id string, patch *entity.ServicePatch) (*entity.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.items {
		if s.ID == id {
			patch.Apply(s)
			clone := *s
			return &clone, nil
		}
	}
	return nil, entity.ErrServiceNotFound
}

// Delete removes the record by rebuilding the collection without it.
// Deleting an unknown id is a silent no-op.
func (r *serviceRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	filtered := r.items[:0]
	for _, s := range r.items {
		if s.ID != id {
			filtered = append(filtered, s)
		}
	}
	r.items = filtered
	return nil
}
