package memory

import (
	"context"
	"sync"
	"time"

	"github.com/Zekken26/quick-serve/internal/entity"
	"github.com/google/uuid"
)

type userRepository struct {
	mu    sync.RWMutex
	items []*entity.User
}

func NewUserRepository(seed []*entity.User) UserRepository {
	r := &userRepository{}
	for _, u := range seed {
		clone := cloneUser(u)
		r.items = append(r.items, clone)
	}
	return r
}

func cloneUser(u *entity.User) *entity.User {
	clone := *u
	clone.Roles = append([]string(nil), u.Roles...)
	return &clone
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.items {
		if u.Email == user.Email {
			return entity.ErrUserAlreadyExists
		}
	}

	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	if user.Role == "" {
		user.Role = entity.RoleUser
	}
	if len(user.Roles) == 0 {
		user.Roles = []string{string(user.Role)}
	}
	r.items = append(r.items, cloneUser(user))
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.items {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, entity.ErrUserNotFound
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.items {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, entity.ErrUserNotFound
}

func (r *userRepository) Update(ctx context.Context, id string, patch *entity.UserPatch) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.items {
		if u.ID == id {
			patch.Apply(u)
			return cloneUser(u), nil
		}
	}
	return nil, entity.ErrUserNotFound
}

func (r *userRepository) GetAll(ctx context.Context) ([]*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.User, 0, len(r.items))
	for _, u := range r.items {
		out = append(out, cloneUser(u))
	}
	return out, nil
}
