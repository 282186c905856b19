package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Zekken26/quick-serve/internal/entity"
	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("session not found")

// Store issues opaque session tokens and resolves them back to the
// signed-in user. Tokens expire after the configured TTL.
type Store interface {
	Create(ctx context.Context, user *entity.SessionUser) (string, error)
	Get(ctx context.Context, token string) (*entity.SessionUser, error)
	Delete(ctx context.Context, token string) error
}

type memorySession struct {
	user      entity.SessionUser
	expiresAt time.Time
}

type memoryStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]memorySession
}

// NewMemoryStore keeps sessions in process memory. Used when Redis is
// not configured and in tests.
func NewMemoryStore(ttl time.Duration) Store {
	return &memoryStore{
		ttl:      ttl,
		sessions: make(map[string]memorySession),
	}
}

func (s *memoryStore) Create(ctx context.Context, user *entity.SessionUser) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	token := uuid.NewString()
	s.sessions[token] = memorySession{
		user:      *user,
		expiresAt: time.Now().Add(s.ttl),
	}
	return token, nil
}

func (s *memoryStore) Get(ctx context.Context, token string) (*entity.SessionUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if time.Now().After(sess.expiresAt) {
		delete(s.sessions, token)
		return nil, ErrSessionNotFound
	}
	user := sess.user
	return &user, nil
}

func (s *memoryStore) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, token)
	return nil
}
