package memory

import (
	"context"
	"testing"

	"github.com/Zekken26/quick-serve/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

// TestServiceCreateAssignsDistinctIDs проверяет уникальность
// идентификаторов при последовательном создании
func TestServiceCreateAssignsDistinctIDs(t *testing.T) {
	repo := NewServiceRepository(nil)
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		svc := &entity.Service{Title: "Window Cleaning", Price: 900}
		require.NoError(t, repo.Create(ctx, svc))
		require.NotEmpty(t, svc.ID)
		assert.False(t, seen[svc.ID], "duplicate id %s", svc.ID)
		seen[svc.ID] = true
	}
}

func TestServiceUpdatePartialMerge(t *testing.T) {
	repo := NewServiceRepository(nil)
	ctx := context.Background()

	svc := &entity.Service{Title: "House Cleaning", Price: 1500, Duration: "2-3 hours", IsActive: true}
	require.NoError(t, repo.Create(ctx, svc))

	// Патч без price не должен трогать price
	patch := &entity.ServicePatch{Title: strPtr("Deep Cleaning")}
	updated, err := repo.Update(ctx, svc.ID, patch)
	require.NoError(t, err)
	assert.Equal(t, "Deep Cleaning", updated.Title)
	assert.Equal(t, 1500, updated.Price)
	assert.Equal(t, "2-3 hours", updated.Duration)
	assert.True(t, updated.IsActive)

	// Повторное применение того же патча дает тот же результат
	again, err := repo.Update(ctx, svc.ID, patch)
	require.NoError(t, err)
	assert.Equal(t, updated, again)
}

func TestServiceUpdateNotFound(t *testing.T) {
	repo := NewServiceRepository(nil)

	_, err := repo.Update(context.Background(), "missing", &entity.ServicePatch{Price: intPtr(100)})
	assert.ErrorIs(t, err, entity.ErrServiceNotFound)
}

// TestServiceDeleteIdempotent: удаление отсутствующего id не является
// ошибкой и не меняет коллекцию
func TestServiceDeleteIdempotent(t *testing.T) {
	repo := NewServiceRepository(SeedServices())
	ctx := context.Background()

	before, err := repo.GetAll(ctx)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, "does-not-exist"))

	after, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	// Существующий id удаляется, повторное удаление — no-op
	require.NoError(t, repo.Delete(ctx, "1"))
	require.NoError(t, repo.Delete(ctx, "1"))

	after, err = repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, after, len(before)-1)
	_, err = repo.GetByID(ctx, "1")
	assert.ErrorIs(t, err, entity.ErrServiceNotFound)
}

func TestServiceGetAllReturnsCopies(t *testing.T) {
	repo := NewServiceRepository(SeedServices())
	ctx := context.Background()

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	all[0].Price = -1

	again, err := repo.GetByID(ctx, all[0].ID)
	require.NoError(t, err)
	assert.NotEqual(t, -1, again.Price)
}
