package service

import (
	"context"
	"testing"

	"github.com/Zekken26/quick-serve/internal/database/memory"
	"github.com/Zekken26/quick-serve/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogFixture() CatalogService {
	store := memory.NewSeededStore()
	return NewCatalogService(store.Services, store.Categories)
}

func TestCreateServiceValidation(t *testing.T) {
	svc := newCatalogFixture()
	ctx := context.Background()

	price := 900

	tests := []struct {
		name    string
		req     *CreateServiceRequest
		wantErr error
	}{
		{
			name:    "missing title",
			req:     &CreateServiceRequest{Title: "  ", Price: &price},
			wantErr: entity.ErrInvalidInput,
		},
		{
			name:    "missing price",
			req:     &CreateServiceRequest{Title: "Window Cleaning"},
			wantErr: entity.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateService(ctx, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateServiceDefaultsActive(t *testing.T) {
	svc := newCatalogFixture()

	price := 900
	created, err := svc.CreateService(context.Background(), &CreateServiceRequest{
		Title: "Window Cleaning",
		Price: &price,
	})
	require.NoError(t, err)
	assert.True(t, created.IsActive)
	assert.NotEmpty(t, created.ID)
}

func TestCreateCategoryRejectsDuplicates(t *testing.T) {
	svc := newCatalogFixture()
	ctx := context.Background()

	created, err := svc.CreateCategory(ctx, "Painting")
	require.NoError(t, err)
	assert.Equal(t, "Painting", created.Name)

	// Дубликаты не зависят от регистра
	_, err = svc.CreateCategory(ctx, "painting")
	assert.ErrorIs(t, err, entity.ErrCategoryAlreadyExists)

	_, err = svc.CreateCategory(ctx, "   ")
	assert.ErrorIs(t, err, entity.ErrInvalidInput)
}
