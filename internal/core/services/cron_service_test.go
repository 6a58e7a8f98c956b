package services

import (
	"context"
	"testing"

	"booklend/internal/adapters/persistence/models"
	"booklend/internal/adapters/persistence/repositories/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCronService_ReconcileBookStatus(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	// drifted: quantity says available, stored status says otherwise
	drifted := &models.Book{Title: "Dune", Author: "Frank Herbert", Quantity: 3, Status: models.BookStatusOutOfStock}
	require.NoError(t, store.Books().Create(ctx, drifted))

	ok := &models.Book{Title: "1984", Author: "George Orwell", Quantity: 0, Status: models.BookStatusOutOfStock}
	require.NoError(t, store.Books().Create(ctx, ok))

	svc := NewCronService(store.Books())
	svc.ReconcileBookStatus()

	got, err := store.Books().GetByID(ctx, drifted.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookStatusAvailable, got.Status)

	got, err = store.Books().GetByID(ctx, ok.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookStatusOutOfStock, got.Status)
}
