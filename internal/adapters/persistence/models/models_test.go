package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusForQuantity(t *testing.T) {
	assert.Equal(t, BookStatusOutOfStock, StatusForQuantity(0))
	assert.Equal(t, BookStatusAvailable, StatusForQuantity(1))
	assert.Equal(t, BookStatusAvailable, StatusForQuantity(5))
}

func TestBook_RefreshStatus(t *testing.T) {
	book := &Book{Quantity: 1, Status: BookStatusOutOfStock}
	book.RefreshStatus()
	assert.Equal(t, BookStatusAvailable, book.Status)

	book.Quantity = 0
	book.RefreshStatus()
	assert.Equal(t, BookStatusOutOfStock, book.Status)
}

func TestBook_BeforeSave_DerivesStatus(t *testing.T) {
	// the hook overrides any independently set status
	book := &Book{Quantity: 0, Status: BookStatusAvailable}
	require.NoError(t, book.BeforeSave(nil))
	assert.Equal(t, BookStatusOutOfStock, book.Status)
}

func TestTransaction_ToHistoryEntry(t *testing.T) {
	borrowed := time.Now().Add(-time.Hour)
	returned := time.Now()
	tx := &Transaction{
		ID:         3,
		UserID:     1,
		BookID:     2,
		BorrowDate: borrowed,
		ReturnDate: &returned,
		Status:     TransactionStatusReturned,
		Book:       Book{ID: 2, Title: "Dune", Author: "Frank Herbert"},
	}

	entry := tx.ToHistoryEntry()
	assert.Equal(t, uint(3), entry.ID)
	assert.Equal(t, "Dune", entry.Book.Title)
	assert.Equal(t, "Frank Herbert", entry.Book.Author)
	assert.Equal(t, TransactionStatusReturned, entry.Status)
	require.NotNil(t, entry.ReturnDate)
	assert.True(t, tx.IsReturned())
}
