package services

import (
	"context"
	"errors"
	"time"

	"booklend/internal/adapters/persistence/models"
	"booklend/internal/adapters/persistence/repositories"
	"booklend/internal/core/domain"

	"gorm.io/gorm"
)

// LendingService orchestrates borrow and return operations. It owns the
// write path for Book.Quantity and Transaction.Status; no other
// component mutates these fields.
type LendingService struct {
	bookRepo repositories.BookRepository
	txRepo   repositories.TransactionRepository
}

// NewLendingService creates a new lending service
func NewLendingService(bookRepo repositories.BookRepository, txRepo repositories.TransactionRepository) *LendingService {
	return &LendingService{
		bookRepo: bookRepo,
		txRepo:   txRepo,
	}
}

// Borrow lends one copy of a book to the user. The inventory decrement
// and the ledger insert are two sequential writes; no transaction spans
// them, and no lock guards the decrement against concurrent borrows.
func (s *LendingService) Borrow(ctx context.Context, bookID, userID uint) (*models.Book, error) {
	book, err := s.bookRepo.GetByID(ctx, bookID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBookNotFound
		}
		return nil, err
	}

	if book.Quantity < 1 {
		return nil, domain.ErrBookOutOfStock
	}

	book.Quantity--
	book.RefreshStatus()
	if err := s.bookRepo.Update(ctx, book); err != nil {
		return nil, err
	}

	tx := &models.Transaction{
		UserID:     userID,
		BookID:     book.ID,
		BorrowDate: time.Now(),
		Status:     models.TransactionStatusBorrowed,
	}
	if err := s.txRepo.Create(ctx, tx); err != nil {
		return nil, err
	}

	return book, nil
}

// Return closes a borrow transaction and restores the book's inventory.
// A transaction that is missing, owned by another user, or already
// returned is reported identically as not found.
func (s *LendingService) Return(ctx context.Context, transactionID, userID uint) error {
	tx, err := s.txRepo.GetBorrowedByIDAndUser(ctx, transactionID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrTransactionNotFound
		}
		return err
	}

	now := time.Now()
	tx.Status = models.TransactionStatusReturned
	tx.ReturnDate = &now
	if err := s.txRepo.Update(ctx, tx); err != nil {
		return err
	}

	book, err := s.bookRepo.GetByID(ctx, tx.BookID)
	if err != nil {
		// The return stands even when the book is gone; only the
		// inventory restoration is skipped.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	book.Quantity++
	book.RefreshStatus()
	return s.bookRepo.Update(ctx, book)
}

// History returns the user's transactions enriched with book metadata,
// most recent borrow first.
func (s *LendingService) History(ctx context.Context, userID uint) ([]*models.HistoryEntry, error) {
	txs, err := s.txRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries := make([]*models.HistoryEntry, 0, len(txs))
	for _, tx := range txs {
		entries = append(entries, tx.ToHistoryEntry())
	}
	return entries, nil
}
