package repositories

import (
	"context"

	"booklend/internal/adapters/persistence/models"
)

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

// BookRepository defines book repository interface
type BookRepository interface {
	Create(ctx context.Context, book *models.Book) error
	GetByID(ctx context.Context, id uint) (*models.Book, error)
	List(ctx context.Context) ([]*models.Book, error)
	Update(ctx context.Context, book *models.Book) error
}

// TransactionRepository defines lending ledger repository interface
type TransactionRepository interface {
	Create(ctx context.Context, tx *models.Transaction) error
	// GetBorrowedByIDAndUser finds a transaction by id that belongs to
	// the given user and is still in the Borrowed state.
	GetBorrowedByIDAndUser(ctx context.Context, id, userID uint) (*models.Transaction, error)
	Update(ctx context.Context, tx *models.Transaction) error
	// ListByUser returns the user's transactions with the Book
	// association loaded, most recent borrow first.
	ListByUser(ctx context.Context, userID uint) ([]*models.Transaction, error)
}
