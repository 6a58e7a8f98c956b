// Package memory provides in-memory implementations of the repository
// interfaces, used as test doubles in place of a live database. Missing
// rows are reported as gorm.ErrRecordNotFound so services observe the
// same error contract as with the gorm-backed repositories.
package memory

import (
	"context"
	"sort"
	"sync"

	"booklend/internal/adapters/persistence/models"
	"booklend/internal/adapters/persistence/repositories"

	"gorm.io/gorm"
)

// Store holds all in-memory tables behind a single lock.
type Store struct {
	mu     sync.Mutex
	users  map[uint]models.User
	books  map[uint]models.Book
	txs    map[uint]models.Transaction
	nextID uint
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		users: make(map[uint]models.User),
		books: make(map[uint]models.Book),
		txs:   make(map[uint]models.Transaction),
	}
}

func (s *Store) allocID() uint {
	s.nextID++
	return s.nextID
}

// Users returns a UserRepository view of the store.
func (s *Store) Users() repositories.UserRepository { return &userRepo{s} }

// Books returns a BookRepository view of the store.
func (s *Store) Books() repositories.BookRepository { return &bookRepo{s} }

// Transactions returns a TransactionRepository view of the store.
func (s *Store) Transactions() repositories.TransactionRepository { return &txRepo{s} }

type userRepo struct{ s *Store }

func (r *userRepo) Create(_ context.Context, user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Username == user.Username {
			return gorm.ErrDuplicatedKey
		}
	}
	if user.ID == 0 {
		user.ID = r.s.allocID()
	}
	r.s.users[user.ID] = *user
	return nil
}

func (r *userRepo) GetByID(_ context.Context, id uint) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}

func (r *userRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *userRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

type bookRepo struct{ s *Store }

func (r *bookRepo) Create(_ context.Context, book *models.Book) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if book.ID == 0 {
		book.ID = r.s.allocID()
	}
	r.s.books[book.ID] = *book
	return nil
}

func (r *bookRepo) GetByID(_ context.Context, id uint) (*models.Book, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b, ok := r.s.books[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &b, nil
}

func (r *bookRepo) List(_ context.Context) ([]*models.Book, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	ids := make([]uint, 0, len(r.s.books))
	for id := range r.s.books {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	books := make([]*models.Book, 0, len(ids))
	for _, id := range ids {
		b := r.s.books[id]
		books = append(books, &b)
	}
	return books, nil
}

func (r *bookRepo) Update(_ context.Context, book *models.Book) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.books[book.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.s.books[book.ID] = *book
	return nil
}

type txRepo struct{ s *Store }

func (r *txRepo) Create(_ context.Context, tx *models.Transaction) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if tx.ID == 0 {
		tx.ID = r.s.allocID()
	}
	r.s.txs[tx.ID] = *tx
	return nil
}

func (r *txRepo) GetBorrowedByIDAndUser(_ context.Context, id, userID uint) (*models.Transaction, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	tx, ok := r.s.txs[id]
	if !ok || tx.UserID != userID || tx.Status != models.TransactionStatusBorrowed {
		return nil, gorm.ErrRecordNotFound
	}
	return &tx, nil
}

func (r *txRepo) Update(_ context.Context, tx *models.Transaction) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.txs[tx.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.s.txs[tx.ID] = *tx
	return nil
}

func (r *txRepo) ListByUser(_ context.Context, userID uint) ([]*models.Transaction, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var txs []*models.Transaction
	for _, tx := range r.s.txs {
		if tx.UserID != userID {
			continue
		}
		tx := tx
		if b, ok := r.s.books[tx.BookID]; ok {
			tx.Book = b
		}
		txs = append(txs, &tx)
	}
	sort.Slice(txs, func(i, j int) bool {
		return txs[i].BorrowDate.After(txs[j].BorrowDate)
	})
	return txs, nil
}
