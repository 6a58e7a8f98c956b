package models

import (
	"time"

	"gorm.io/gorm"
)

// Book status values. Status is always derived from Quantity and is
// never written independently of it.
const (
	BookStatusAvailable  = "Available"
	BookStatusOutOfStock = "Out of Stock"
)

// Transaction status values. The only legal transition is
// Borrowed -> Returned.
const (
	TransactionStatusBorrowed = "Borrowed"
	TransactionStatusReturned = "Returned"
)

// User represents users table
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// UserResponse DTO
type UserResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
	}
}

// Book represents books table
type Book struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Author    string    `gorm:"size:255;not null" json:"author"`
	Quantity  int       `gorm:"not null;default:1" json:"quantity"`
	Status    string    `gorm:"size:20;not null;default:'Available'" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Book) TableName() string {
	return "books"
}

// StatusForQuantity derives the book status from a quantity.
func StatusForQuantity(quantity int) string {
	if quantity > 0 {
		return BookStatusAvailable
	}
	return BookStatusOutOfStock
}

// RefreshStatus recomputes Status from Quantity. Must be called after
// every quantity mutation.
func (b *Book) RefreshStatus() {
	b.Status = StatusForQuantity(b.Quantity)
}

// BeforeSave keeps the derived status consistent on any save path,
// mirroring the quantity -> status rule at the persistence boundary.
func (b *Book) BeforeSave(tx *gorm.DB) error {
	b.RefreshStatus()
	return nil
}

// Transaction represents transactions table (the lending ledger)
type Transaction struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	UserID     uint       `gorm:"index;not null" json:"user_id"`
	BookID     uint       `gorm:"index;not null" json:"book_id"`
	BorrowDate time.Time  `gorm:"not null;index" json:"borrow_date"`
	ReturnDate *time.Time `json:"return_date"`
	Status     string     `gorm:"size:20;not null;default:'Borrowed'" json:"status"`
	User       User       `gorm:"foreignKey:UserID" json:"-"`
	Book       Book       `gorm:"foreignKey:BookID" json:"-"`
}

func (Transaction) TableName() string {
	return "transactions"
}

// IsReturned reports whether the transaction reached its terminal state.
func (t *Transaction) IsReturned() bool {
	return t.Status == TransactionStatusReturned
}

// HistoryEntry DTO: a ledger row enriched with book metadata
type HistoryEntry struct {
	ID         uint        `json:"id"`
	Book       HistoryBook `json:"book"`
	BorrowDate time.Time   `json:"borrow_date"`
	ReturnDate *time.Time  `json:"return_date"`
	Status     string      `json:"status"`
}

// HistoryBook carries only the book fields exposed in history
type HistoryBook struct {
	ID     uint   `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
}

// ToHistoryEntry builds the history DTO from a transaction with its
// Book association loaded.
func (t *Transaction) ToHistoryEntry() *HistoryEntry {
	return &HistoryEntry{
		ID: t.ID,
		Book: HistoryBook{
			ID:     t.Book.ID,
			Title:  t.Book.Title,
			Author: t.Book.Author,
		},
		BorrowDate: t.BorrowDate,
		ReturnDate: t.ReturnDate,
		Status:     t.Status,
	}
}

// AutoMigrate creates or updates all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Book{},
		&Transaction{},
	)
}
