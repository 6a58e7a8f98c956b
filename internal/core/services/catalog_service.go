package services

import (
	"context"

	"booklend/internal/adapters/persistence/models"
	"booklend/internal/adapters/persistence/repositories"
)

// CatalogService serves the public book catalog
type CatalogService struct {
	bookRepo repositories.BookRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(bookRepo repositories.BookRepository) *CatalogService {
	return &CatalogService{bookRepo: bookRepo}
}

// ListBooks lists all books, unfiltered and unpaginated
func (s *CatalogService) ListBooks(ctx context.Context) ([]*models.Book, error) {
	return s.bookRepo.List(ctx)
}
