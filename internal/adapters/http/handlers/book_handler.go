package handlers

import (
	"errors"
	"log"

	"booklend/internal/adapters/http/middleware"
	"booklend/internal/core/domain"
	"booklend/internal/core/services"
	"booklend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// BookHandler handles catalog and lending endpoints
type BookHandler struct {
	catalogService *services.CatalogService
	lendingService *services.LendingService
}

// NewBookHandler creates a new book handler
func NewBookHandler(catalogService *services.CatalogService, lendingService *services.LendingService) *BookHandler {
	return &BookHandler{
		catalogService: catalogService,
		lendingService: lendingService,
	}
}

// ListBooks lists the full catalog
// @Summary List all books
// @Tags Books
// @Produce json
// @Success 200 {object} response.Response
// @Router /books [get]
func (h *BookHandler) ListBooks(c *fiber.Ctx) error {
	books, err := h.catalogService.ListBooks(c.Context())
	if err != nil {
		log.Printf("❌ List books error: %v", err)
		return response.InternalServerError(c, "Server Error")
	}

	return response.Success(c, "", books)
}

// Borrow lends one copy of a book to the acting user
// @Summary Borrow a book
// @Tags Books
// @Produce json
// @Param id path int true "Book ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /books/borrow/{id} [post]
func (h *BookHandler) Borrow(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return response.Unauthorized(c, "Not authorized")
	}

	bookID, err := c.ParamsInt("id")
	if err != nil || bookID < 1 {
		return response.NotFound(c, "Book not found")
	}

	book, err := h.lendingService.Borrow(c.Context(), uint(bookID), userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrBookNotFound):
			return response.NotFound(c, "Book not found")
		case errors.Is(err, domain.ErrBookOutOfStock):
			return response.BadRequest(c, "Book is out of stock")
		default:
			log.Printf("❌ Borrow error: %v", err)
			return response.InternalServerError(c, "Server Error")
		}
	}

	return response.Success(c, "Book borrowed successfully", book)
}

// Return closes a borrow transaction of the acting user
// @Summary Return a borrowed book
// @Tags Books
// @Produce json
// @Param id path int true "Transaction ID"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /books/return/{id} [post]
func (h *BookHandler) Return(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return response.Unauthorized(c, "Not authorized")
	}

	transactionID, err := c.ParamsInt("id")
	if err != nil || transactionID < 1 {
		return response.NotFound(c, "Borrow record not found or book already returned")
	}

	if err := h.lendingService.Return(c.Context(), uint(transactionID), userID); err != nil {
		if errors.Is(err, domain.ErrTransactionNotFound) {
			return response.NotFound(c, "Borrow record not found or book already returned")
		}
		log.Printf("❌ Return error: %v", err)
		return response.InternalServerError(c, "Server Error")
	}

	return response.Success(c, "Book returned successfully", nil)
}

// History returns the acting user's borrowing history
// @Summary Get borrowing history
// @Tags Books
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Security BearerAuth
// @Router /history [get]
func (h *BookHandler) History(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Unauthorized(c, "Not authorized")
	}

	history, err := h.lendingService.History(c.Context(), user.ID)
	if err != nil {
		log.Printf("❌ History error: %v", err)
		return response.InternalServerError(c, "Server Error")
	}

	return response.Success(c, "", history)
}
