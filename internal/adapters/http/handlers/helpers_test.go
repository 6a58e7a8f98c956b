package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"booklend/internal/adapters/http/middleware"
	"booklend/internal/adapters/persistence/models"
	"booklend/internal/adapters/persistence/repositories/memory"
	"booklend/internal/config"
	"booklend/internal/core/services"
	"booklend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

const testSecret = "handler-test-secret"

// newTestApp wires the real handlers and auth middleware against the
// in-memory store, without the global rate limiters.
func newTestApp(t *testing.T) (*fiber.App, *memory.Store) {
	t.Helper()

	cfg := &config.Config{
		AppMode: "dev",
		JWT: config.JWTConfig{
			Secret:          testSecret,
			AccessTokenMins: 60,
		},
	}

	store := memory.NewStore()

	authService := services.NewAuthService(store.Users(), cfg)
	catalogService := services.NewCatalogService(store.Books())
	lendingService := services.NewLendingService(store.Books(), store.Transactions())

	authHandler := NewAuthHandler(authService)
	bookHandler := NewBookHandler(catalogService, lendingService)

	app := fiber.New(fiber.Config{ErrorHandler: middleware.CustomErrorHandler})

	api := app.Group("/api")
	api.Post("/register", authHandler.Register)
	api.Post("/login", authHandler.Login)
	api.Get("/books", bookHandler.ListBooks)

	protected := api.Group("", middleware.AuthMiddleware(store.Users(), cfg))
	protected.Post("/books/borrow/:id", bookHandler.Borrow)
	protected.Post("/books/return/:id", bookHandler.Return)
	protected.Get("/history", bookHandler.History)

	return app, store
}

func doJSON(t *testing.T, app *fiber.App, method, path, body, token string) (*http.Response, response.Response) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var envelope response.Response
	require.NoError(t, json.Unmarshal(raw, &envelope), "body: %s", raw)
	return resp, envelope
}

// registerAndLogin creates a user through the API and returns its token.
func registerAndLogin(t *testing.T, app *fiber.App, username string) string {
	t.Helper()

	body := `{"username":"` + username + `","password":"secret123"}`
	resp, _ := doJSON(t, app, http.MethodPost, "/api/register", body, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, envelope := doJSON(t, app, http.MethodPost, "/api/login", body, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok, "login data: %v", envelope.Data)
	token, _ := data["token"].(string)
	require.NotEmpty(t, token)
	return token
}

// currentUserID looks up a registered user's ID in the store.
func currentUserID(t *testing.T, store *memory.Store, username string) uint {
	t.Helper()
	user, err := store.Users().GetByUsername(context.Background(), username)
	require.NoError(t, err)
	return user.ID
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func seedTestBook(t *testing.T, store *memory.Store, title string, quantity int) *models.Book {
	t.Helper()
	book := &models.Book{
		Title:    title,
		Author:   "Author",
		Quantity: quantity,
		Status:   models.StatusForQuantity(quantity),
	}
	require.NoError(t, store.Books().Create(context.Background(), book))
	return book
}
