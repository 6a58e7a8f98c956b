package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthHandler_Register(t *testing.T) {
	app, _ := newTestApp(t)

	resp, envelope := doJSON(t, app, http.MethodPost, "/api/register", `{"username":"alice","password":"secret123"}`, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.True(t, envelope.Success)

	// duplicate username
	resp, envelope = doJSON(t, app, http.MethodPost, "/api/register", `{"username":"alice","password":"other456"}`, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.False(t, envelope.Success)
	assert.Equal(t, "User already exists", envelope.Message)
}

func TestAuthHandler_Register_InvalidBody(t *testing.T) {
	app, _ := newTestApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/register", `{"username":1}`, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPost, "/api/register", `{"username":"","password":"x"}`, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAuthHandler_Login(t *testing.T) {
	app, _ := newTestApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/register", `{"username":"bob","password":"secret123"}`, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, envelope := doJSON(t, app, http.MethodPost, "/api/login", `{"username":"bob","password":"secret123"}`, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	assert.NotEmpty(t, data["token"])
	assert.Equal(t, "bob", data["username"])

	// wrong password: 400, no token
	resp, envelope = doJSON(t, app, http.MethodPost, "/api/login", `{"username":"bob","password":"wrong"}`, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.False(t, envelope.Success)
	assert.Nil(t, envelope.Data)
}
