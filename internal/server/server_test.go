package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taha-arar/blog/internal/auth"
	"github.com/taha-arar/blog/internal/repository"
)

const (
	superadminEmail    = "anais@blog.com"
	superadminPassword = "anais123"
)

// testConfig satisfies auth.Config with fixed values for tests
type testConfig struct{}

func (testConfig) GetSigningKey() string     { return "test-signing-key-0123456789" }
func (testConfig) GetTokenExpiration() int   { return 30 }
func (testConfig) GetCookieName() string     { return "ACCESS_TOKEN" }
func (testConfig) GetCookieSecure() bool     { return false }
func (testConfig) GetCookieSameSite() string { return "Lax" }
func (testConfig) GetCookiePath() string     { return "/" }

func newTestServer(t *testing.T) *fiber.App {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := repository.Connect("file:" + name + "?mode=memory&cache=shared")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	require.NoError(t, repository.InitSchema(ctx, db))

	users := repository.NewUsers(db)
	logger := auth.DefaultLogger()
	require.NoError(t, SeedSuperadmin(ctx, users, superadminEmail, superadminPassword, logger))

	return New(Dependencies{
		Config:   testConfig{},
		Users:    users,
		Authors:  repository.NewAuthors(db),
		Articles: repository.NewArticles(db),
		Logger:   logger,
	})
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any, cookie string) *http.Response {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if cookie != "" {
		req.Header.Set("Cookie", "ACCESS_TOKEN="+cookie)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

// sessionCookie extracts the token value from the Set-Cookie header
func sessionCookie(resp *http.Response) (string, bool) {
	for _, c := range resp.Cookies() {
		if c.Name == "ACCESS_TOKEN" {
			return c.Value, c.Value != ""
		}
	}
	return "", false
}

func login(t *testing.T, app *fiber.App, email, password string) string {
	t.Helper()

	resp := doJSON(t, app, "POST", "/api/v1/auth/login", fiber.Map{
		"email":    email,
		"password": password,
	}, "")
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	token, ok := sessionCookie(resp)
	require.True(t, ok)
	return token
}

func TestRegisterIssuesSession(t *testing.T) {
	app := newTestServer(t)

	resp := doJSON(t, app, "POST", "/api/v1/auth/register", fiber.Map{
		"first_name": "Alice",
		"last_name":  "Smith",
		"email":      "alice@example.com",
		"password":   "password123",
	}, "")
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	token, ok := sessionCookie(resp)
	require.True(t, ok)

	// the cookie carries a verifiable token for the new account
	claims, err := auth.NewTokenService(testConfig{}, nil).Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", claims.Subject())
	assert.Equal(t, []string{"ROLE_VISITOR"}, claims.Authorities())

	var body AuthResponse
	decode(t, resp, &body)
	assert.Equal(t, "alice@example.com", body.Email)
	assert.False(t, body.Active)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	app := newTestServer(t)

	payload := fiber.Map{
		"first_name": "Alice",
		"last_name":  "Smith",
		"email":      "alice@example.com",
		"password":   "password123",
	}

	resp := doJSON(t, app, "POST", "/api/v1/auth/register", payload, "")
	resp.Body.Close()
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, "POST", "/api/v1/auth/register", payload, "")
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)

	var apiErr APIError
	decode(t, resp, &apiErr)
	assert.Equal(t, fiber.StatusConflict, apiErr.Status)
	assert.Equal(t, "/api/v1/auth/register", apiErr.Path)
	assert.NotEmpty(t, apiErr.Message)
}

func TestLoginWrongPassword(t *testing.T) {
	app := newTestServer(t)

	resp := doJSON(t, app, "POST", "/api/v1/auth/login", fiber.Map{
		"email":    superadminEmail,
		"password": "wrong-password",
	}, "")
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	// a failed login never sets a cookie
	_, ok := sessionCookie(resp)
	assert.False(t, ok)
}

func TestLoginUnknownEmailSameOutcome(t *testing.T) {
	app := newTestServer(t)

	wrongPassword := doJSON(t, app, "POST", "/api/v1/auth/login", fiber.Map{
		"email":    superadminEmail,
		"password": "wrong-password",
	}, "")
	unknownEmail := doJSON(t, app, "POST", "/api/v1/auth/login", fiber.Map{
		"email":    "nobody@example.com",
		"password": "password123",
	}, "")

	var a, b APIError
	decode(t, wrongPassword, &a)
	decode(t, unknownEmail, &b)

	assert.Equal(t, a.Status, b.Status)
	assert.Equal(t, a.Message, b.Message)
}

func TestExpiredTokenIsAnonymous(t *testing.T) {
	app := newTestServer(t)

	tokens := auth.NewTokenService(testConfig{}, nil)
	past := time.Now().Add(-time.Hour)
	token, err := tokens.SignClaims(&auth.JWTClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   superadminEmail,
			IssuedAt:  jwt.NewNumericDate(past),
			ExpiresAt: jwt.NewNumericDate(past.Add(time.Minute)),
		},
		Roles: []string{"ROLE_SUPERADMIN"},
	})
	require.NoError(t, err)

	resp := doJSON(t, app, "GET", "/api/v1/auth/me", nil, token)
	resp.Body.Close()
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestGarbageCookieOnPublicRoute(t *testing.T) {
	app := newTestServer(t)

	resp := doJSON(t, app, "GET", "/api/v1/articles", nil, "not!a(token")
	resp.Body.Close()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAuthMe(t *testing.T) {
	app := newTestServer(t)

	resp := doJSON(t, app, "GET", "/api/v1/auth/me", nil, "")
	resp.Body.Close()
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	token := login(t, app, superadminEmail, superadminPassword)

	resp = doJSON(t, app, "GET", "/api/v1/auth/me", nil, token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body AuthResponse
	decode(t, resp, &body)
	assert.Equal(t, superadminEmail, body.Email)
	assert.True(t, body.Active)
}

func TestLogoutClearsCookie(t *testing.T) {
	app := newTestServer(t)

	resp := doJSON(t, app, "POST", "/api/v1/auth/logout", nil, "")
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	for _, c := range resp.Cookies() {
		if c.Name == "ACCESS_TOKEN" {
			assert.Empty(t, c.Value)
			return
		}
	}
	t.Fatal("expected a Set-Cookie clearing the session")
}

func TestAuthorActiveNoOp(t *testing.T) {
	app := newTestServer(t)
	token := login(t, app, superadminEmail, superadminPassword)

	resp := doJSON(t, app, "POST", "/api/v1/authors", fiber.Map{
		"first_name": "Jane",
		"last_name":  "Doe",
		"email":      "jane@example.com",
	}, token)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var author struct {
		ID     int64 `json:"id"`
		Active bool  `json:"is_active"`
	}
	decode(t, resp, &author)
	assert.True(t, author.Active)

	// asking for the state the author is already in is answered, not rejected
	resp = doJSON(t, app, "PATCH", "/api/v1/authors/active/1?active=true", nil, token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Message string `json:"message"`
	}
	decode(t, resp, &body)
	assert.Contains(t, body.Message, "already")
}

func TestArticleLifecycle(t *testing.T) {
	app := newTestServer(t)
	token := login(t, app, superadminEmail, superadminPassword)

	resp := doJSON(t, app, "POST", "/api/v1/authors", fiber.Map{
		"first_name": "Jane",
		"last_name":  "Doe",
		"email":      "jane@example.com",
	}, token)
	resp.Body.Close()
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// content outside the allowed length is rejected
	resp = doJSON(t, app, "POST", "/api/v1/articles", fiber.Map{
		"title":     "First Post",
		"content":   "this content is far too long",
		"author_id": 1,
	}, token)
	resp.Body.Close()
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, "POST", "/api/v1/articles", fiber.Map{
		"title":     "First Post",
		"content":   "short",
		"author_id": 1,
	}, token)
	resp.Body.Close()
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// duplicate title
	resp = doJSON(t, app, "POST", "/api/v1/articles", fiber.Map{
		"title":     "First Post",
		"content":   "short",
		"author_id": 1,
	}, token)
	resp.Body.Close()
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)

	// unknown author
	resp = doJSON(t, app, "POST", "/api/v1/articles", fiber.Map{
		"title":     "Other Post",
		"content":   "short",
		"author_id": 99,
	}, token)
	resp.Body.Close()
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	// reading a single article needs a session
	resp = doJSON(t, app, "GET", "/api/v1/articles/1", nil, "")
	resp.Body.Close()
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, app, "GET", "/api/v1/articles/1", nil, token)
	resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// the article is already active, repeating the state is a conflict
	resp = doJSON(t, app, "PATCH", "/api/v1/articles/active/1?active=true", nil, token)
	resp.Body.Close()
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)

	resp = doJSON(t, app, "PATCH", "/api/v1/articles/active/1?active=false", nil, token)
	resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// the author is already assigned
	resp = doJSON(t, app, "PATCH", "/api/v1/articles/1/author", fiber.Map{
		"author_id": 1,
	}, token)
	resp.Body.Close()
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)

	// the list is public
	resp = doJSON(t, app, "GET", "/api/v1/articles", nil, "")
	resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestVisitorCannotWrite(t *testing.T) {
	app := newTestServer(t)
	admin := login(t, app, superadminEmail, superadminPassword)

	// a registered visitor, activated so it can log in
	resp := doJSON(t, app, "POST", "/api/v1/auth/register", fiber.Map{
		"first_name": "Victor",
		"last_name":  "Visitor",
		"email":      "victor@example.com",
		"password":   "password123",
		"active":     true,
	}, "")
	resp.Body.Close()
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	visitor := login(t, app, "victor@example.com", "password123")

	resp = doJSON(t, app, "POST", "/api/v1/articles", fiber.Map{
		"title":     "Nope",
		"content":   "short",
		"author_id": 1,
	}, visitor)
	resp.Body.Close()
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp = doJSON(t, app, "POST", "/api/v1/authors", fiber.Map{
		"first_name": "Jane",
		"last_name":  "Doe",
		"email":      "jane@example.com",
	}, visitor)
	resp.Body.Close()
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp = doJSON(t, app, "GET", "/api/v1/users", nil, visitor)
	resp.Body.Close()
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp = doJSON(t, app, "GET", "/api/v1/users", nil, admin)
	resp.Body.Close()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestUserManagement(t *testing.T) {
	app := newTestServer(t)
	token := login(t, app, superadminEmail, superadminPassword)

	resp := doJSON(t, app, "POST", "/api/v1/users", fiber.Map{
		"first_name": "Bob",
		"last_name":  "Jones",
		"email":      "bob@example.com",
		"password":   "password123",
		"role":       "ADMIN",
	}, token)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created struct {
		ID     int64  `json:"id"`
		Role   string `json:"role"`
		Active bool   `json:"is_active"`
	}
	decode(t, resp, &created)
	assert.Equal(t, "ADMIN", created.Role)

	// missing password
	resp = doJSON(t, app, "POST", "/api/v1/users", fiber.Map{
		"first_name": "Carol",
		"last_name":  "King",
		"email":      "carol@example.com",
	}, token)
	resp.Body.Close()
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// duplicate email
	resp = doJSON(t, app, "POST", "/api/v1/users", fiber.Map{
		"first_name": "Bob",
		"last_name":  "Jones",
		"email":      "bob@example.com",
		"password":   "password123",
	}, token)
	resp.Body.Close()
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	resp = doJSON(t, app, "GET", "/api/v1/users/page-search?criteria=bob", nil, token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var page struct {
		TotalElements int `json:"total_elements"`
	}
	decode(t, resp, &page)
	assert.Equal(t, 1, page.TotalElements)

	resp = doJSON(t, app, "DELETE", "/api/v1/users/2", nil, token)
	resp.Body.Close()
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}
