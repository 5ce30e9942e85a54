package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/stayfinder/booking-api/internal/api/handler"
	"github.com/stayfinder/booking-api/internal/api/middleware"
	"github.com/stayfinder/booking-api/internal/core/domain"
	"github.com/stayfinder/booking-api/internal/core/service"
)

// memoryUserRepo stands in for the Mongo credential store so the full HTTP
// flow can run without external dependencies.
type memoryUserRepo struct {
	users map[string]*domain.User
	next  int
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: make(map[string]*domain.User)}
}

func (r *memoryUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrUserExists
	}
	r.next++
	created := *user
	created.ID = "user_" + strconv.Itoa(r.next)
	r.users[created.Email] = &created
	clone := created
	return &clone, nil
}

func (r *memoryUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *memoryUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// newAuthTestServer wires the real handlers, middleware, and services the way
// NewRouter does, with the in-memory store in place of Mongo.
func newAuthTestServer() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.Nop())
	e.Use(echomiddleware.Recover())

	tokenService := service.NewJWTTokenService("test-secret", time.Hour)
	authService := service.NewAuthService(newMemoryUserRepo(), service.NewBcryptHasher(bcrypt.MinCost), tokenService)

	authHandler := handler.NewAuthHandler(authService, false)
	userHandler := handler.NewUserHandler(authService, false)
	sessionMiddleware := middleware.Session(tokenService)

	auth := e.Group("/api/auth")
	auth.POST("/login", authHandler.Login)
	auth.GET("/validate-token", authHandler.ValidateToken, sessionMiddleware)
	auth.POST("/logout", authHandler.Logout)
	e.POST("/api/users/register", userHandler.Register)

	return e
}

func doJSON(e *echo.Echo, method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func authCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	res := &http.Response{Header: rec.Header()}
	for _, c := range res.Cookies() {
		if c.Name == handler.SessionCookieName {
			return c
		}
	}
	return nil
}

func TestAuthFlow_EndToEnd(t *testing.T) {
	e := newAuthTestServer()

	// Register a@b.com / secret1.
	rec := doJSON(e, http.MethodPost, "/api/users/register",
		`{"email":"a@b.com","password":"secret1","firstName":"Ada","lastName":"Byron"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}

	// Login with the right password: 200 plus cookie.
	rec = doJSON(e, http.MethodPost, "/api/auth/login", `{"email":"a@b.com","password":"secret1"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	cookie := authCookie(rec)
	if cookie == nil || cookie.Value == "" || !cookie.HttpOnly {
		t.Fatalf("login did not set a usable cookie: %+v", cookie)
	}
	var loginResp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &loginResp); err != nil {
		t.Fatalf("login body: %v", err)
	}
	userID := loginResp["userId"]
	if userID == "" {
		t.Fatalf("login body missing userId: %s", rec.Body.String())
	}

	// Login with the wrong password: 400, generic message.
	rec = doJSON(e, http.MethodPost, "/api/auth/login", `{"email":"a@b.com","password":"wrong99"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("wrong password: expected 400, got %d", rec.Code)
	}
	wrongBody := rec.Body.String()

	// Login with a nonexistent email: byte-identical to the wrong-password case.
	rec = doJSON(e, http.MethodPost, "/api/auth/login", `{"email":"ghost@b.com","password":"secret1"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unknown email: expected 400, got %d", rec.Code)
	}
	if rec.Body.String() != wrongBody {
		t.Fatalf("credential failures distinguishable: %q vs %q", wrongBody, rec.Body.String())
	}

	// Validate the session the cookie carries.
	rec = doJSON(e, http.MethodGet, "/api/auth/validate-token", "", cookie)
	if rec.Code != http.StatusOK {
		t.Fatalf("validate-token: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	var validateResp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &validateResp); err != nil {
		t.Fatalf("validate body: %v", err)
	}
	if validateResp["userId"] != userID {
		t.Fatalf("expected userId %q, got %q", userID, validateResp["userId"])
	}

	// Logout clears the cookie…
	rec = doJSON(e, http.MethodPost, "/api/auth/logout", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("logout: expected 200, got %d", rec.Code)
	}
	cleared := authCookie(rec)
	if cleared == nil || cleared.Value != "" {
		t.Fatalf("logout did not clear the cookie: %+v", cleared)
	}

	// …but the old token stays cryptographically valid until natural expiry.
	// Sessions are stateless: logout is client-side discard, not revocation.
	rec = doJSON(e, http.MethodGet, "/api/auth/validate-token", "", cookie)
	if rec.Code != http.StatusOK {
		t.Fatalf("replayed pre-logout token: expected 200, got %d", rec.Code)
	}
}

func TestAuthFlow_NoCookieRejected(t *testing.T) {
	e := newAuthTestServer()

	rec := doJSON(e, http.MethodGet, "/api/auth/validate-token", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthFlow_DuplicateRegistration(t *testing.T) {
	e := newAuthTestServer()

	body := `{"email":"a@b.com","password":"secret1","firstName":"Ada","lastName":"Byron"}`
	if rec := doJSON(e, http.MethodPost, "/api/users/register", body); rec.Code != http.StatusCreated {
		t.Fatalf("first register: expected 201, got %d", rec.Code)
	}
	rec := doJSON(e, http.MethodPost, "/api/users/register", body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("duplicate register: expected 400, got %d", rec.Code)
	}
}
