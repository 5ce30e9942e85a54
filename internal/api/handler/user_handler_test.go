package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stayfinder/booking-api/internal/core/domain"
)

func TestUserHandler_Register_Success(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, email, password, firstName, lastName string) (*domain.Session, error) {
			if email != "a@b.com" || password != "secret1" || firstName != "Ada" || lastName != "Byron" {
				t.Fatalf("unexpected args: %s %s %s %s", email, password, firstName, lastName)
			}
			return &domain.Session{Token: "token123", UserID: "user_1", ExpiresAt: time.Now().Add(24 * time.Hour)}, nil
		},
	}
	handler := NewUserHandler(stub, false)

	body := `{"email":"a@b.com","password":"secret1","firstName":"Ada","lastName":"Byron"}`
	c, rec := newTestContext(t, http.MethodPost, "/api/users/register", body)
	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["userId"] != "user_1" {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}

	// Registration logs the new account in.
	cookie := sessionCookie(rec)
	if cookie == nil || cookie.Value != "token123" || !cookie.HttpOnly {
		t.Fatalf("expected session cookie on register, got %+v", cookie)
	}
}

func TestUserHandler_Register_Duplicate(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, email, password, firstName, lastName string) (*domain.Session, error) {
			return nil, domain.ErrUserExists
		},
	}
	handler := NewUserHandler(stub, false)

	body := `{"email":"a@b.com","password":"secret1","firstName":"Ada","lastName":"Byron"}`
	c, rec := newTestContext(t, http.MethodPost, "/api/users/register", body)
	_ = handler.Register(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if sessionCookie(rec) != nil {
		t.Fatalf("no cookie may be set on failed registration")
	}
}

func TestUserHandler_Register_ValidationErrors(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, email, password, firstName, lastName string) (*domain.Session, error) {
			t.Fatalf("service must not be called on invalid input")
			return nil, nil
		},
	}
	handler := NewUserHandler(stub, false)

	body := `{"email":"a@b.com","password":"short"}`
	c, rec := newTestContext(t, http.MethodPost, "/api/users/register", body)
	_ = handler.Register(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var resp struct {
		Errors []fieldErrorItem `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	// password too short, firstName and lastName missing
	if len(resp.Errors) != 3 {
		t.Fatalf("expected 3 field errors, got %s", rec.Body.String())
	}
}
