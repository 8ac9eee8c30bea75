package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lyepez-glitch/VitalCore/internal/core/auth"
	"github.com/lyepez-glitch/VitalCore/internal/repo"
	"github.com/lyepez-glitch/VitalCore/internal/service"
)

func newAuthEnv() *gin.Engine {
	gin.SetMode(gin.TestMode)
	jwter := &auth.JWTer{Secret: []byte("test-secret"), Issuer: "vitalcore", TTL: time.Hour}
	svc := service.NewAuthService(repo.NewInMemoryUserRepo(), jwter, zap.NewNop())
	h := NewAuthHandler(svc, zap.NewNop())

	r := gin.New()
	r.POST("/signup", h.Signup)
	r.POST("/login", h.Login)
	return r
}

func TestSignupThenLoginReturnsToken(t *testing.T) {
	r := newAuthEnv()

	w := doJSON(t, r, http.MethodPost, "/signup", `{"email":"a@example.com","password":"s3cret"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("signup status = %d, body %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPost, "/login", `{"email":"a@example.com","password":"s3cret"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d, body %s", w.Code, w.Body.String())
	}
	var out struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Token == "" {
		t.Fatal("empty token")
	}
}

func TestLoginWrongPasswordIs401(t *testing.T) {
	r := newAuthEnv()
	doJSON(t, r, http.MethodPost, "/signup", `{"email":"a@example.com","password":"s3cret"}`)

	w := doJSON(t, r, http.MethodPost, "/login", `{"email":"a@example.com","password":"wrong"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var out struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil || out.Error == "" {
		t.Fatalf("expected error body, got %s", w.Body.String())
	}
}

func TestSignupDuplicateEmailIs409(t *testing.T) {
	r := newAuthEnv()
	doJSON(t, r, http.MethodPost, "/signup", `{"email":"a@example.com","password":"pw"}`)

	w := doJSON(t, r, http.MethodPost, "/signup", `{"email":"a@example.com","password":"pw"}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
}

func TestSignupInvalidEmailIs400(t *testing.T) {
	r := newAuthEnv()
	w := doJSON(t, r, http.MethodPost, "/signup", `{"email":"nope","password":"pw"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
}
