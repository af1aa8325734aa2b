package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stockhive-labs/stockhive-core/internal/core/domain"
)

func TestAuthenticate_MissingToken(t *testing.T) {
	env := newTestEnv()

	w := env.do(t, http.MethodGet, "/api/v1/warehouses", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without token, got %d", w.Code)
	}
}

func TestAuthenticate_GarbageToken(t *testing.T) {
	env := newTestEnv()

	w := env.do(t, http.MethodGet, "/api/v1/warehouses", "not-a-token", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for garbage token, got %d", w.Code)
	}
}

func TestAuthenticate_MalformedHeader(t *testing.T) {
	env := newTestEnv()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/warehouses", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	w := httptest.NewRecorder()
	env.server.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for non-bearer header, got %d", w.Code)
	}
}

func TestAuthenticate_ValidTokenReachesHandler(t *testing.T) {
	env := newTestEnv()

	companyID := "company-1"
	token := env.accessToken(t, &domain.AccessClaims{
		UserID:    "user-1",
		Email:     "ada@example.com",
		CompanyID: &companyID,
		Memberships: []domain.Membership{
			{Role: domain.RoleCompanyOwner},
		},
	})

	w := env.do(t, http.MethodGet, "/api/v1/warehouses", token, nil)
	if w.Code != http.StatusOK {
		t.Errorf("expected 200 for valid token, got %d: %s", w.Code, w.Body.String())
	}
}

func TestGetClaims_MissingValue(t *testing.T) {
	if GetClaims(nil) != nil {
		t.Error("expected nil claims for nil context")
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if GetClaims(req.Context()) != nil {
		t.Error("expected nil claims for unauthenticated context")
	}
}
