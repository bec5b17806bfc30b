package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"resume-optimizer/internal/shared/auth"
)

func newAuthRouter(t *testing.T) (*gin.Engine, *auth.Signer) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	signer := auth.NewSigner("test-secret")

	r := gin.New()
	r.GET("/whoami", Auth(signer), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": UserIDFromContext(c)})
	})
	return r, signer
}

func TestAuthRejectsMissingHeader(t *testing.T) {
	r, _ := newAuthRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}

func TestAuthRejectsMalformedHeader(t *testing.T) {
	r, _ := newAuthRouter(t)

	for _, header := range []string{"Token abc", "Bearer", "Bearer   "} {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", header)
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, req)

		if resp.Code != http.StatusUnauthorized {
			t.Errorf("header %q: expected 401, got %d", header, resp.Code)
		}
	}
}

func TestAuthAcceptsValidToken(t *testing.T) {
	r, signer := newAuthRouter(t)

	pair, err := signer.IssuePair("user-42", "u@example.com", "U")
	if err != nil {
		t.Fatalf("IssuePair: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if body := resp.Body.String(); !strings.Contains(body, "user-42") {
		t.Errorf("expected body to contain user-42, got %s", body)
	}
}
