package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

const testToken = "unit-test-token"

func setupRouter() (*gin.Engine, *int) {
	gin.SetMode(gin.TestMode)
	reached := 0
	r := gin.New()
	r.Use(AuthMiddleware(testToken))
	handler := func(c *gin.Context) {
		reached++
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
	r.GET("/health", handler)
	r.GET("/protected", handler)
	r.OPTIONS("/protected", handler)
	return r, &reached
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	r, reached := setupRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", w.Code)
	}

	if *reached != 0 {
		t.Error("Expected the handler not to be reached without credentials")
	}

	if body := w.Body.String(); body != `{"error":"Unauthorized"}` {
		t.Errorf("Unexpected body: %s", body)
	}
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	r, reached := setupRouter()

	for _, header := range []string{"Bearer", testToken, "Basic " + testToken} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", header)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("Expected status 401 for header %q, got %d", header, w.Code)
		}
	}

	if *reached != 0 {
		t.Error("Expected the handler not to be reached with malformed credentials")
	}
}

func TestAuthMiddleware_WrongToken(t *testing.T) {
	r, reached := setupRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-the-token")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", w.Code)
	}

	if *reached != 0 {
		t.Error("Expected the handler not to be reached with a wrong token")
	}
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	r, reached := setupRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+testToken)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if *reached != 1 {
		t.Errorf("Expected the handler to be reached once, got %d", *reached)
	}
}

func TestAuthMiddleware_HealthBypass(t *testing.T) {
	r, reached := setupRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200 without credentials on /health, got %d", w.Code)
	}

	if *reached != 1 {
		t.Errorf("Expected the handler to be reached once, got %d", *reached)
	}
}

func TestAuthMiddleware_OptionsBypass(t *testing.T) {
	r, reached := setupRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/protected", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200 for OPTIONS without credentials, got %d", w.Code)
	}

	if *reached != 1 {
		t.Errorf("Expected the handler to be reached once, got %d", *reached)
	}
}
