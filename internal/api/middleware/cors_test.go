package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestIsOriginAllowed(t *testing.T) {
	tests := []struct {
		name   string
		origin string
		config CORSConfig
		want   bool
	}{
		{"allow all", "https://app.example.com", CORSConfig{AllowAllOrigins: true}, true},
		{"listed origin", "https://app.example.com", CORSConfig{AllowedOrigins: []string{"https://app.example.com"}}, true},
		{"case insensitive match", "https://APP.example.com", CORSConfig{AllowedOrigins: []string{"https://app.example.com"}}, true},
		{"wildcard entry", "https://other.example.com", CORSConfig{AllowedOrigins: []string{"*"}}, true},
		{"unlisted origin", "https://evil.example.com", CORSConfig{AllowedOrigins: []string{"https://app.example.com"}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsOriginAllowed(tt.origin, tt.config); got != tt.want {
				t.Errorf("IsOriginAllowed(%q) = %v, want %v", tt.origin, got, tt.want)
			}
		})
	}
}

func TestCORSPreflight(t *testing.T) {
	r := gin.New()
	r.Use(CORS(CORSConfig{AllowAllOrigins: true}))
	r.POST("/upload", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/upload", nil)
	req.Header.Set("Origin", "https://app.example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("preflight status = %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("allow-origin = %q", got)
	}
	allowed := w.Header().Get("Access-Control-Allow-Headers")
	if !strings.Contains(allowed, "X-HSP-Header") {
		t.Errorf("allow-headers missing X-HSP-Header: %q", allowed)
	}
}
