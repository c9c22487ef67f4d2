package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		expected string
	}{
		{name: "valid token", header: "Bearer abc123", expected: "abc123"},
		{name: "scheme is case insensitive", header: "bearer abc123", expected: "abc123"},
		{name: "surrounding whitespace trimmed", header: "Bearer  abc123 ", expected: "abc123"},
		{name: "missing header", header: "", expected: ""},
		{name: "basic scheme rejected", header: "Basic dXNlcjpwYXNz", expected: ""},
		{name: "scheme without token", header: "Bearer", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				c.Request.Header.Set("Authorization", tt.header)
			}
			assert.Equal(t, tt.expected, extractBearerToken(c))
		})
	}
}

func TestBearerAuth(t *testing.T) {
	tests := []struct {
		name       string
		secret     string
		header     string
		expectCode int
		expectBody string
	}{
		{
			name:       "unset secret fails closed",
			secret:     "",
			header:     "Bearer anything",
			expectCode: http.StatusInternalServerError,
			expectBody: `{"error":"API not configured"}`,
		},
		{
			name:       "missing header",
			secret:     "s3cret",
			expectCode: http.StatusUnauthorized,
			expectBody: `{"error":"Unauthorized"}`,
		},
		{
			name:       "wrong scheme",
			secret:     "s3cret",
			header:     "Token s3cret",
			expectCode: http.StatusUnauthorized,
			expectBody: `{"error":"Unauthorized"}`,
		},
		{
			name:       "wrong token",
			secret:     "s3cret",
			header:     "Bearer s3cre",
			expectCode: http.StatusUnauthorized,
			expectBody: `{"error":"Unauthorized"}`,
		},
		{
			name:       "correct token passes",
			secret:     "s3cret",
			header:     "Bearer s3cret",
			expectCode: http.StatusOK,
			expectBody: `{"ok":true}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.GET("/protected", bearerAuth(tt.secret), func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{"ok": true})
			})

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectCode, rec.Code)
			assert.JSONEq(t, tt.expectBody, rec.Body.String())
		})
	}
}
