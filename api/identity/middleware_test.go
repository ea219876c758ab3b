package identity

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubTokenizer struct {
	subjects map[string]string
}

func (s *stubTokenizer) Generate(map[string]interface{}, time.Duration) (string, error) {
	return "", errors.New("not implemented")
}

func (s *stubTokenizer) Decode(string) (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

func (s *stubTokenizer) Subject(token string) (string, error) {
	if subject, ok := s.subjects[token]; ok {
		return subject, nil
	}
	return "", errors.New("invalid token")
}

func TestAuthorize(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(Authorize(&stubTokenizer{subjects: map[string]string{"good": "alice"}}))
	router.GET("/whoami", func(c *gin.Context) {
		c.String(http.StatusOK, Subject(c))
	})

	tests := []struct {
		name   string
		header string
		code   int
		body   string
	}{
		{"no header", "", http.StatusUnauthorized, ""},
		{"wrong scheme", "Basic good", http.StatusUnauthorized, ""},
		{"no token", "Bearer", http.StatusUnauthorized, ""},
		{"unknown token", "Bearer bad", http.StatusUnauthorized, ""},
		{"valid token", "Bearer good", http.StatusOK, "alice"},
		{"scheme is case insensitive", "bearer good", http.StatusOK, "alice"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.code, w.Code)
			assert.Equal(t, tt.body, w.Body.String())
		})
	}
}
