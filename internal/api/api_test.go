package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeAllowedOrigins(t *testing.T) {
	tests := []struct {
		name     string
		in       []string
		want     []string
		allowAll bool
	}{
		{name: "comma separated", in: []string{"http://a.test, http://b.test"}, want: []string{"http://a.test", "http://b.test"}},
		{name: "wildcard", in: []string{"*"}, allowAll: true},
		{name: "blank entries", in: []string{" ", "http://a.test,,"}, want: []string{"http://a.test"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, allowAll := normalizeAllowedOrigins(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.allowAll, allowAll)
		})
	}
}

func TestNewRouter_Health(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := NewRouter(nil, []string{"*"})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestNewRouter_UnregisteredServices(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := NewRouter(&Services{}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/config", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
