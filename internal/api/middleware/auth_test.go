package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdminAuth(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	call := func(configured, provided string) int {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments", nil)
		if provided != "" {
			req.Header.Set("X-Admin-Key", provided)
		}
		rec := httptest.NewRecorder()
		AdminAuth(configured)(next).ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, call("secret", "secret"))
	assert.Equal(t, http.StatusUnauthorized, call("secret", "wrong"))
	assert.Equal(t, http.StatusUnauthorized, call("secret", ""))
	// Пустой сконфигурированный ключ отключает защищённые маршруты
	assert.Equal(t, http.StatusUnauthorized, call("", "anything"))
}
