package middleware

import (
	"net/http"

	"github.com/m04kA/Lemo-AvailabilityService/internal/api/handlers"
)

const adminKeyHeader = "X-Admin-Key"

// AdminAuth проверяет наличие корректного административного ключа
// в заголовке X-Admin-Key. Пустой сконфигурированный ключ означает,
// что защищённые маршруты отключены
func AdminAuth(adminKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if adminKey == "" {
				handlers.RespondUnauthorized(w, "административный доступ не настроен")
				return
			}
			if r.Header.Get(adminKeyHeader) != adminKey {
				handlers.RespondUnauthorized(w, "некорректный административный ключ")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
