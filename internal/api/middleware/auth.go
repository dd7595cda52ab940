package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/CRS-AvailabilityService/internal/api/handlers"
)

const adminTokenHeader = "X-Admin-Token"

// Auth проверяет административный токен в заголовке X-Admin-Token.
// Используется для защищенных операций (обновление датасета).
func Auth(adminToken string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(adminTokenHeader)
			if token == "" {
				handlers.RespondUnauthorized(w, "заголовок X-Admin-Token обязателен")
				return
			}

			if subtle.ConstantTimeCompare([]byte(token), []byte(adminToken)) != 1 {
				handlers.RespondUnauthorized(w, "некорректный административный токен")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
