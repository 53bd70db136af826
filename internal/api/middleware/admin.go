package middleware

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/AnshGupta06/Mindsettler-GWOC-26-sub001/internal/api/handlers"
)

// AdminOnly пропускает только пользователей из allowlist администраторов
//
// Список передается явно из конфигурации при старте, а не читается из
// глобального состояния - в тестах он подменяется конструктором
func AdminOnly(adminIDs []int64) mux.MiddlewareFunc {
	admins := make(map[int64]struct{}, len(adminIDs))
	for _, id := range adminIDs {
		admins[id] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := UserIDFromContext(r.Context())
			if !ok {
				handlers.RespondUnauthorized(w, "требуется аутентификация")
				return
			}

			if _, isAdmin := admins[userID]; !isAdmin {
				handlers.RespondForbidden(w, "требуются права администратора")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
