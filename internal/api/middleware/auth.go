package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/reservasalas/BookingService/internal/api/handlers"
)

// Заголовки идентификации запросов
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"

	// RoleAdmin роль, обходящая политику минимального времени и правила ограничений
	RoleAdmin = "admin"
)

const msgUserRequired = "требуется заголовок X-User-ID"

type contextKey string

const (
	userIDKey   contextKey = "user_id"
	userRoleKey contextKey = "user_role"
)

// Identity извлекает идентификацию пользователя из заголовков в контекст
// Заголовки опциональны: анонимные запросы проходят дальше без идентификации
func Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if rawID := r.Header.Get(HeaderUserID); rawID != "" {
			if userID, err := strconv.ParseInt(rawID, 10, 64); err == nil && userID > 0 {
				ctx = context.WithValue(ctx, userIDKey, userID)
			}
		}

		if role := r.Header.Get(HeaderUserRole); role != "" {
			ctx = context.WithValue(ctx, userRoleKey, role)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Auth требует идентификацию пользователя на изменяющих маршрутах
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetUserID(r.Context()); !ok {
			handlers.RespondUnauthorized(w, msgUserRequired)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetUserID возвращает ID пользователя из контекста
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}

// IsAdmin возвращает true, если запрос идёт от администратора
func IsAdmin(ctx context.Context) bool {
	role, ok := ctx.Value(userRoleKey).(string)
	return ok && role == RoleAdmin
}
