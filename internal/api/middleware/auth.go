// Package middleware HTTP middleware: аутентификация по заголовкам,
// метрики запросов и сквозной request id
package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
)

type contextKey string

const (
	userIDKey     contextKey = "userID"
	employeeIDKey contextKey = "employeeID"

	userIDHeader     = "X-User-ID"
	employeeIDHeader = "X-Employee-ID"

	msgMissingUserID     = "отсутствует или некорректен заголовок X-User-ID"
	msgMissingEmployeeID = "отсутствует или некорректен заголовок X-Employee-ID"
)

// Auth требует валидный заголовок X-User-ID и кладет userID в контекст
// Идентификацию выполняет внешний шлюз, сервис доверяет заголовку
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := strconv.ParseInt(r.Header.Get(userIDHeader), 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}
		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// EmployeeAuth требует валидный заголовок X-Employee-ID и кладет
// employeeID в контекст
func EmployeeAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		employeeID, err := strconv.ParseInt(r.Header.Get(employeeIDHeader), 10, 64)
		if err != nil || employeeID <= 0 {
			handlers.RespondUnauthorized(w, msgMissingEmployeeID)
			return
		}
		ctx := context.WithValue(r.Context(), employeeIDKey, employeeID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID достает userID из контекста запроса
func GetUserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

// GetEmployeeID достает employeeID из контекста запроса
func GetEmployeeID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(employeeIDKey).(int64)
	return id, ok
}
