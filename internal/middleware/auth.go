package middleware

import (
	"casino_sim/internal/config"
	"casino_sim/pkg/token"
	"context"
	"net/http"
	"strings"
)

type ctxKey string

const loginKey ctxKey = "login"

// Auth проверяет access токен из заголовка Authorization
// и кладет логин пользователя в контекст запроса
func Auth(jwtCfg config.JWTConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				http.Error(w, "missing access token", http.StatusUnauthorized)
				return
			}

			claims, err := token.VerifyToken(strings.TrimPrefix(header, "Bearer "), jwtCfg.AccessTokenSecretKey())
			if err != nil {
				http.Error(w, "invalid access token", http.StatusUnauthorized)
				return
			}

			ctx := ContextWithLogin(r.Context(), claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ContextWithLogin - кладет логин в контекст
func ContextWithLogin(ctx context.Context, login string) context.Context {
	return context.WithValue(ctx, loginKey, login)
}

// LoginFromContext - достает логин из контекста
func LoginFromContext(ctx context.Context) (string, bool) {
	login, ok := ctx.Value(loginKey).(string)
	return login, ok && login != ""
}
