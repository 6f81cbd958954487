package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/iudanet/clinicsync/internal/server/handlers"
)

// AuthMiddleware создает middleware для проверки JWT токена.
// Невалидный или просроченный токен приводит к 401 с JSON телом.
func AuthMiddleware(logger *slog.Logger, jwtConfig handlers.JWTConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.WarnContext(ctx, "missing Authorization header", "path", r.URL.Path)
				handlers.SendError(logger, w, "missing token", http.StatusUnauthorized)
				return
			}

			// Ожидаем формат: "Bearer <token>"
			scheme, tokenString, found := strings.Cut(authHeader, " ")
			if !found || !strings.EqualFold(scheme, "Bearer") || tokenString == "" {
				logger.WarnContext(ctx, "invalid Authorization header format")
				handlers.SendError(logger, w, "invalid token format", http.StatusUnauthorized)
				return
			}

			claims, err := handlers.ValidateAccessToken(jwtConfig, tokenString)
			if err != nil {
				logger.WarnContext(ctx, "invalid access token", "error", err)
				handlers.SendError(logger, w, "invalid or expired token", http.StatusUnauthorized)
				return
			}

			logger.DebugContext(ctx, "user authenticated", "user_id", claims.UserID, "username", claims.Username)

			next.ServeHTTP(w, r.WithContext(handlers.WithUser(ctx, claims.UserID, claims.Username)))
		})
	}
}
