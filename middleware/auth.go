package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v4"

	"github.com/footylab/league-system/models"
)

type contextKey string

const userContextKey contextKey = "user"

type AuthMiddleware struct {
	jwtSecret []byte
}

func NewAuthMiddleware(jwtSecret string) *AuthMiddleware {
	return &AuthMiddleware{jwtSecret: []byte(jwtSecret)}
}

// errorResponse mirrors the handlers' JSON error envelope so clients see one
// error format across the whole API.
func errorResponse(w http.ResponseWriter, status int, message string) {
	js, err := json.MarshalIndent(map[string]string{"error": message}, "", "\t")
	if err != nil {
		http.Error(w, message, status)
		return
	}
	js = append(js, '\n')

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(js)
}

// Authenticate verifies the bearer token and stores its claims in the request
// context for the handlers.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			errorResponse(w, http.StatusUnauthorized, "invalid or missing authentication token")
			return
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return m.jwtSecret, nil
		})
		if err != nil || !token.Valid {
			errorResponse(w, http.StatusUnauthorized, "invalid or missing authentication token")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			errorResponse(w, http.StatusUnauthorized, "invalid or missing authentication token")
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Authorize gates a route group to the listed roles. It requires Authenticate
// to have run first.
func (m *AuthMiddleware) Authorize(roles ...models.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, err := GetUserRoleFromContext(r.Context())
			if err != nil {
				errorResponse(w, http.StatusUnauthorized, "invalid or missing authentication token")
				return
			}

			for _, allowed := range roles {
				if allowed == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			errorResponse(w, http.StatusForbidden, "operation not allowed for the current role")
		})
	}
}
