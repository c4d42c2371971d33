package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/paywallet/paywallet-backend/internal/domain"
)

// payerContextKey is a custom type for the context key to avoid collisions
type payerContextKey string

const payerKey payerContextKey = "payer"

// JWTAuthMiddleware validates the session token and stores the
// authenticated payer in the request context
func JWTAuthMiddleware(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Authorization header required", http.StatusUnauthorized)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				http.Error(w, "Invalid Authorization header format", http.StatusUnauthorized)
				return
			}

			token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
				}
				return secret, nil
			})
			if err != nil || !token.Valid {
				http.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				http.Error(w, "Invalid token claims", http.StatusUnauthorized)
				return
			}

			payer, err := payerFromClaims(claims)
			if err != nil {
				http.Error(w, "Invalid token claims", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), payerKey, payer)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// PayerFromContext returns the authenticated payer stored by the middleware
func PayerFromContext(ctx context.Context) (domain.User, bool) {
	payer, ok := ctx.Value(payerKey).(domain.User)
	return payer, ok
}

func payerFromClaims(claims jwt.MapClaims) (domain.User, error) {
	sub, _ := claims["sub"].(string)
	id, err := uuid.Parse(sub)
	if err != nil {
		return domain.User{}, fmt.Errorf("invalid sub claim: %w", err)
	}

	name, _ := claims["name"].(string)

	email, _ := claims["email"].(string)
	if email == "" {
		return domain.User{}, fmt.Errorf("missing email claim")
	}

	return domain.User{ID: id, Name: name, Email: email}, nil
}
