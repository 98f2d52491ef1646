package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/vfg2006/bespoked-admin/internal/domain"
	"github.com/vfg2006/bespoked-admin/internal/usecases/authenticating"
	"github.com/vfg2006/bespoked-admin/pkg/apiErrors"
	"github.com/vfg2006/bespoked-admin/pkg/credential"
	"github.com/vfg2006/bespoked-admin/pkg/log"
)

type contextKey string

const (
	ContextKeyClaims contextKey = "claims"
)

var publicPaths = map[string]bool{
	"/healthcheck": true,
	"/v1/login":    true,
	"/v1/logout":   true,
}

// ClaimsFromContext devolve as claims do token da sessão; tokens opacos não têm claims
func ClaimsFromContext(ctx context.Context) *domain.Claims {
	claims, _ := ctx.Value(ContextKeyClaims).(*domain.Claims)
	return claims
}

// SessionMiddleware lê o token do cookie auth_token (ou do cabeçalho Authorization) e o
// coloca no contexto para que as chamadas à API o levem como Bearer.
func SessionMiddleware(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if publicPaths[r.URL.Path] || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			token, ok := tokenFromRequest(r)
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Sessão não encontrada", nil)
				return
			}

			claims, err := authService.ValidateToken(token)
			if err != nil {
				log.ForContext(r.Context()).WithError(err).Debug("Token da sessão recusado")

				code := apiErrors.ErrInvalidToken
				var authErr *authenticating.AuthError
				if errors.As(err, &authErr) && authErr.Code != "" {
					code = authErr.Code
				}

				if errors.Is(err, authenticating.ErrExpiredToken) {
					credential.Clear(w, r)
				}

				apiErrors.WriteError(w, code, err.Error(), nil)
				return
			}

			ctx := credential.NewContext(r.Context(), token)
			if claims != nil {
				ctx = context.WithValue(ctx, ContextKeyClaims, claims)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func tokenFromRequest(r *http.Request) (string, bool) {
	if token, ok := credential.FromRequest(r); ok {
		return token, true
	}

	authHeader := r.Header.Get("Authorization")
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == authHeader || strings.TrimSpace(token) == "" {
		return "", false
	}

	return strings.TrimSpace(token), true
}
