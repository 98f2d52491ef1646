// Package credential carrega o token de acesso da sessão até as chamadas à API remota.
//
// O token chega no cookie auth_token, é colocado no contexto da requisição pelo middleware
// de sessão e o Transport o anexa como cabeçalho Authorization: Bearer nas chamadas de saída.
package credential

import (
	"context"
	"strings"
)

type contextKey string

const tokenKey contextKey = "credential_token"

// NewContext devolve uma cópia de ctx carregando o token
func NewContext(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

// FromContext devolve o token do contexto; tokens em branco contam como ausentes
func FromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}

	token, ok := ctx.Value(tokenKey).(string)
	if !ok || strings.TrimSpace(token) == "" {
		return "", false
	}

	return token, true
}
