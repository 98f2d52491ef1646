package credential

import (
	"net/http"
	"strings"
	"time"
)

// CookieName é o cookie que guarda o token da sessão
const CookieName = "auth_token"

// FromRequest lê o token do cookie da requisição
func FromRequest(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || strings.TrimSpace(cookie.Value) == "" {
		return "", false
	}
	return cookie.Value, true
}

// Store grava o token em um cookie HttpOnly e SameSite=Strict.
// Com remember o cookie expira em rememberFor; sem ele vale apenas para a sessão do navegador.
func Store(w http.ResponseWriter, r *http.Request, token string, remember bool, rememberFor time.Duration) {
	cookie := &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   isSecure(r),
		SameSite: http.SameSiteStrictMode,
	}

	if remember {
		cookie.Expires = time.Now().Add(rememberFor)
	}

	http.SetCookie(w, cookie)
}

// Clear expira o cookie da sessão
func Clear(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   isSecure(r),
		SameSite: http.SameSiteStrictMode,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
	})
}

// isSecure considera o TLS terminado em proxy reverso
func isSecure(r *http.Request) bool {
	if r.TLS != nil {
		return true
	}
	return strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
}
