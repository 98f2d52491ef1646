package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/bespoked-admin/internal/domain"
	"github.com/vfg2006/bespoked-admin/internal/usecases/authenticating"
	"github.com/vfg2006/bespoked-admin/pkg/credential"
	"github.com/vfg2006/bespoked-admin/pkg/middleware"
)

type meResponse struct {
	Username  string     `json:"username,omitempty"`
	Role      string     `json:"role,omitempty"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

// Login autentica na API e guarda o token no cookie da sessão.
// O token nunca vai no corpo da resposta.
func Login(service authenticating.Authenticator, rememberFor time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.LoginRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		session, err := service.Login(r.Context(), req)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		credential.Store(w, r, session.Token, req.Remember, rememberFor)

		writeJSON(w, r, http.StatusOK, session)
	}
}

func Logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		credential.Clear(w, r)
		w.WriteHeader(http.StatusNoContent)
	}
}

// GetMe devolve o que se sabe do usuário a partir do token; tokens opacos respondem vazio
func GetMe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := meResponse{}

		if claims := middleware.ClaimsFromContext(r.Context()); claims != nil {
			response.Username = claims.Username
			response.Role = claims.Role
			if claims.ExpiresAt != nil {
				expiresAt := claims.ExpiresAt.Time
				response.ExpiresAt = &expiresAt
			}
		}

		writeJSON(w, r, http.StatusOK, response)
	}
}
