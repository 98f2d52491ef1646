package bespokedclient

import (
	"context"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	bespokeddomain "github.com/vfg2006/bespoked-admin/infrastructure/integrator/bespoked/domain"
)

// loginEnvelope cobre os nomes de token usados pelas versões da API
type loginEnvelope struct {
	Token       *string `json:"token"`
	AccessToken *string `json:"accessToken"`
	JWT         *string `json:"jwt"`
	Redirect    *string `json:"redirect"`
}

// token escolhe o primeiro campo presente, na ordem token, accessToken, jwt
func (e loginEnvelope) token() string {
	for _, candidate := range []*string{e.Token, e.AccessToken, e.JWT} {
		if candidate != nil {
			return *candidate
		}
	}
	return ""
}

// Login usa um caminho absoluto: a rota de autenticação fica na raiz do host, fora do caminho base
func (c *BespokedClient) Login(ctx context.Context, username, password string) (*bespokeddomain.LoginResponse, error) {
	const operation = "login"

	body, err := c.do(ctx, call{
		operation: operation,
		method:    http.MethodPost,
		path:      "/api/auth/login",
		body:      bespokeddomain.LoginRequest{Username: username, Password: password},
	})
	if err != nil {
		return nil, err
	}

	var envelope loginEnvelope
	if !isEmptyBody(body) {
		if err := c.json.Unmarshal(body, &envelope); err != nil {
			return nil, errors.Wrapf(err, "%s: erro ao decodificar JSON", operation)
		}
	}

	token := envelope.token()
	if strings.TrimSpace(token) == "" {
		return nil, &AuthenticationError{Reason: "a resposta de login não contém token"}
	}

	response := &bespokeddomain.LoginResponse{Token: token}
	if envelope.Redirect != nil {
		response.Redirect = *envelope.Redirect
	}

	return response, nil
}
