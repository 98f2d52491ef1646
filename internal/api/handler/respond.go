package handler

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/bespoked-admin/infrastructure/integrator/bespoked"
	"github.com/vfg2006/bespoked-admin/infrastructure/integrator/bespoked/bespokedclient"
	"github.com/vfg2006/bespoked-admin/internal/domain"
	"github.com/vfg2006/bespoked-admin/internal/usecases/authenticating"
	"github.com/vfg2006/bespoked-admin/pkg/apiErrors"
	"github.com/vfg2006/bespoked-admin/pkg/credential"
	"github.com/vfg2006/bespoked-admin/pkg/log"
	"github.com/vfg2006/bespoked-admin/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if body == nil {
		return
	}

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}

// decodeJSON lê o corpo e valida a struct; a resposta de erro já é escrita quando devolve false
func decodeJSON(w http.ResponseWriter, r *http.Request, target any) bool {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Não foi possível ler o corpo da requisição", nil)
		return false
	}
	if len(bytes.TrimSpace(body)) == 0 {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição vazio", nil)
		return false
	}

	if err := domain.Unmarshal(json, body, target); err != nil {
		if errors.Is(err, utils.ErrInvalidDate) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida", err.Error())
			return false
		}
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato de requisição inválido", err.Error())
		return false
	}

	if err := validateStruct(target); err != nil {
		writeServiceError(w, r, err)
		return false
	}

	return true
}

// writeServiceError traduz os erros das camadas de baixo para a resposta HTTP
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.ForContext(r.Context()).WithError(err)

	var (
		validationErrs ValidationErrors
		authErr        *authenticating.AuthError
		resolutionErr  *bespoked.ResolutionError
		apiErr         *bespokedclient.APIError
		transportErr   *bespokedclient.TransportError
		credentialErr  *bespokedclient.AuthenticationError
	)

	switch {
	case errors.As(err, &validationErrs):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Dados inválidos", validationErrs)

	case errors.As(err, &authErr):
		message := authErr.Details
		if message == "" {
			message = authErr.Err.Error()
		}
		apiErrors.WriteError(w, authErr.Code, message, nil)

	case errors.As(err, &resolutionErr):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, resolutionErr.Error(), resolutionErr.Entities)

	// Datas de requisição são tratadas antes; aqui o formato inválido veio da API
	case errors.Is(err, utils.ErrInvalidDate):
		logger.Warn("API devolveu uma data em formato não suportado")
		apiErrors.WriteError(w, apiErrors.ErrExternalService, "A API devolveu uma data inválida", err.Error())

	case errors.As(err, &credentialErr):
		apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, credentialErr.Error(), nil)

	case errors.As(err, &apiErr):
		if apiErr.StatusCode == http.StatusUnauthorized {
			credential.Clear(w, r)
			apiErrors.WriteErrorWithStatus(w, apiErr.StatusCode, apiErrors.ErrInvalidToken, apiErr.Message, nil)
			return
		}
		logger.WithField("status_code", apiErr.StatusCode).Warn("API recusou a operação")
		apiErrors.WriteErrorWithStatus(w, apiErr.StatusCode, apiErrors.ErrUpstreamRefused, apiErr.Message, nil)

	case errors.As(err, &transportErr), errors.Is(err, bespokedclient.ErrEmptyResponse):
		logger.Error("Falha ao falar com a API")
		apiErrors.WriteError(w, apiErrors.ErrExternalService, "Não foi possível falar com a API", nil)

	default:
		logger.Error("Erro inesperado")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno", nil)
	}
}
