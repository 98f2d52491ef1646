package bespokedclient

import (
	"errors"
	"fmt"
)

// ErrEmptyResponse indica que a API respondeu 2xx sem a entidade criada no corpo
var ErrEmptyResponse = errors.New("a API não devolveu a entidade criada")

// TransportError é uma falha de rede: a requisição não chegou a ter resposta
type TransportError struct {
	Operation string
	Err       error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: falha de comunicação com a API: %v", e.Operation, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// APIError é uma resposta fora da faixa 2xx. Message já vem extraída do corpo.
type APIError struct {
	Operation  string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %d: %s", e.Operation, e.StatusCode, e.Message)
}

// AuthenticationError é um login aceito pela API mas sem token utilizável
type AuthenticationError struct {
	Reason string
}

func (e *AuthenticationError) Error() string {
	return "falha de autenticação: " + e.Reason
}

// StatusCode devolve o status HTTP de um APIError na cadeia de err, ou 0
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
