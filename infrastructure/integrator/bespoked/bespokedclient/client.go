package bespokedclient

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	bespokeddomain "github.com/vfg2006/bespoked-admin/infrastructure/integrator/bespoked/domain"
	"github.com/vfg2006/bespoked-admin/internal/config"
	"github.com/vfg2006/bespoked-admin/internal/domain"
	"github.com/vfg2006/bespoked-admin/pkg/credential"
	"github.com/vfg2006/bespoked-admin/pkg/log"
	"github.com/vfg2006/bespoked-admin/pkg/utils"
)

//go:generate mockgen -source=client.go -destination=../mocks/mock_client.go -package=mocks

type Client interface {
	Login(ctx context.Context, username, password string) (*bespokeddomain.LoginResponse, error)

	GetProducts(ctx context.Context) ([]domain.Product, error)
	CreateProduct(ctx context.Context, product bespokeddomain.ProductUpsert) (*domain.Product, error)
	UpdateProduct(ctx context.Context, product domain.Product) error

	GetSalespersons(ctx context.Context) ([]domain.Salesperson, error)
	CreateSalesperson(ctx context.Context, salesperson bespokeddomain.SalespersonUpsert) (*domain.Salesperson, error)
	UpdateSalesperson(ctx context.Context, id int, salesperson bespokeddomain.SalespersonUpsert) error
	DeleteSalesperson(ctx context.Context, id int) error

	GetCustomers(ctx context.Context) ([]domain.Customer, error)
	CreateCustomer(ctx context.Context, customer bespokeddomain.CustomerUpsert) (*domain.Customer, error)

	GetSales(ctx context.Context, filter domain.SalesFilter) ([]domain.Sale, error)
	CreateSale(ctx context.Context, sale bespokeddomain.SaleCreate) (*domain.Sale, error)
}

type BespokedClient struct {
	httpClient *http.Client
	baseURL    *url.URL
	apiKey     string
	json       jsoniter.API
}

type Option func(*BespokedClient)

// WithHTTPClient substitui o http.Client padrão (que já injeta o token do contexto)
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *BespokedClient) {
		c.httpClient = httpClient
	}
}

func NewClient(cfg *config.Config, opts ...Option) (*BespokedClient, error) {
	baseURL, err := url.Parse(cfg.Bespoked.BaseURL)
	if err != nil {
		return nil, errors.Wrap(err, "url base da API inválida")
	}
	// Sem a barra final o último segmento do caminho seria substituído na resolução
	if !strings.HasSuffix(baseURL.Path, "/") {
		baseURL.Path += "/"
	}

	client := &BespokedClient{
		httpClient: &http.Client{
			Timeout:   cfg.Bespoked.Timeout,
			Transport: &credential.Transport{Base: http.DefaultTransport},
		},
		baseURL: baseURL,
		apiKey:  cfg.Bespoked.APIKey,
		json: jsoniter.Config{
			EscapeHTML:             true,
			SortMapKeys:            true,
			ValidateJsonRawMessage: true,
			CaseSensitive:          false,
		}.Froze(),
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// call descreve uma chamada à API; path relativo é resolvido contra a url base
type call struct {
	operation string
	method    string
	path      string
	query     url.Values
	body      any
}

// do executa a chamada e devolve o corpo de uma resposta 2xx.
// Falhas de rede viram *TransportError e respostas fora de 2xx viram *APIError.
func (c *BespokedClient) do(ctx context.Context, cl call) ([]byte, error) {
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"operation": cl.operation,
		"method":    cl.method,
		"path":      cl.path,
	})

	endpoint := c.baseURL.ResolveReference(&url.URL{Path: cl.path})
	if len(cl.query) > 0 {
		endpoint.RawQuery = cl.query.Encode()
	}

	var reader io.Reader
	if cl.body != nil {
		payload, err := c.json.Marshal(cl.body)
		if err != nil {
			return nil, errors.Wrapf(err, "%s: erro ao serializar a requisição", cl.operation)
		}
		logger.Debugf("Corpo da requisição: %s", utils.PrettyJson(payload))
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, endpoint.String(), reader)
	if err != nil {
		logger.WithError(err).Error("Erro ao criar a requisição")
		return nil, errors.Wrapf(err, "%s: erro ao criar a requisição", cl.operation)
	}

	req.Header.Set("Accept", "application/json")
	if cl.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("x-api-key", c.apiKey)
	}
	if requestID, err := utils.GenerateID(); err == nil {
		req.Header.Set("X-Request-Id", requestID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.WithError(err).Error("Erro ao fazer a requisição")
		return nil, &TransportError{Operation: cl.operation, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.WithError(err).Error("Erro ao ler a resposta")
		return nil, &TransportError{Operation: cl.operation, Err: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		logger.WithFields(log.Fields{
			"status_code": resp.StatusCode,
			"reason":      http.StatusText(resp.StatusCode),
			"body":        string(body),
		}).Warn("A API respondeu com erro")

		return nil, &APIError{
			Operation:  cl.operation,
			StatusCode: resp.StatusCode,
			Message:    bespokeddomain.ExtractErrorMessage(body, http.StatusText(resp.StatusCode)),
		}
	}

	return body, nil
}

// decodeList trata corpo vazio ou null como lista vazia
func decodeList[T any](c *BespokedClient, operation string, body []byte) ([]T, error) {
	items := make([]T, 0)
	if isEmptyBody(body) {
		return items, nil
	}

	if err := domain.Unmarshal(c.json, body, &items); err != nil {
		return nil, errors.Wrapf(err, "%s: erro ao decodificar JSON", operation)
	}
	if items == nil {
		items = make([]T, 0)
	}

	return items, nil
}

// decodeCreated exige a entidade criada no corpo
func decodeCreated[T any](c *BespokedClient, operation string, body []byte) (*T, error) {
	if isEmptyBody(body) {
		return nil, errors.Wrap(ErrEmptyResponse, operation)
	}

	var created T
	if err := domain.Unmarshal(c.json, body, &created); err != nil {
		return nil, errors.Wrapf(err, "%s: erro ao decodificar JSON", operation)
	}

	return &created, nil
}

func isEmptyBody(body []byte) bool {
	trimmed := bytes.TrimSpace(body)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
