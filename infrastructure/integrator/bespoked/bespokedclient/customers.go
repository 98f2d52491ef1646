package bespokedclient

import (
	"context"
	"net/http"

	bespokeddomain "github.com/vfg2006/bespoked-admin/infrastructure/integrator/bespoked/domain"
	"github.com/vfg2006/bespoked-admin/internal/domain"
)

func (c *BespokedClient) GetCustomers(ctx context.Context) ([]domain.Customer, error) {
	const operation = "listar clientes"

	body, err := c.do(ctx, call{operation: operation, method: http.MethodGet, path: "api/customers"})
	if err != nil {
		return nil, err
	}

	return decodeList[domain.Customer](c, operation, body)
}

func (c *BespokedClient) CreateCustomer(ctx context.Context, customer bespokeddomain.CustomerUpsert) (*domain.Customer, error) {
	const operation = "criar cliente"

	body, err := c.do(ctx, call{operation: operation, method: http.MethodPost, path: "api/customers", body: customer})
	if err != nil {
		return nil, err
	}

	return decodeCreated[domain.Customer](c, operation, body)
}
