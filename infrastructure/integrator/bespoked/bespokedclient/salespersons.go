package bespokedclient

import (
	"context"
	"fmt"
	"net/http"

	bespokeddomain "github.com/vfg2006/bespoked-admin/infrastructure/integrator/bespoked/domain"
	"github.com/vfg2006/bespoked-admin/internal/domain"
)

func (c *BespokedClient) GetSalespersons(ctx context.Context) ([]domain.Salesperson, error) {
	const operation = "listar vendedores"

	body, err := c.do(ctx, call{operation: operation, method: http.MethodGet, path: "api/salespersons"})
	if err != nil {
		return nil, err
	}

	return decodeList[domain.Salesperson](c, operation, body)
}

func (c *BespokedClient) CreateSalesperson(ctx context.Context, salesperson bespokeddomain.SalespersonUpsert) (*domain.Salesperson, error) {
	const operation = "criar vendedor"

	body, err := c.do(ctx, call{operation: operation, method: http.MethodPost, path: "api/salespersons", body: salesperson})
	if err != nil {
		return nil, err
	}

	return decodeCreated[domain.Salesperson](c, operation, body)
}

func (c *BespokedClient) UpdateSalesperson(ctx context.Context, id int, salesperson bespokeddomain.SalespersonUpsert) error {
	_, err := c.do(ctx, call{
		operation: "atualizar vendedor",
		method:    http.MethodPut,
		path:      fmt.Sprintf("api/salespersons/%d", id),
		body:      salesperson,
	})
	return err
}

func (c *BespokedClient) DeleteSalesperson(ctx context.Context, id int) error {
	_, err := c.do(ctx, call{
		operation: "remover vendedor",
		method:    http.MethodDelete,
		path:      fmt.Sprintf("api/salespersons/%d", id),
	})
	return err
}
