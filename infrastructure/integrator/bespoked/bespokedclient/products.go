package bespokedclient

import (
	"context"
	"fmt"
	"net/http"

	bespokeddomain "github.com/vfg2006/bespoked-admin/infrastructure/integrator/bespoked/domain"
	"github.com/vfg2006/bespoked-admin/internal/domain"
)

func (c *BespokedClient) GetProducts(ctx context.Context) ([]domain.Product, error) {
	const operation = "listar produtos"

	body, err := c.do(ctx, call{operation: operation, method: http.MethodGet, path: "api/products"})
	if err != nil {
		return nil, err
	}

	return decodeList[domain.Product](c, operation, body)
}

func (c *BespokedClient) CreateProduct(ctx context.Context, product bespokeddomain.ProductUpsert) (*domain.Product, error) {
	const operation = "criar produto"

	body, err := c.do(ctx, call{operation: operation, method: http.MethodPost, path: "api/products", body: product})
	if err != nil {
		return nil, err
	}

	return decodeCreated[domain.Product](c, operation, body)
}

// UpdateProduct envia o produto completo; o corpo da resposta é ignorado
func (c *BespokedClient) UpdateProduct(ctx context.Context, product domain.Product) error {
	_, err := c.do(ctx, call{
		operation: "atualizar produto",
		method:    http.MethodPut,
		path:      fmt.Sprintf("api/products/%d", product.ID),
		body:      bespokeddomain.ProductFromDomain(product),
	})
	return err
}
