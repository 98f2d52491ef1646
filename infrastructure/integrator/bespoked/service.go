package bespoked

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/bespoked-admin/infrastructure/integrator/bespoked/bespokedclient"
	bespokeddomain "github.com/vfg2006/bespoked-admin/infrastructure/integrator/bespoked/domain"
	"github.com/vfg2006/bespoked-admin/internal/domain"
	"github.com/vfg2006/bespoked-admin/pkg/log"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_integrator.go -package=mocks

type BespokedIntegrator interface {
	CreateSale(ctx context.Context, input bespokeddomain.SaleInput) (*domain.Sale, error)
}

type BespokedService struct {
	Client bespokedclient.Client
}

func New(client bespokedclient.Client) BespokedIntegrator {
	return &BespokedService{
		Client: client,
	}
}

// CreateSale resolve produto, vendedor e cliente pelo nome quando o id não vem no formulário,
// criando o que não existir, e então registra a venda.
//
// Busca e criação são chamadas independentes: duas sessões enviando o mesmo nome novo ao
// mesmo tempo podem criar duplicatas. Entidades criadas antes de uma falha permanecem criadas.
func (s *BespokedService) CreateSale(ctx context.Context, input bespokeddomain.SaleInput) (*domain.Sale, error) {
	logger := log.ForContext(ctx)

	productID, err := s.resolveProduct(ctx, input)
	if err != nil {
		return nil, err
	}

	salespersonID, err := s.resolveSalesperson(ctx, input)
	if err != nil {
		return nil, err
	}

	customerID, err := s.resolveCustomer(ctx, input)
	if err != nil {
		return nil, err
	}

	unresolved := make([]string, 0, 3)
	if productID == 0 {
		unresolved = append(unresolved, "produto")
	}
	if salespersonID == 0 {
		unresolved = append(unresolved, "vendedor")
	}
	if customerID == 0 {
		unresolved = append(unresolved, "cliente")
	}
	if len(unresolved) > 0 {
		logger.WithField("unresolved", unresolved).Warn("Não foi possível resolver as entidades da venda")
		return nil, &ResolutionError{Entities: unresolved}
	}

	salesDate := domain.Today()
	if input.SalesDate != nil && !input.SalesDate.IsZero() {
		salesDate = *input.SalesDate
	}

	sale, err := s.Client.CreateSale(ctx, bespokeddomain.SaleCreate{
		ProductID:     productID,
		SalespersonID: salespersonID,
		CustomerID:    customerID,
		SalesDate:     salesDate,
		Quantity:      input.Quantity,
		UnitPrice:     bespokeddomain.OptionalMoney(input.UnitPrice),
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar venda")
	}

	logger.WithFields(log.Fields{
		"sale_id":        sale.ID,
		"product_id":     productID,
		"salesperson_id": salespersonID,
		"customer_id":    customerID,
	}).Info("Venda criada")

	return sale, nil
}

func (s *BespokedService) resolveProduct(ctx context.Context, input bespokeddomain.SaleInput) (int, error) {
	name := strings.TrimSpace(input.ProductName)
	if input.ProductID != 0 || name == "" {
		return input.ProductID, nil
	}

	products, err := s.Client.GetProducts(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "erro ao buscar produtos")
	}

	for _, product := range products {
		if strings.EqualFold(strings.TrimSpace(product.Name), name) {
			return product.ID, nil
		}
	}

	// A API não aceita null nos campos numéricos do produto
	salePrice := decimal.Zero
	if input.UnitPrice != nil {
		salePrice = *input.UnitPrice
	}
	zero := bespokeddomain.Money(decimal.Zero)
	statusID := 0

	created, err := s.Client.CreateProduct(ctx, bespokeddomain.ProductUpsert{
		Name:                 name,
		ManufacturerID:       0,
		PurchasePrice:        zero,
		SalePrice:            bespokeddomain.Money(salePrice),
		QtyOnHand:            0,
		CommissionPercentage: zero,
		StatusID:             &statusID,
	})
	if err != nil {
		return 0, errors.Wrap(err, "erro ao criar produto")
	}

	log.ForContext(ctx).WithField("product_id", created.ID).Infof("Produto %q criado a partir da venda", name)

	return created.ID, nil
}

func (s *BespokedService) resolveSalesperson(ctx context.Context, input bespokeddomain.SaleInput) (int, error) {
	name := strings.TrimSpace(input.SalespersonName)
	if input.SalespersonID != 0 || name == "" {
		return input.SalespersonID, nil
	}

	first, last := splitName(name)

	salespersons, err := s.Client.GetSalespersons(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "erro ao buscar vendedores")
	}

	for _, salesperson := range salespersons {
		if strings.EqualFold(strings.TrimSpace(salesperson.FirstName), first) &&
			strings.EqualFold(strings.TrimSpace(salesperson.LastName), last) {
			return salesperson.ID, nil
		}
	}

	created, err := s.Client.CreateSalesperson(ctx, bespokeddomain.SalespersonUpsert{
		FirstName: first,
		LastName:  last,
		StartDate: domain.Today(),
	})
	if err != nil {
		return 0, errors.Wrap(err, "erro ao criar vendedor")
	}

	log.ForContext(ctx).WithField("salesperson_id", created.ID).Infof("Vendedor %q criado a partir da venda", name)

	return created.ID, nil
}

func (s *BespokedService) resolveCustomer(ctx context.Context, input bespokeddomain.SaleInput) (int, error) {
	name := strings.TrimSpace(input.CustomerName)
	if input.CustomerID != 0 || name == "" {
		return input.CustomerID, nil
	}

	customers, err := s.Client.GetCustomers(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "erro ao buscar clientes")
	}

	for _, customer := range customers {
		if strings.EqualFold(customer.FullName(), name) {
			return customer.ID, nil
		}
	}

	first, last := splitName(name)

	var startDate *domain.Date
	if input.SalesDate != nil && !input.SalesDate.IsZero() {
		startDate = input.SalesDate
	}

	created, err := s.Client.CreateCustomer(ctx, bespokeddomain.CustomerUpsert{
		FirstName: first,
		LastName:  last,
		Email:     "",
		StartDate: startDate,
	})
	if err != nil {
		return 0, errors.Wrap(err, "erro ao criar cliente")
	}

	log.ForContext(ctx).WithField("customer_id", created.ID).Infof("Cliente %q criado a partir da venda", name)

	return created.ID, nil
}

// splitName separa no primeiro espaço: "Mary Ann Smith" vira ("Mary", "Ann Smith")
func splitName(name string) (string, string) {
	first, last, _ := strings.Cut(strings.TrimSpace(name), " ")
	return strings.TrimSpace(first), strings.TrimSpace(last)
}
