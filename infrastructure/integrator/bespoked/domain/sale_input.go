package bespokeddomain

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/bespoked-admin/internal/domain"
)

// SaleInput é o formulário de venda. Cada entidade pode vir pelo id ou apenas pelo nome;
// id zero com nome preenchido dispara a busca pelo nome e, sem resultado, a criação.
type SaleInput struct {
	ProductID       int              `json:"productId" validate:"gte=0,required_without=ProductName"`
	ProductName     string           `json:"productName"`
	SalespersonID   int              `json:"salespersonId" validate:"gte=0,required_without=SalespersonName"`
	SalespersonName string           `json:"salespersonName"`
	CustomerID      int              `json:"customerId" validate:"gte=0,required_without=CustomerName"`
	CustomerName    string           `json:"customerName"`
	SalesDate       *domain.Date     `json:"salesDate"`
	Quantity        int              `json:"quantity" validate:"gte=0"`
	UnitPrice       *decimal.Decimal `json:"unitPrice"`
}
