package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

type Sale struct {
	ID                   int             `json:"saleId"`
	ProductID            int             `json:"productId"`
	SalespersonID        int             `json:"salespersonId"`
	CustomerID           int             `json:"customerId"`
	ProductName          string          `json:"productName"`
	SalespersonFirstName string          `json:"salespersonFirstName"`
	SalespersonLastName  string          `json:"salespersonLastName"`
	CustomerFirstName    string          `json:"customerFirstName"`
	CustomerLastName     string          `json:"customerLastName"`
	SalesDate            Date            `json:"salesDate"`
	Quantity             int             `json:"quantity"`
	UnitPrice            decimal.Decimal `json:"unitPrice"`
	TotalPrice           decimal.Decimal `json:"totalPrice"`
	SalePrice            decimal.Decimal `json:"salePrice"` // nome antigo ainda enviado por algumas versões da API
	CommissionAmount     decimal.Decimal `json:"commissionAmount"`
	Commission           decimal.Decimal `json:"commission"`
	StatusID             int             `json:"statusId"`
	CreatedDate          Timestamp       `json:"createdDate"`
	ModifiedDate         *Timestamp      `json:"modifiedDate"`
}

// EffectiveCommission prefere commissionAmount; commission só vale quando o valor explícito é zero
func (s Sale) EffectiveCommission() decimal.Decimal {
	if !s.CommissionAmount.IsZero() {
		return s.CommissionAmount
	}
	return s.Commission
}

func (s Sale) SalespersonName() string {
	return strings.TrimSpace(s.SalespersonFirstName + " " + s.SalespersonLastName)
}

func (s Sale) CustomerName() string {
	return strings.TrimSpace(s.CustomerFirstName + " " + s.CustomerLastName)
}

// SalesFilter limita a consulta de vendas a um intervalo de datas (inclusivo)
type SalesFilter struct {
	Start *Date
	End   *Date
}
