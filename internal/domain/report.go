package domain

import "github.com/shopspring/decimal"

// CommissionRow é uma linha do relatório trimestral de comissões
type CommissionRow struct {
	SalespersonID   int             `json:"salespersonId"`
	Salesperson     string          `json:"salesperson"`
	Year            int             `json:"year"`
	Quarter         int             `json:"quarter"`
	SalesCount      int             `json:"salesCount"`
	TotalSales      decimal.Decimal `json:"totalSales"`
	TotalCommission decimal.Decimal `json:"totalCommission"`
}

type CommissionReport struct {
	Year    int             `json:"year"`
	Quarter int             `json:"quarter"`
	Start   Date            `json:"start"`
	End     Date            `json:"end"`
	Rows    []CommissionRow `json:"rows"`
}
