package reporting

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/bespoked-admin/internal/domain"
)

// Aggregate agrupa as vendas por vendedor somando totalPrice e a comissão efetiva de cada venda.
// As linhas saem por comissão decrescente; empates por nome e depois por id.
func Aggregate(sales []domain.Sale, year, quarter int) []domain.CommissionRow {
	quarter = NormalizeQuarter(quarter)

	rowsByID := make(map[int]*domain.CommissionRow)
	for _, sale := range sales {
		row, exists := rowsByID[sale.SalespersonID]
		if !exists {
			row = &domain.CommissionRow{
				SalespersonID:   sale.SalespersonID,
				Salesperson:     sale.SalespersonName(),
				Year:            year,
				Quarter:         quarter,
				TotalSales:      decimal.Zero,
				TotalCommission: decimal.Zero,
			}
			rowsByID[sale.SalespersonID] = row
		}

		row.SalesCount++
		row.TotalSales = row.TotalSales.Add(sale.TotalPrice)
		row.TotalCommission = row.TotalCommission.Add(sale.EffectiveCommission())
	}

	rows := make([]domain.CommissionRow, 0, len(rowsByID))
	for _, row := range rowsByID {
		rows = append(rows, *row)
	}

	sort.Slice(rows, func(i, j int) bool {
		if cmp := rows[i].TotalCommission.Cmp(rows[j].TotalCommission); cmp != 0 {
			return cmp > 0
		}
		if rows[i].Salesperson != rows[j].Salesperson {
			return rows[i].Salesperson < rows[j].Salesperson
		}
		return rows[i].SalespersonID < rows[j].SalespersonID
	})

	return rows
}
