package reporting

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/bespoked-admin/infrastructure/integrator/bespoked/bespokedclient"
	"github.com/vfg2006/bespoked-admin/internal/domain"
	"github.com/vfg2006/bespoked-admin/pkg/log"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_reporter.go -package=mocks

type Reporter interface {
	QuarterlyCommissions(ctx context.Context, year, quarter int) (*domain.CommissionReport, error)
}

type CommissionService struct {
	client bespokedclient.Client
}

func NewCommissionService(client bespokedclient.Client) Reporter {
	return &CommissionService{
		client: client,
	}
}

// QuarterlyCommissions busca as vendas do trimestre na API e monta o relatório
func (s *CommissionService) QuarterlyCommissions(ctx context.Context, year, quarter int) (*domain.CommissionReport, error) {
	quarter = NormalizeQuarter(quarter)
	start, end := QuarterRange(year, quarter)

	sales, err := s.client.GetSales(ctx, domain.SalesFilter{Start: &start, End: &end})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar vendas do trimestre")
	}

	rows := Aggregate(sales, year, quarter)

	log.ForContext(ctx).WithFields(log.Fields{
		"year":        year,
		"quarter":     quarter,
		"sales":       len(sales),
		"salespeople": len(rows),
	}).Debug("Relatório de comissões gerado")

	return &domain.CommissionReport{
		Year:    year,
		Quarter: quarter,
		Start:   start,
		End:     end,
		Rows:    rows,
	}, nil
}
