// Package scheduler contém os jobs agendados do gateway
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/vfg2006/bespoked-admin/internal/config"
	"github.com/vfg2006/bespoked-admin/internal/domain"
	"github.com/vfg2006/bespoked-admin/internal/usecases/reporting"
	"github.com/vfg2006/bespoked-admin/pkg/credential"
	"github.com/vfg2006/bespoked-admin/pkg/log"
)

type CommissionReportConfig struct {
	CronSchedule string
	Enabled      bool
	ServiceToken string
}

// CommissionReportService gera periodicamente o relatório de comissões do trimestre corrente
// e registra as linhas no log. Uma execução por vez.
type CommissionReportService struct {
	scheduler          *gocron.Scheduler
	reporter           reporting.Reporter
	config             CommissionReportConfig
	now                func() time.Time
	running            bool
	mutex              sync.Mutex
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
	lastRunError       string
	lastReport         *domain.CommissionReport
}

func NewCommissionReportService(reporter reporting.Reporter, cfg *config.Config) *CommissionReportService {
	reportConfig := CommissionReportConfig{
		CronSchedule: cfg.CommissionReport.CronSchedule, // Default: 7h da manhã todos os dias
		Enabled:      cfg.CommissionReport.Enabled,      // Default: desabilitado
		ServiceToken: cfg.Bespoked.ServiceToken,
	}

	log.L.WithFields(log.Fields{
		"cron_schedule": reportConfig.CronSchedule,
		"enabled":       reportConfig.Enabled,
	}).Info("Configuração do agendador do relatório de comissões carregada")

	return &CommissionReportService{
		scheduler: gocron.NewScheduler(time.Local),
		reporter:  reporter,
		config:    reportConfig,
		now:       time.Now,
	}
}

func (s *CommissionReportService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		log.L.Info("Cron do relatório de comissões desabilitada por configuração")
		return nil
	}

	if s.config.ServiceToken == "" {
		log.L.Warn("BESPOKED_SERVICE_TOKEN vazio: o relatório agendado vai chamar a API sem credencial")
	}

	log.L.WithField("cron", s.config.CronSchedule).Info("Iniciando cron do relatório de comissões")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		runCtx, _ := log.WithCorrelationID(context.Background(), "")
		if _, err := s.Run(credential.NewContext(runCtx, s.config.ServiceToken)); err != nil {
			log.ForContext(runCtx).WithError(err).Error("Erro na geração agendada do relatório de comissões")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar relatório de comissões: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.Info("Parando cron do relatório de comissões")
		s.scheduler.Stop()
	}()

	return nil
}

// Run gera o relatório do trimestre corrente com a credencial presente em ctx.
// Se já houver uma execução em andamento devolve (nil, nil).
func (s *CommissionReportService) Run(ctx context.Context) (*domain.CommissionReport, error) {
	if !s.begin() {
		log.ForContext(ctx).Warn("Relatório de comissões já está em execução")
		return nil, nil
	}
	return s.execute(ctx)
}

// begin marca a execução como em andamento; false quando outra já ocupa o lugar
func (s *CommissionReportService) begin() bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.running {
		return false
	}
	s.running = true
	s.lastRunStartedAt = s.now()
	return true
}

// execute exige begin() bem-sucedido antes
func (s *CommissionReportService) execute(ctx context.Context) (*domain.CommissionReport, error) {
	year, quarter := reporting.CurrentQuarter(s.now())
	report, err := s.reporter.QuarterlyCommissions(ctx, year, quarter)

	s.mutex.Lock()
	s.running = false
	s.lastRunCompletedAt = s.now()
	if err != nil {
		s.lastRunError = err.Error()
	} else {
		s.lastRunError = ""
		s.lastReport = report
	}
	s.mutex.Unlock()

	if err != nil {
		return nil, err
	}

	logger := log.ForContext(ctx)
	for _, row := range report.Rows {
		logger.WithFields(log.Fields{
			"salesperson_id":   row.SalespersonID,
			"name":             row.Salesperson,
			"sales":            row.SalesCount,
			"total_sales":      row.TotalSales.StringFixed(2),
			"total_commission": row.TotalCommission.StringFixed(2),
		}).Info("Comissão do trimestre")
	}

	logger.WithFields(log.Fields{
		"year":        report.Year,
		"quarter":     report.Quarter,
		"salespeople": len(report.Rows),
	}).Info("Relatório de comissões concluído")

	return report, nil
}

// TriggerManualRun dispara uma execução em background com a credencial de quem pediu.
// Devolve false quando já existe uma execução em andamento.
func (s *CommissionReportService) TriggerManualRun(ctx context.Context) bool {
	if !s.begin() {
		log.ForContext(ctx).Info("Relatório de comissões já em andamento, ignorando solicitação manual")
		return false
	}

	runCtx := context.WithoutCancel(ctx)
	if _, ok := credential.FromContext(runCtx); !ok {
		runCtx = credential.NewContext(runCtx, s.config.ServiceToken)
	}

	log.ForContext(ctx).Info("Iniciando geração manual do relatório de comissões")
	go func() {
		if _, err := s.execute(runCtx); err != nil {
			log.ForContext(runCtx).WithError(err).Error("Erro na geração manual do relatório de comissões")
		}
	}()

	return true
}

// GetStatus retorna o status atual do agendador
func (s *CommissionReportService) GetStatus() map[string]any {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	status := map[string]any{
		"enabled":               s.config.Enabled,
		"cron":                  s.config.CronSchedule,
		"running":               s.running,
		"last_run_started_at":   s.lastRunStartedAt,
		"last_run_completed_at": s.lastRunCompletedAt,
	}
	if s.lastRunError != "" {
		status["last_run_error"] = s.lastRunError
	}
	if s.lastReport != nil {
		status["last_report"] = s.lastReport
	}

	return status
}
