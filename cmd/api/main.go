package main

import (
	"context"

	"github.com/vfg2006/bespoked-admin/infrastructure/integrator/bespoked"
	"github.com/vfg2006/bespoked-admin/infrastructure/integrator/bespoked/bespokedclient"
	"github.com/vfg2006/bespoked-admin/internal/api"
	"github.com/vfg2006/bespoked-admin/internal/config"
	"github.com/vfg2006/bespoked-admin/internal/scheduler"
	"github.com/vfg2006/bespoked-admin/internal/usecases/authenticating"
	"github.com/vfg2006/bespoked-admin/internal/usecases/reporting"
	"github.com/vfg2006/bespoked-admin/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.L.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel)
	log.L.Infof("Nível de log configurado para: %s", cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client, err := bespokedclient.NewClient(cfg)
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao criar o cliente da API BeSpoked")
	}

	integrator := bespoked.New(client)
	authenticator := authenticating.NewService(client)
	reporter := reporting.NewCommissionService(client)

	commissionReportService := scheduler.NewCommissionReportService(reporter, cfg)
	if err := commissionReportService.Start(ctx); err != nil {
		log.L.WithError(err).Error("Erro ao iniciar o agendador do relatório de comissões")
	}

	server, err := api.New(cfg, api.Services{
		Client:        client,
		Integrator:    integrator,
		Authenticator: authenticator,
		Reporter:      reporter,
		ReportJob:     commissionReportService,
	})
	if err != nil {
		log.L.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		log.L.Error(err)
	}
}
