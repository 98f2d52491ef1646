package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/vfg2006/bespoked-admin/infrastructure/integrator/bespoked"
	"github.com/vfg2006/bespoked-admin/infrastructure/integrator/bespoked/bespokedclient"
	"github.com/vfg2006/bespoked-admin/internal/api/handler"
	"github.com/vfg2006/bespoked-admin/internal/api/handler/router"
	"github.com/vfg2006/bespoked-admin/internal/config"
	"github.com/vfg2006/bespoked-admin/internal/usecases/authenticating"
	"github.com/vfg2006/bespoked-admin/internal/usecases/reporting"
	"github.com/vfg2006/bespoked-admin/pkg/log"
	"github.com/vfg2006/bespoked-admin/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

// Services reúne as dependências dos handlers
type Services struct {
	Client        bespokedclient.Client
	Integrator    bespoked.BespokedIntegrator
	Authenticator authenticating.Authenticator
	Reporter      reporting.Reporter
	ReportJob     handler.ReportJob
}

type Server struct {
	httpServer *http.Server
}

func New(cfg *config.Config, services Services) (*Server, error) {
	if services.Client == nil || services.Authenticator == nil {
		return nil, fmt.Errorf("cliente da API e autenticador são obrigatórios")
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           NewHandler(cfg, services),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// NewHandler monta as rotas com a cadeia de middlewares global
func NewHandler(cfg *config.Config, services Services) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(services.Authenticator, cfg.Session.RememberDuration)...),
		router.WithRoutes(handler.Products(services.Client)...),
		router.WithRoutes(handler.Salespersons(services.Client)...),
		router.WithRoutes(handler.Customers(services.Client)...),
		router.WithRoutes(handler.Sales(services.Client, services.Integrator)...),
		router.WithRoutes(handler.Reports(services.Reporter, services.ReportJob)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Cors.AllowedOrigins),
		middleware.SessionMiddleware(services.Authenticator),
	}

	return alice.New(middlewares...).Then(rt)
}

func (s Server) Run(ctx context.Context) error {
	serveErr := make(chan error, 1)

	go func() {
		log.L.WithField("address", s.httpServer.Addr).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.L.WithError(err).Error("Erro durante a execução do servidor")
			serveErr <- err
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	select {
	case <-done:
		log.L.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		log.L.Info("Contexto de aplicação cancelado")
	case err := <-serveErr:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	log.L.Infof("Iniciando desligamento gracioso do servidor (timeout %s)", shutdownTimeout)

	if err := s.Shutdown(shutdownCtx); err != nil {
		log.L.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	log.L.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
