package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/vfg2006/bespoked-admin/internal/usecases/reporting"
	"github.com/vfg2006/bespoked-admin/pkg/apiErrors"
)

// GetCommissionReport responde o relatório do trimestre pedido; sem parâmetros usa o trimestre atual
func GetCommissionReport(service reporting.Reporter, now func() time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		year, quarter := reporting.CurrentQuarter(now())

		query := r.URL.Query()
		if raw := strings.TrimSpace(query.Get("year")); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Ano inválido", raw)
				return
			}
			year = parsed
		}
		if raw := strings.TrimSpace(query.Get("quarter")); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Trimestre inválido", raw)
				return
			}
			quarter = parsed
		}

		report, err := service.QuarterlyCommissions(r.Context(), year, quarter)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, report)
	}
}

// ReportJob é o agendador do relatório, exposto para execução manual
type ReportJob interface {
	TriggerManualRun(ctx context.Context) bool
	GetStatus() map[string]any
}

func RunCommissionReport(job ReportJob) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !job.TriggerManualRun(r.Context()) {
			apiErrors.WriteErrorWithStatus(w, http.StatusConflict, apiErrors.ErrInvalidRequest, "Relatório já está em execução", nil)
			return
		}

		writeJSON(w, r, http.StatusAccepted, map[string]string{
			"message": "Geração do relatório iniciada",
		})
	}
}

func GetCommissionReportStatus(job ReportJob) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, job.GetStatus())
	}
}
