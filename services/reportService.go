package services

import (
	"context"

	"github.com/matrizimoveis/matriz_portal/entities"
)

// ReportService provides the reports page figures
type ReportService interface {
	GetReport(ctx context.Context, filter entities.ReportFilter) (*entities.Report, error)
	Export(ctx context.Context, filter entities.ReportFilter) (string, error)
}
