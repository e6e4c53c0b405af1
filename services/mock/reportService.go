package mock

import (
	"context"

	"github.com/matrizimoveis/matriz_portal/entities"
	"github.com/matrizimoveis/matriz_portal/services"
	"go.uber.org/zap"
)

type mockReportService struct {
	logger *zap.Logger
}

// NewMockReportService creates a ReportService serving static figures.
// The filter is echoed back but never changes the figures.
func NewMockReportService(logger *zap.Logger) services.ReportService {
	return &mockReportService{
		logger: logger,
	}
}

func (s *mockReportService) GetReport(ctx context.Context, filter entities.ReportFilter) (*entities.Report, error) {
	filter = filter.Normalize()
	s.logger.Debug("report filter applied", zap.String("period", string(filter.Period)), zap.String("type", string(filter.Type)))

	rep := report()
	rep.Filter = filter
	return &rep, nil
}

// Export only logs the name of the file the export would produce
func (s *mockReportService) Export(ctx context.Context, filter entities.ReportFilter) (string, error) {
	filename := filter.Normalize().ExportFilename()
	s.logger.Info("report export requested", zap.String("filename", filename))
	return filename, nil
}
