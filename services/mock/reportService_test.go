package mock

import (
	"context"
	"testing"

	"github.com/matrizimoveis/matriz_portal/entities"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func Test_GetReport__should_echo_filter_without_changing_figures(t *testing.T) {
	service := NewMockReportService(zap.NewNop())

	monthly, err := service.GetReport(context.Background(), entities.ReportFilter{Period: entities.PeriodMonth, Type: entities.ReportSales})
	assert.NoError(t, err)

	yearly, err := service.GetReport(context.Background(), entities.ReportFilter{Period: entities.PeriodYear, Type: entities.ReportClients})
	assert.NoError(t, err)

	assert.Equal(t, entities.ReportFilter{Period: entities.PeriodYear, Type: entities.ReportClients}, yearly.Filter)
	assert.Equal(t, monthly.Metrics, yearly.Metrics)
	assert.Equal(t, monthly.Monthly, yearly.Monthly)
	assert.Equal(t, monthly.Breakdown, yearly.Breakdown)
}

func Test_GetReport__should_normalize_unknown_filter(t *testing.T) {
	service := NewMockReportService(zap.NewNop())

	rep, err := service.GetReport(context.Background(), entities.ReportFilter{Period: "decade", Type: "weather"})
	assert.NoError(t, err)

	assert.Equal(t, entities.ReportFilter{Period: entities.PeriodMonth, Type: entities.ReportSales}, rep.Filter)
}

func Test_Export__should_log_and_return_filename(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	service := NewMockReportService(zap.New(core))

	filename, err := service.Export(context.Background(), entities.ReportFilter{Period: entities.PeriodWeek, Type: entities.ReportRentals})
	assert.NoError(t, err)

	assert.Equal(t, "relatorio-rentals-week.pdf", filename)
	entries := logs.FilterMessage("report export requested").All()
	assert.Len(t, entries, 1)
	assert.Equal(t, "relatorio-rentals-week.pdf", entries[0].ContextMap()["filename"])
}
