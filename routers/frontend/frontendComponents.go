package frontend

import (
	"github.com/gin-gonic/gin"
	"github.com/matrizimoveis/matriz_portal/entities"
	"github.com/matrizimoveis/matriz_portal/utils/auth"
	"github.com/matrizimoveis/matriz_portal/utils/charts"
	"github.com/pkg/errors"
)

const monthlyChartKey = "report:monthly"

var (
	layout = frontendComponent{
		name:         "Layout",
		dataProvider: layoutDataProvider,
	}

	dashboardSections = frontendComponent{
		name:         "Dashboard",
		dataProvider: dashboardDataProvider,
	}

	reportPanel = frontendComponent{
		name:         "Report",
		dataProvider: reportDataProvider,
	}

	propertiesList = frontendComponent{
		name:         "Properties",
		dataProvider: propertiesDataProvider,
	}
)

var errNoSession = errors.New("no session in request context")

func layoutDataProvider(ctx *gin.Context, _ *frontendRouter) (interface{}, error) {
	claims, ok := auth.GetSessionFromContext(ctx)
	if !ok {
		return nil, errNoSession
	}

	return layoutFor(claims, ctx.Request.URL.Path)
}

func dashboardDataProvider(ctx *gin.Context, r *frontendRouter) (interface{}, error) {
	claims, ok := auth.GetSessionFromContext(ctx)
	if !ok {
		return nil, errNoSession
	}

	dashboard, err := r.dashboardService.GetDashboard(ctx, claims.Role)
	if err != nil {
		return nil, errors.Wrapf(err, "could not fetch dashboard for role %s", claims.Role)
	}

	return dashboard, nil
}

func reportDataProvider(ctx *gin.Context, r *frontendRouter) (interface{}, error) {
	claims, ok := auth.GetSessionFromContext(ctx)
	if !ok {
		return nil, errNoSession
	}

	var filter entities.ReportFilter
	_ = ctx.ShouldBindQuery(&filter)

	report, err := r.reportService.GetReport(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "could not fetch report")
	}

	labels := make([]string, 0, len(report.Monthly))
	sales := make([]charts.Point, 0, len(report.Monthly))
	rentals := make([]charts.Point, 0, len(report.Monthly))
	for _, bar := range report.Monthly {
		labels = append(labels, bar.Label)
		sales = append(sales, charts.Point{Label: bar.Label, Value: bar.Sales})
		rentals = append(rentals, charts.Point{Label: bar.Label, Value: bar.Rentals})
	}

	chartHTML, err := r.charts.Render(monthlyChartKey, "Vendas e locações por mês", labels, []charts.Series{
		{Name: entities.ReportSales.Label(), Points: sales},
		{Name: entities.ReportRentals.Label(), Points: rentals},
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not render report chart")
	}

	periods := make([]reportSelectorOption, 0, len(entities.ReportPeriods))
	for _, period := range entities.ReportPeriods {
		periods = append(periods, reportSelectorOption{
			Value:    string(period),
			Label:    period.Label(),
			Selected: period == report.Filter.Period,
		})
	}
	types := make([]reportSelectorOption, 0, len(entities.ReportTypes))
	for _, reportType := range entities.ReportTypes {
		types = append(types, reportSelectorOption{
			Value:    string(reportType),
			Label:    reportType.Label(),
			Selected: reportType == report.Filter.Type,
		})
	}

	return reportDataModel{
		Report:    report,
		ChartHTML: chartHTML,
		Periods:   periods,
		Types:     types,
		BasePath:  claims.Role.BasePath(),
	}, nil
}

func propertiesDataProvider(ctx *gin.Context, r *frontendRouter) (interface{}, error) {
	claims, ok := auth.GetSessionFromContext(ctx)
	if !ok {
		return nil, errNoSession
	}

	properties, err := r.propertyService.GetProperties(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "could not fetch properties")
	}

	return propertiesDataModel{
		Properties: properties,
		BasePath:   claims.Role.BasePath(),
	}, nil
}

type frontendComponent struct {
	name         string
	dataProvider frontendComponentDataProvider
}

type frontendComponents []frontendComponent

type frontendComponentDataProvider func(*gin.Context, *frontendRouter) (interface{}, error)
