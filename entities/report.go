package entities

import "fmt"

// ReportPeriod is the period selected on the reports page
type ReportPeriod string

// ReportType is the report selected on the reports page
type ReportType string

const (
	PeriodWeek    ReportPeriod = "week"
	PeriodMonth   ReportPeriod = "month"
	PeriodQuarter ReportPeriod = "quarter"
	PeriodYear    ReportPeriod = "year"

	ReportSales       ReportType = "sales"
	ReportRentals     ReportType = "rentals"
	ReportClients     ReportType = "clients"
	ReportPerformance ReportType = "performance"
)

// ReportPeriods lists the selectable periods in display order
var ReportPeriods = []ReportPeriod{PeriodWeek, PeriodMonth, PeriodQuarter, PeriodYear}

// ReportTypes lists the selectable report types in display order
var ReportTypes = []ReportType{ReportSales, ReportRentals, ReportClients, ReportPerformance}

// Label returns the display name of the period
func (p ReportPeriod) Label() string {
	switch p {
	case PeriodWeek:
		return "Esta semana"
	case PeriodMonth:
		return "Este mês"
	case PeriodQuarter:
		return "Este trimestre"
	case PeriodYear:
		return "Este ano"
	}
	return string(p)
}

// Label returns the display name of the report type
func (t ReportType) Label() string {
	switch t {
	case ReportSales:
		return "Vendas"
	case ReportRentals:
		return "Locações"
	case ReportClients:
		return "Clientes"
	case ReportPerformance:
		return "Desempenho"
	}
	return string(t)
}

// ReportFilter holds the two selectors of the reports page
type ReportFilter struct {
	Period ReportPeriod `form:"period"`
	Type   ReportType   `form:"type"`
}

// Normalize replaces unknown selector values with the defaults
func (f ReportFilter) Normalize() ReportFilter {
	normalized := ReportFilter{Period: PeriodMonth, Type: ReportSales}
	for _, period := range ReportPeriods {
		if f.Period == period {
			normalized.Period = period
		}
	}
	for _, reportType := range ReportTypes {
		if f.Type == reportType {
			normalized.Type = reportType
		}
	}
	return normalized
}

// ExportFilename is the name of the file an export of this filter would produce
func (f ReportFilter) ExportFilename() string {
	return fmt.Sprintf("relatorio-%s-%s.pdf", f.Type, f.Period)
}

// ReportMetric is a summary card of the reports page
type ReportMetric struct {
	Title  string
	Value  string
	Change string
}

// ReportBar is one bar of the monthly chart
type ReportBar struct {
	Label   string
	Sales   float64
	Rentals float64
}

// ReportBreakdown is a share of the total by category
type ReportBreakdown struct {
	Label   string
	Value   string
	Percent int
}

// Report is the content of the reports page. Figures don't depend on the filter.
type Report struct {
	Filter    ReportFilter
	Metrics   []ReportMetric
	Monthly   []ReportBar
	Breakdown []ReportBreakdown
	TopAgents []PanelRow
}
