// internal/app/features/dashboard/charts.go
package dashboard

import (
	"bytes"
	"io"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/hopeworks/ngohub/internal/domain/models"
)

const chartHeight = "320px"

// InquiryChart renders the per-day inquiry line. Empty data yields "",
// which the template treats as "chart unavailable".
func InquiryChart(a models.InquiryAnalytics) string {
	if len(a.Daily) == 0 {
		return ""
	}
	labels := make([]string, 0, len(a.Daily))
	points := make([]opts.LineData, 0, len(a.Daily))
	for _, p := range a.Daily {
		labels = append(labels, p.Date)
		points = append(points, opts.LineData{Value: p.Count})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(globalOptions("Inquiries per day")...)
	line.SetXAxis(labels)
	line.AddSeries("Inquiries", points)
	line.SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))
	return renderChart(line)
}

// InvoiceChart renders the monthly invoice totals as a bar chart.
func InvoiceChart(a models.InvoiceAnalytics) string {
	if len(a.Monthly) == 0 {
		return ""
	}
	labels := make([]string, 0, len(a.Monthly))
	points := make([]opts.BarData, 0, len(a.Monthly))
	for _, p := range a.Monthly {
		labels = append(labels, p.Date)
		points = append(points, opts.BarData{Value: p.Total})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(globalOptions("Invoice totals per month")...)
	bar.SetXAxis(labels)
	bar.AddSeries("Total", points)
	return renderChart(bar)
}

// StatusChart renders the inquiry status breakdown as a pie.
func StatusChart(byStatus map[string]int) string {
	if len(byStatus) == 0 {
		return ""
	}
	points := make([]opts.PieData, 0, len(byStatus))
	for _, status := range []string{models.InquiryStatusNew, models.InquiryStatusRead} {
		if n, found := byStatus[status]; found {
			points = append(points, opts.PieData{Name: status, Value: n})
		}
	}
	for status, n := range byStatus {
		if status != models.InquiryStatusNew && status != models.InquiryStatusRead {
			points = append(points, opts.PieData{Name: status, Value: n})
		}
	}

	pie := charts.NewPie()
	pie.SetGlobalOptions(globalOptions("Inquiries by status")...)
	pie.AddSeries("Status", points)
	return renderChart(pie)
}

// ContentChart renders the managed-content breakdown as a bar chart,
// sections in alphabetical order so the axis is stable between loads.
func ContentChart(a models.ContentAnalytics) string {
	if len(a.ByType) == 0 {
		return ""
	}
	labels := make([]string, 0, len(a.ByType))
	for section := range a.ByType {
		labels = append(labels, section)
	}
	sort.Strings(labels)

	points := make([]opts.BarData, 0, len(labels))
	for _, section := range labels {
		points = append(points, opts.BarData{Value: a.ByType[section]})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(globalOptions("Content by section")...)
	bar.SetXAxis(labels)
	bar.AddSeries("Records", points)
	return renderChart(bar)
}

func globalOptions(title string) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme:  types.ThemeWesteros,
			Width:  "100%",
			Height: chartHeight,
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	}
}

// renderChart produces the standalone chart document; the template embeds
// it via an iframe srcdoc so the chart script stays isolated.
func renderChart(renderable interface{ Render(io.Writer) error }) string {
	var buf bytes.Buffer
	if err := renderable.Render(&buf); err != nil {
		return ""
	}
	return buf.String()
}
