package services

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	reportsTotal       *prometheus.CounterVec
	reportDuration     *prometheus.HistogramVec
	reportRows         *prometheus.GaugeVec
	toolMutationsTotal *prometheus.CounterVec
	toolsByStatus      *prometheus.GaugeVec
	companyMonthlyCost prometheus.Gauge
}

// NewPrometheusMetrics registers the collectors on reg. Passing a fresh
// registry keeps repeated construction from panicking on duplicates.
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		reportsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "analytics_reports_total",
				Help: "Total number of analytics reports generated",
			},
			[]string{"report", "status"},
		),
		reportDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "analytics_report_duration_milliseconds",
				Help:    "Analytics report generation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"report"},
		),
		reportRows: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "analytics_report_rows",
				Help: "Number of rows in the last generated report",
			},
			[]string{"report"},
		),
		toolMutationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tool_mutations_total",
				Help: "Total number of tool catalog changes",
			},
			[]string{"operation"},
		),
		toolsByStatus: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "tools_total",
				Help: "Current number of tools by status",
			},
			[]string{"status"},
		),
		companyMonthlyCost: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "company_monthly_cost",
				Help: "Monthly cost of all active tools from the last department report",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "analytics.report":
		if report := tags["report"]; report != "" {
			m.reportsTotal.WithLabelValues(report, tags["status"]).Inc()
		}
	case "tool.mutation":
		if operation := tags["operation"]; operation != "" {
			m.toolMutationsTotal.WithLabelValues(operation).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	if report, ok := strings.CutPrefix(name, "analytics."); ok && report != "" {
		m.reportDuration.WithLabelValues(report).Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "analytics.rows":
		if report := tags["report"]; report != "" {
			m.reportRows.WithLabelValues(report).Set(value)
		}
	case "tools":
		if status := tags["status"]; status != "" {
			m.toolsByStatus.WithLabelValues(status).Set(value)
		}
	case "company_monthly_cost":
		m.companyMonthlyCost.Set(value)
	}
}
