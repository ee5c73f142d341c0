package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type Prometheus struct {
	locationCreated    *prometheus.CounterVec
	radiusQueries      *prometheus.CounterVec
	useCaseTotal       *prometheus.CounterVec
	useCaseDuration    *prometheus.HistogramVec
	httpDuration       *prometheus.HistogramVec
	catalogDescriptors *prometheus.CounterVec
	authLookupFailures *prometheus.CounterVec
}

func NewPrometheusMetrics(reg prometheus.Registerer, serviceName string) *Prometheus {
	m := &Prometheus{
		locationCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "geopoint_location_created_total",
			Help:        "Total location records created.",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"status"}),
		radiusQueries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "geopoint_radius_query_total",
			Help:        "Total list requests that triggered the radius filter.",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"status"}),
		useCaseTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "app_usecase_total",
			Help:        "Total number of Use Case executions.",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"use_case", "status"}),
		useCaseDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "app_usecase_duration_seconds",
			Help:        "Use Case execution latency.",
			Buckets:     []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"use_case", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "app_http_duration_seconds",
			Help:        "Duration of HTTP requests.",
			Buckets:     []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"method", "path", "status_code"}),
		catalogDescriptors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "geopoint_catalog_descriptors_total",
			Help:        "Total catalog descriptor files written.",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"status"}),
		authLookupFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "geopoint_auth_lookup_failures_total",
			Help:        "Total token directory lookups that failed.",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"reason"}),
	}

	reg.MustRegister(
		m.locationCreated,
		m.radiusQueries,
		m.useCaseTotal,
		m.useCaseDuration,
		m.httpDuration,
		m.catalogDescriptors,
		m.authLookupFailures,
	)
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	return m
}

func (p *Prometheus) RecordLocationCreated(status string) {
	p.locationCreated.WithLabelValues(status).Inc()
}

func (p *Prometheus) RecordRadiusQuery(status string) {
	p.radiusQueries.WithLabelValues(status).Inc()
}

func (p *Prometheus) RecordUseCaseExecution(useCase string, success bool, duration time.Duration) {
	status := "success"
	if !success {
		status = "failure"
	}
	p.useCaseTotal.WithLabelValues(useCase, status).Inc()
	p.useCaseDuration.WithLabelValues(useCase, status).Observe(duration.Seconds())
}

func (p *Prometheus) RecordCatalogDescriptor(status string) {
	p.catalogDescriptors.WithLabelValues(status).Inc()
}

func (p *Prometheus) ObserveHTTPRequestDuration(method, path, code string, duration float64) {
	p.httpDuration.WithLabelValues(method, path, code).Observe(duration)
}

func (p *Prometheus) IncAuthLookupFailure(reason string) {
	p.authLookupFailures.WithLabelValues(reason).Inc()
}
