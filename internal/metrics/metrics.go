// Package metrics expone los contadores Prometheus de la aplicación.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector agrupa las métricas del servidor y de los adaptadores de
// datos. Una sola instancia se comparte entre el middleware HTTP y los
// servicios.
type Collector struct {
	httpRequests *prometheus.CounterVec
	httpLatency  prometheus.Histogram
	loginsFallos prometheus.Counter
	pdfGenerados prometheus.Counter
}

// NewCollector registra las métricas en el registry recibido.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "comunidad_http_requests_total",
			Help: "Peticiones HTTP atendidas, por método, ruta y status.",
		}, []string{"method", "route", "status"}),
		httpLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "comunidad_http_latency_seconds",
			Help:    "Latencia de las peticiones HTTP en segundos.",
			Buckets: prometheus.DefBuckets,
		}),
		loginsFallos: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "comunidad_login_failures_total",
			Help: "Intentos de login rechazados.",
		}),
		pdfGenerados: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "comunidad_pdf_generated_total",
			Help: "Planillas de asistencia PDF generadas.",
		}),
	}

	reg.MustRegister(
		c.httpRequests,
		c.httpLatency,
		c.loginsFallos,
		c.pdfGenerados,
	)

	return c
}

// RecordHTTPRequest registra una petición atendida.
func (c *Collector) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.httpLatency.Observe(duration.Seconds())
}

// RecordLoginFailure registra un login rechazado.
func (c *Collector) RecordLoginFailure() {
	c.loginsFallos.Inc()
}

// RecordPDFGenerated registra una planilla generada.
func (c *Collector) RecordPDFGenerated() {
	c.pdfGenerados.Inc()
}

// Handler devuelve el handler de scrape para /metrics.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
