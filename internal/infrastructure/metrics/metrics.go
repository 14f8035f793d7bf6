package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/jhoicas/stockwatch-api/internal/application/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "stockwatch"

// Recorder métricas de negocio y HTTP sobre un registro propio (no el global).
type Recorder struct {
	registry *prometheus.Registry

	stockMutations  *prometheus.CounterVec
	lowStockAlerts  *prometheus.CounterVec
	notifications   *prometheus.CounterVec
	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

var _ ports.MetricsRecorder = (*Recorder)(nil)

// NewRecorder crea y registra los colectores, incluidos los de runtime de Go y del proceso.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		stockMutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "stock",
			Name:      "mutations_total",
			Help:      "Mutaciones de stock aplicadas, por operación.",
		}, []string{"operation"}),
		lowStockAlerts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "stock",
			Name:      "low_stock_alerts_total",
			Help:      "Alertas de stock bajo disparadas, por severidad y si quedaron guardadas.",
		}, []string{"severity", "persisted"}),
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "notifier",
			Name:      "deliveries_total",
			Help:      "Intentos de entrega de correo, por transporte y resultado.",
		}, []string{"transport", "status"}),
		requestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Peticiones HTTP atendidas.",
		}, []string{"method", "path", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duración de las peticiones HTTP en segundos.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
	}
	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.stockMutations,
		r.lowStockAlerts,
		r.notifications,
		r.requestTotal,
		r.requestDuration,
	)
	return r
}

func (r *Recorder) ObserveStockMutation(operation string) {
	r.stockMutations.WithLabelValues(operation).Inc()
}

func (r *Recorder) ObserveLowStockAlert(severity string, persisted bool) {
	r.lowStockAlerts.WithLabelValues(severity, strconv.FormatBool(persisted)).Inc()
}

func (r *Recorder) ObserveNotification(transport, status string) {
	r.notifications.WithLabelValues(transport, status).Inc()
}

// Registry expone el registro (tests).
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Middleware cuenta y mide cada petición. Usa la ruta registrada, no la URL, para acotar la cardinalidad.
func (r *Recorder) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		path := c.Route().Path
		labels := []string{c.Method(), path, strconv.Itoa(status)}
		r.requestTotal.WithLabelValues(labels...).Inc()
		r.requestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
		return err
	}
}

// Handler expone /metrics en formato Prometheus.
func (r *Recorder) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{}))
}
