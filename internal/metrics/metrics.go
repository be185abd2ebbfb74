package metrics

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the service collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	gatherer prometheus.Gatherer

	requests        *prometheus.CounterVec
	predictions     *prometheus.CounterVec
	predictionErrs  *prometheus.CounterVec
	predictDuration prometheus.Histogram
	artifactsLoaded prometheus.Gauge
}

// New creates the collectors and registers them with reg
func New(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		gatherer: reg,
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "homeprice_http_requests_total", Help: "HTTP requests"},
			[]string{"method", "path", "status"},
		),
		predictions: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "homeprice_predictions_total", Help: "Successful predictions"},
			[]string{"location_match"},
		),
		predictionErrs: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "homeprice_prediction_errors_total", Help: "Failed predictions"},
			[]string{"reason"},
		),
		predictDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "homeprice_prediction_duration_seconds",
				Help:    "Prediction latency",
				Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.02, 0.1, 0.5},
			},
		),
		artifactsLoaded: prometheus.NewGauge(
			prometheus.GaugeOpts{Name: "homeprice_artifacts_loaded", Help: "1 once schema and model are loaded"},
		),
	}
	reg.MustRegister(m.requests, m.predictions, m.predictionErrs, m.predictDuration, m.artifactsLoaded)
	return m
}

// Middleware counts every request by route template and status
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if m == nil {
			return
		}
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.requests.WithLabelValues(c.Request.Method, path, http.StatusText(c.Writer.Status())).Inc()
	}
}

// Handler serves the Prometheus exposition format
func (m *Metrics) Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{}))
}

func (m *Metrics) ObservePrediction(locationMatch string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.predictions.WithLabelValues(locationMatch).Inc()
	m.predictDuration.Observe(elapsed.Seconds())
}

func (m *Metrics) ObservePredictionError(reason string) {
	if m == nil {
		return
	}
	m.predictionErrs.WithLabelValues(reason).Inc()
}

func (m *Metrics) ArtifactsLoaded(ok bool) {
	if m == nil {
		return
	}
	if ok {
		m.artifactsLoaded.Set(1)
	} else {
		m.artifactsLoaded.Set(0)
	}
}
