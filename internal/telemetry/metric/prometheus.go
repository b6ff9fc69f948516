package metric

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "ut"

// Registry holds all application metrics.
type Registry struct {
	registry *prometheus.Registry

	// Conversions counts successful commands by command and precision.
	Conversions *prometheus.CounterVec

	// Errors counts failed commands by command and domain error code.
	Errors *prometheus.CounterVec

	// DeprecatedFlags counts uses of deprecated flags by flag name.
	DeprecatedFlags *prometheus.CounterVec

	// LastSuccess is the Unix time of the last successful command.
	LastSuccess prometheus.Gauge
}

// NewRegistry creates a registry with every ut metric registered.
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
		Conversions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "conversions_total",
			Help:      "Successful conversions by command and precision",
		}, []string{"command", "precision"}),
		Errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "Failed commands by command and error code",
		}, []string{"command", "code"}),
		DeprecatedFlags: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deprecated_flags_total",
			Help:      "Uses of deprecated flags",
		}, []string{"flag"}),
		LastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time of the last successful command",
		}),
	}

	r.registry.MustRegister(
		r.Conversions,
		r.Errors,
		r.DeprecatedFlags,
		r.LastSuccess,
	)

	return r
}

// ObserveConversion records a successful command.
func (r *Registry) ObserveConversion(command, precision string) {
	r.Conversions.WithLabelValues(command, precision).Inc()
	r.LastSuccess.SetToCurrentTime()
}

// ObserveError records a failed command. An empty code is reported as
// "unknown".
func (r *Registry) ObserveError(command, code string) {
	if code == "" {
		code = "unknown"
	}
	r.Errors.WithLabelValues(command, code).Inc()
}

// ObserveDeprecated records a deprecated flag use.
func (r *Registry) ObserveDeprecated(flag string) {
	r.DeprecatedFlags.WithLabelValues(flag).Inc()
}

// WriteTextfile writes all metrics to path in text exposition format.
// The file is written to a temporary name and renamed into place.
func (r *Registry) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
