package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DBErrCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "organizer",
		Subsystem: "db",
		Name:      "db_err_count",
	}, []string{"method"})
	DBDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "organizer",
		Subsystem: "db",
		Name:      "db_duration",
	}, []string{"method"})
)
