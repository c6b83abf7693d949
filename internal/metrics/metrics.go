package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var once sync.Once

var (
	RegistrationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pawfinder_registrations_total",
			Help: "Count of successful account registrations per role.",
		},
		[]string{"role"},
	)

	NotificationFanoutTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "pawfinder_notification_fanout_total",
			Help: "Count of notifications created by stage-transition fan-out.",
		},
	)
)

// MustRegister registers all collectors with Prometheus exactly once.
func MustRegister() {
	once.Do(func() {
		prometheus.MustRegister(RegistrationsTotal, NotificationFanoutTotal)
	})
}
