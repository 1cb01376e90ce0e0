package casting

import (
	spellerr "github.com/KirkDiggler/spellcraft/internal/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts quotes served by the casting service
type Metrics struct {
	quotesComputed prometheus.Counter
	quotesRefused  *prometheus.CounterVec
}

// NewMetrics registers the casting counters with reg. A nil registerer
// leaves the counters unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		quotesComputed: factory.NewCounter(prometheus.CounterOpts{
			Name: "spellcraft_quotes_computed_total",
			Help: "Total number of spell costs quoted.",
		}),
		quotesRefused: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "spellcraft_quotes_refused_total",
			Help: "Total number of quote requests refused, partitioned by error code.",
		}, []string{"code"}),
	}
}

func (m *Metrics) computed() {
	m.quotesComputed.Inc()
}

func (m *Metrics) refused(err error) {
	m.quotesRefused.WithLabelValues(string(spellerr.GetCode(err))).Inc()
}
