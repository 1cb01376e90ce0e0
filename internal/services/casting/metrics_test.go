package casting

import (
	"errors"
	"testing"

	spellerr "github.com/KirkDiggler/spellcraft/internal/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.computed()
	m.computed()
	m.refused(spellerr.Validation("too strong"))
	m.refused(spellerr.Wrap(spellerr.Configuration("unknown"), "lookup failed"))
	m.refused(errors.New("plain"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.quotesComputed))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.quotesRefused.WithLabelValues("validation")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.quotesRefused.WithLabelValues("configuration")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.quotesRefused.WithLabelValues("unknown")))
}

func TestMetrics_NilRegisterer(t *testing.T) {
	m := NewMetrics(nil)
	m.computed()
	assert.Equal(t, 1.0, testutil.ToFloat64(m.quotesComputed))
}
