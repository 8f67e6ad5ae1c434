package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	require.NotPanics(t, func() { RegisterCollectors(reg) })

	AIFallbacks.WithLabelValues("transport").Inc()
	QuizFallbacks.Inc()

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "levelup_ai_fallbacks_total")
	assert.Contains(t, names, "levelup_quiz_fallbacks_total")
}

func TestRegisterCollectors_Twice(t *testing.T) {
	reg := prometheus.NewRegistry()
	RegisterCollectors(reg)

	assert.Panics(t, func() { RegisterCollectors(reg) })
}
