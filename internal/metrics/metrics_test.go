package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsRegistered(t *testing.T) {
	MessagesDecoded.WithLabelValues("v4", "DISCOVER").Inc()
	MessagesEncoded.WithLabelValues("v6", "SOLICIT").Inc()
	DecodeErrors.WithLabelValues("v4", "not_enough_bytes").Inc()
	UnknownOptionsObserved.WithLabelValues("v4", "250").Inc()
	LongOptionFragments.Inc()
	RelayNestingDepth.Observe(2)

	if got := testutil.ToFloat64(LongOptionFragments); got != 1 {
		t.Errorf("LongOptionFragments = %v, want 1", got)
	}
}

func TestMetricsNamespace(t *testing.T) {
	mfs, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}

	for _, mf := range mfs {
		name := mf.GetName()
		if strings.HasPrefix(name, "go_") ||
			strings.HasPrefix(name, "process_") ||
			strings.HasPrefix(name, "promhttp_") {
			continue
		}
		if !strings.HasPrefix(name, "dhcpwire_") {
			t.Errorf("metric %q does not have dhcpwire_ prefix", name)
		}
	}
}
