package main

import (
	"errors"
	"fmt"

	prom "github.com/prometheus/client_golang/prometheus"
)

// summaryMetrics aggregates per-run counts for the --summary-out textfile.
// Each run uses its own registry so repeated invocations start from zero,
// matching textfile-collector expectations.
type summaryMetrics struct {
	registry  *prom.Registry
	addresses *prom.CounterVec
	classes   *prom.CounterVec
}

func newSummaryMetrics() (*summaryMetrics, error) {
	registry := prom.NewRegistry()

	addressesCollector := prom.NewCounterVec(
		prom.CounterOpts{
			Name: "addrinfo_addresses_total",
			Help: "Addresses classified in this run, labeled by family (v4, v6).",
		},
		[]string{"family"},
	)
	classesCollector := prom.NewCounterVec(
		prom.CounterOpts{
			Name: "addrinfo_classes_total",
			Help: "Classification labels observed in this run, by family and class.",
		},
		[]string{"family", "class"},
	)

	addresses, err := registerCounterVec(registry, addressesCollector, "addrinfo_addresses_total")
	if err != nil {
		return nil, err
	}

	classes, err := registerCounterVec(registry, classesCollector, "addrinfo_classes_total")
	if err != nil {
		return nil, err
	}

	return &summaryMetrics{
		registry:  registry,
		addresses: addresses,
		classes:   classes,
	}, nil
}

func registerCounterVec(registerer prom.Registerer, collector *prom.CounterVec, metricName string) (*prom.CounterVec, error) {
	if err := registerer.Register(collector); err != nil {
		var alreadyRegistered prom.AlreadyRegisteredError
		if errors.As(err, &alreadyRegistered) {
			existing, ok := alreadyRegistered.ExistingCollector.(*prom.CounterVec)
			if ok {
				return existing, nil
			}
			return nil, fmt.Errorf("metric %q already registered with incompatible collector type %T", metricName, alreadyRegistered.ExistingCollector)
		}

		return nil, fmt.Errorf("register metric %q: %w", metricName, err)
	}

	return collector, nil
}

func (m *summaryMetrics) recordReport(rep report) {
	m.addresses.WithLabelValues(rep.Family).Inc()
	for _, class := range rep.Classes {
		m.classes.WithLabelValues(rep.Family, class).Inc()
	}
}

// writeTextfile writes the run's counts in the node_exporter
// textfile-collector format.
func (m *summaryMetrics) writeTextfile(path string) error {
	return prom.WriteToTextfile(path, m.registry)
}
