package bundle

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics holds the reconciler's Prometheus collectors.
type metrics struct {
	nodesCreated        prometheus.Counter
	nodesRemoved        prometheus.Counter
	nodesMoved          prometheus.Counter
	listenersRegistered prometheus.Counter
	hydrationMismatches prometheus.Counter
}

func newMetrics(namespace string, registry prometheus.Registerer) *metrics {
	factory := promauto.With(registry)

	return &metrics{
		nodesCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "bundle",
			Name:      "nodes_created_total",
			Help:      "Native nodes created by attach.",
		}),
		nodesRemoved: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "bundle",
			Name:      "nodes_removed_total",
			Help:      "Native subtree roots removed by detach.",
		}),
		nodesMoved: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "bundle",
			Name:      "nodes_moved_total",
			Help:      "Native nodes relocated by shift.",
		}),
		listenersRegistered: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "bundle",
			Name:      "listeners_registered_total",
			Help:      "Event listener registrations issued.",
		}),
		hydrationMismatches: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "bundle",
			Name:      "hydration_mismatches_total",
			Help:      "Fatal structural mismatches during hydration.",
		}),
	}
}
