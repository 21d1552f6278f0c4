package bundle

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/loom-dev/loom/pkg/memdom"
	"github.com/loom-dev/loom/pkg/vdom"
)

func TestNewTreeDefaults(t *testing.T) {
	tree := NewTree(memdom.New())

	if tree.logger == nil {
		t.Error("logger not defaulted")
	}
	if tree.metrics != nil {
		t.Error("metrics should be disabled without a registry")
	}
	if tree.tracer == nil {
		t.Error("tracer not set")
	}
}

func TestTreeOptions(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	reg := prometheus.NewRegistry()

	tree := NewTree(memdom.New(),
		WithLogger(logger),
		WithRegistry(reg),
		WithNamespace("app"),
		WithTracerName("test"),
	)

	if tree.logger != logger {
		t.Error("WithLogger not applied")
	}
	if tree.metrics == nil {
		t.Error("WithRegistry did not enable metrics")
	}
}

func TestTreeMetricsCounters(t *testing.T) {
	doc := memdom.New()
	reg := prometheus.NewRegistry()
	tree := NewTree(doc, WithRegistry(reg))
	parent := doc.CreateElement("body")
	ctx := context.Background()

	v := vdom.Div(vdom.Span("a"), vdom.Span("b"))
	_, b := tree.Attach(ctx, v, nil, parent, AtEnd())

	// div + 2 spans + 2 texts.
	if got := testutil.ToFloat64(tree.metrics.nodesCreated); got != 5 {
		t.Errorf("nodes_created = %v, want 5", got)
	}

	tree.Detach(b, parent, false)
	if got := testutil.ToFloat64(tree.metrics.nodesRemoved); got != 1 {
		t.Errorf("nodes_removed = %v, want 1", got)
	}
}

func TestTreeHydrationMismatchCounter(t *testing.T) {
	doc := memdom.New()
	reg := prometheus.NewRegistry()
	tree := NewTree(doc, WithRegistry(reg))
	parent := doc.CreateElement("body")

	if err := doc.ParseInto(parent, `<span></span>`); err != nil {
		t.Fatalf("ParseInto: %v", err)
	}
	_, err := tree.Hydrate(context.Background(), vdom.Div(), nil, parent, CollectChildren(parent))
	if err == nil {
		t.Fatal("expected hydration error")
	}

	if got := testutil.ToFloat64(tree.metrics.hydrationMismatches); got != 1 {
		t.Errorf("hydration_mismatches = %v, want 1", got)
	}
}

func TestTwoTreesWithSameRegistryName(t *testing.T) {
	// Separate registries keep collector names from colliding; this
	// must not panic.
	NewTree(memdom.New(), WithRegistry(prometheus.NewRegistry()))
	NewTree(memdom.New(), WithRegistry(prometheus.NewRegistry()))
}

func TestTreeClose(t *testing.T) {
	doc := memdom.New()
	tree := NewTree(doc)
	parent := doc.CreateElement("body")

	_, b := tree.Attach(context.Background(), vdom.Div(), nil, parent, AtEnd())
	tree.Close()

	// Attached bundles stay detachable after Close.
	tree2 := NewTree(doc)
	tree2.Detach(b, parent, false)
	if got := memdom.InnerHTML(parent); got != "" {
		t.Errorf("InnerHTML = %v, want empty", got)
	}
}
