package bundle

import (
	"context"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/loom-dev/loom/pkg/dom"
	"github.com/loom-dev/loom/pkg/vdom"
)

// Default tracer name for reconciliation spans.
const defaultTracerName = "github.com/loom-dev/loom/pkg/bundle"

// Config configures a Tree.
type Config struct {
	// Logger receives warnings for best-effort cleanup failures and
	// debug output during hydration (default: slog.Default()).
	Logger *slog.Logger

	// Registry is the Prometheus registry for reconciler metrics.
	// Metrics are disabled when nil.
	Registry prometheus.Registerer

	// Namespace is the metrics namespace (default: "loom").
	Namespace string

	// TracerName is the name of the OpenTelemetry tracer used for
	// spans around the entry points.
	TracerName string
}

// Option configures a Tree.
type Option func(*Config)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithRegistry enables Prometheus metrics on the given registry.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithTracerName sets the tracer name.
func WithTracerName(name string) Option {
	return func(c *Config) {
		c.TracerName = name
	}
}

// Tree is a reconciler instance. It owns the backend document handle,
// the per-tag-name template cache, and the observability hooks. A Tree
// may manage any number of attached bundles against the same document.
//
// Tree is not safe for concurrent use: reconciliation is
// single-threaded and passes are not re-entrant.
type Tree struct {
	doc       dom.Document
	logger    *slog.Logger
	templates map[string]dom.Element
	metrics   *metrics
	tracer    trace.Tracer
}

// NewTree creates a reconciler against the given backend document.
func NewTree(doc dom.Document, opts ...Option) *Tree {
	cfg := Config{
		Namespace:  "loom",
		TracerName: defaultTracerName,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	t := &Tree{
		doc:       doc,
		logger:    cfg.Logger,
		templates: make(map[string]dom.Element),
		tracer:    otel.Tracer(cfg.TracerName),
	}
	if cfg.Registry != nil {
		t.metrics = newMetrics(cfg.Namespace, cfg.Registry)
	}
	return t
}

// Close releases the template cache. The Tree must not be used after
// Close; attached bundles remain valid and can still be detached
// through a fresh Tree over the same document.
func (t *Tree) Close() {
	t.templates = nil
}

// Attach creates native nodes for v and inserts them into parent at
// slot. It returns the slot immediately before the attached content
// and the owning bundle. scope is an opaque owner handle passed
// through to component rendering untouched.
func (t *Tree) Attach(ctx context.Context, v *vdom.VNode, scope any, parent dom.Element, slot Slot) (Slot, *Bundle) {
	_, span := t.startSpan(ctx, "bundle.attach", v)
	defer span.End()

	next, n := t.attachNode(v, scope, parent, slot)
	return next, &Bundle{n: n}
}

// Reconcile updates b in place to represent v, replacing incompatible
// subtrees at their current position. It returns the slot immediately
// before the reconciled content.
func (t *Tree) Reconcile(ctx context.Context, v *vdom.VNode, scope any, parent dom.Element, slot Slot, b *Bundle) Slot {
	_, span := t.startSpan(ctx, "bundle.reconcile", v)
	defer span.End()

	return t.reconcileNode(v, scope, parent, slot, &b.n)
}

// Detach releases all resources owned by b: listener registrations
// are removed, external refs still pointing into the subtree are
// cleared, and exactly one native removal fires at the subtree root —
// unless parentRemoved indicates the parent's own native node is being
// removed, which takes the subtree with it.
func (t *Tree) Detach(b *Bundle, parent dom.Element, parentRemoved bool) {
	b.n.detach(t, parent, parentRemoved)
}

// Shift relocates b's native representation into newParent at slot
// without recreating it, preserving listener registrations and ref
// bindings. It returns the slot immediately before the moved content.
func (t *Tree) Shift(b *Bundle, newParent dom.Element, slot Slot) Slot {
	return b.n.shift(t, newParent, slot)
}

// Hydrate adopts pre-existing native nodes from frag instead of
// creating them, producing a bundle indistinguishable from a fresh
// Attach of v. A structural mismatch between v and the native nodes is
// fatal: the returned error wraps ErrHydrationMismatch and the partial
// bundle is discarded.
func (t *Tree) Hydrate(ctx context.Context, v *vdom.VNode, scope any, parent dom.Element, frag *Fragment) (*Bundle, error) {
	_, span := t.startSpan(ctx, "bundle.hydrate", v)
	defer span.End()

	n, err := t.hydrateNode(v, scope, parent, frag)
	if err != nil {
		t.noteHydrationMismatch()
		return nil, err
	}
	return &Bundle{n: n}, nil
}

func (t *Tree) noteCreated() {
	if t.metrics != nil {
		t.metrics.nodesCreated.Inc()
	}
}

func (t *Tree) noteRemoved() {
	if t.metrics != nil {
		t.metrics.nodesRemoved.Inc()
	}
}

func (t *Tree) noteMoved() {
	if t.metrics != nil {
		t.metrics.nodesMoved.Inc()
	}
}

func (t *Tree) noteListenerRegistered() {
	if t.metrics != nil {
		t.metrics.listenersRegistered.Inc()
	}
}

func (t *Tree) noteHydrationMismatch() {
	if t.metrics != nil {
		t.metrics.hydrationMismatches.Inc()
	}
}
