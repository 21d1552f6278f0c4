package bundle

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/loom-dev/loom/pkg/vdom"
)

// startSpan opens a span for a reconciliation entry point, annotated
// with the root virtual node's kind and tag.
func (t *Tree) startSpan(ctx context.Context, name string, v *vdom.VNode) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, name, trace.WithAttributes(spanAttrs(v)...))
}

func spanAttrs(v *vdom.VNode) []attribute.KeyValue {
	if v == nil {
		return nil
	}
	attrs := []attribute.KeyValue{
		attribute.String("vnode.kind", v.Kind.String()),
	}
	if v.Kind == vdom.KindTag {
		attrs = append(attrs, attribute.String("vnode.tag", v.Tag))
	}
	if v.Key != "" {
		attrs = append(attrs, attribute.String("vnode.key", v.Key))
	}
	return attrs
}
