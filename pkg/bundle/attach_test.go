package bundle

import (
	"context"
	"testing"

	"github.com/loom-dev/loom/pkg/dom"
	"github.com/loom-dev/loom/pkg/memdom"
	"github.com/loom-dev/loom/pkg/vdom"
)

func newTestTree(t *testing.T) (*memdom.Document, *Tree, dom.Element) {
	t.Helper()
	doc := memdom.New()
	tree := NewTree(doc)
	parent := doc.CreateElement("body")
	return doc, tree, parent
}

func TestAttachElementTree(t *testing.T) {
	_, tree, parent := newTestTree(t)

	v := vdom.Div(vdom.Class("card"),
		vdom.H1("Title"),
		vdom.P(vdom.ID("body"), "Content"),
	)
	_, b := tree.Attach(context.Background(), v, nil, parent, AtEnd())
	if b == nil {
		t.Fatal("Attach returned nil bundle")
	}

	want := `<div class="card"><h1>Title</h1><p id="body">Content</p></div>`
	if got := memdom.InnerHTML(parent); got != want {
		t.Errorf("InnerHTML = %v, want %v", got, want)
	}
}

func TestAttachText(t *testing.T) {
	doc, tree, parent := newTestTree(t)

	tree.Attach(context.Background(), vdom.Text("hello"), nil, parent, AtEnd())

	if got := memdom.InnerHTML(parent); got != "hello" {
		t.Errorf("InnerHTML = %v, want hello", got)
	}
	if doc.Stats().TextsCreated != 1 {
		t.Errorf("TextsCreated = %d, want 1", doc.Stats().TextsCreated)
	}
}

func TestAttachNilIsEmpty(t *testing.T) {
	_, tree, parent := newTestTree(t)

	_, b := tree.Attach(context.Background(), nil, nil, parent, AtEnd())
	if b == nil {
		t.Fatal("Attach returned nil bundle")
	}
	if got := memdom.InnerHTML(parent); got != "" {
		t.Errorf("InnerHTML = %v, want empty", got)
	}
}

func TestAttachList(t *testing.T) {
	_, tree, parent := newTestTree(t)

	v := vdom.List(vdom.Span("a"), vdom.Span("b"), "c")
	tree.Attach(context.Background(), v, nil, parent, AtEnd())

	want := `<span>a</span><span>b</span>c`
	if got := memdom.InnerHTML(parent); got != want {
		t.Errorf("InnerHTML = %v, want %v", got, want)
	}
}

func TestAttachReturnedSlotPrecedesContent(t *testing.T) {
	_, tree, parent := newTestTree(t)
	ctx := context.Background()

	slot, _ := tree.Attach(ctx, vdom.Span("second"), nil, parent, AtEnd())
	tree.Attach(ctx, vdom.Span("first"), nil, parent, slot)

	want := `<span>first</span><span>second</span>`
	if got := memdom.InnerHTML(parent); got != want {
		t.Errorf("InnerHTML = %v, want %v", got, want)
	}
}

func TestAttachUsesTemplateCache(t *testing.T) {
	doc, tree, parent := newTestTree(t)
	ctx := context.Background()
	doc.ResetStats()

	tree.Attach(ctx, vdom.Div(), nil, parent, AtEnd())
	tree.Attach(ctx, vdom.Div(), nil, parent, AtEnd())

	stats := doc.Stats()
	if stats.ElementsCreated != 1 {
		t.Errorf("ElementsCreated = %d, want 1 (template only)", stats.ElementsCreated)
	}
	if stats.Clones != 2 {
		t.Errorf("Clones = %d, want 2", stats.Clones)
	}
}

func TestAttachSVGNamespace(t *testing.T) {
	_, tree, parent := newTestTree(t)

	v := vdom.Svg(vdom.CustomElement("circle", vdom.CustomAttr("r", 5)))
	tree.Attach(context.Background(), v, nil, parent, AtEnd())

	svg := parent.ChildNodes()[0].(dom.Element)
	if svg.Namespace() != dom.SVGNamespace {
		t.Errorf("svg namespace = %v, want %v", svg.Namespace(), dom.SVGNamespace)
	}
	circle := svg.ChildNodes()[0].(dom.Element)
	if circle.Namespace() != dom.SVGNamespace {
		t.Errorf("circle namespace = %v, want %v", circle.Namespace(), dom.SVGNamespace)
	}
}

func TestAttachMathMLNamespace(t *testing.T) {
	_, tree, parent := newTestTree(t)

	v := vdom.Math(vdom.CustomElement("mi", "x"))
	tree.Attach(context.Background(), v, nil, parent, AtEnd())

	math := parent.ChildNodes()[0].(dom.Element)
	if math.Namespace() != dom.MathMLNamespace {
		t.Errorf("math namespace = %v, want %v", math.Namespace(), dom.MathMLNamespace)
	}
}

func TestAttachExplicitXmlnsWins(t *testing.T) {
	_, tree, parent := newTestTree(t)

	v := vdom.CustomElement("graph", vdom.Xmlns("urn:example"))
	tree.Attach(context.Background(), v, nil, parent, AtEnd())

	el := parent.ChildNodes()[0].(dom.Element)
	if el.Namespace() != "urn:example" {
		t.Errorf("namespace = %v, want urn:example", el.Namespace())
	}
}

func TestAttachRegistersListeners(t *testing.T) {
	doc, tree, parent := newTestTree(t)

	clicks := 0
	v := vdom.Button(vdom.OnClick(func(dom.Event) { clicks++ }), "Go")
	tree.Attach(context.Background(), v, nil, parent, AtEnd())

	if doc.ActiveListeners() != 1 {
		t.Fatalf("ActiveListeners = %d, want 1", doc.ActiveListeners())
	}
	parent.ChildNodes()[0].(*memdom.Element).Dispatch("click")
	if clicks != 1 {
		t.Errorf("clicks = %d, want 1", clicks)
	}
}

func TestAttachBindsRef(t *testing.T) {
	_, tree, parent := newTestTree(t)

	ref := dom.NewNodeRef()
	tree.Attach(context.Background(), vdom.Div(vdom.Ref(ref)), nil, parent, AtEnd())

	if !ref.IsBound() {
		t.Fatal("ref not bound after attach")
	}
	if ref.Get() != parent.ChildNodes()[0] {
		t.Error("ref bound to the wrong node")
	}
}

func TestAttachControlledInput(t *testing.T) {
	_, tree, parent := newTestTree(t)

	v := vdom.Input(vdom.Type("text"), vdom.Value("hello"), vdom.Checked(true))
	tree.Attach(context.Background(), v, nil, parent, AtEnd())

	el := parent.ChildNodes()[0].(*memdom.Element)
	if el.Property("value") != "hello" {
		t.Errorf("value property = %v, want hello", el.Property("value"))
	}
	if el.Property("checked") != true {
		t.Errorf("checked property = %v, want true", el.Property("checked"))
	}
	if v, _ := el.Attribute("type"); v != "text" {
		t.Errorf("type attr = %v, want text", v)
	}
}

func TestAttachComponent(t *testing.T) {
	_, tree, parent := newTestTree(t)

	c := vdom.Func(func() *vdom.VNode {
		return vdom.Div(vdom.ID("comp"), "rendered")
	})
	tree.Attach(context.Background(), vdom.Comp(c), nil, parent, AtEnd())

	want := `<div id="comp">rendered</div>`
	if got := memdom.InnerHTML(parent); got != want {
		t.Errorf("InnerHTML = %v, want %v", got, want)
	}
}

func TestAttachPortal(t *testing.T) {
	doc, tree, parent := newTestTree(t)
	host := doc.CreateElement("div")

	v := vdom.Div(vdom.Portal(host, vdom.Span("overlay")), "body")
	tree.Attach(context.Background(), v, nil, parent, AtEnd())

	if got := memdom.InnerHTML(parent); got != `<div>body</div>` {
		t.Errorf("parent InnerHTML = %v, want <div>body</div>", got)
	}
	if got := memdom.InnerHTML(host); got != `<span>overlay</span>` {
		t.Errorf("host InnerHTML = %v, want <span>overlay</span>", got)
	}
}

func TestBundleKey(t *testing.T) {
	_, tree, parent := newTestTree(t)

	_, b := tree.Attach(context.Background(), vdom.Div(vdom.Key("root")), nil, parent, AtEnd())
	if b.Key() != "root" {
		t.Errorf("Key = %v, want root", b.Key())
	}
}
