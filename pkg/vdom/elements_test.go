package vdom

import (
	"testing"

	"github.com/loom-dev/loom/pkg/dom"
	"github.com/loom-dev/loom/pkg/memdom"
)

func TestElementBasics(t *testing.T) {
	node := Div()

	if node.Kind != KindTag {
		t.Errorf("Kind = %v, want KindTag", node.Kind)
	}
	if node.Tag != "div" {
		t.Errorf("Tag = %v, want div", node.Tag)
	}
	if node.TagKind != TagOther {
		t.Errorf("TagKind = %v, want TagOther", node.TagKind)
	}
}

func TestElementTagKinds(t *testing.T) {
	if Input().TagKind != TagInput {
		t.Errorf("Input TagKind = %v, want TagInput", Input().TagKind)
	}
	if Textarea().TagKind != TagTextarea {
		t.Errorf("Textarea TagKind = %v, want TagTextarea", Textarea().TagKind)
	}
	if Span().TagKind != TagOther {
		t.Errorf("Span TagKind = %v, want TagOther", Span().TagKind)
	}
}

func TestElementWithAttributes(t *testing.T) {
	node := Div(ID("main"), Class("card"))

	if len(node.Attrs) != 2 {
		t.Fatalf("Attrs len = %d, want 2", len(node.Attrs))
	}
	if v, _ := node.Attrs.Get("id"); v != "main" {
		t.Errorf("id = %v, want main", v)
	}
	if v, _ := node.Attrs.Get("class"); v != "card" {
		t.Errorf("class = %v, want card", v)
	}
}

func TestElementAttrSlice(t *testing.T) {
	node := Div([]Attr{ID("a"), Class("b")})

	if len(node.Attrs) != 2 {
		t.Errorf("Attrs len = %d, want 2", len(node.Attrs))
	}
}

func TestElementDuplicateAttrLastWins(t *testing.T) {
	node := Div(Class("a"), Class("b"))

	if len(node.Attrs) != 1 {
		t.Fatalf("Attrs len = %d, want 1", len(node.Attrs))
	}
	if v, _ := node.Attrs.Get("class"); v != "b" {
		t.Errorf("class = %v, want b", v)
	}
}

func TestElementNilArgsIgnored(t *testing.T) {
	node := Div(nil, Span(), nil)

	if len(node.Children) != 1 {
		t.Errorf("Children len = %d, want 1", len(node.Children))
	}
}

func TestElementStringShorthand(t *testing.T) {
	node := P("hello")

	if len(node.Children) != 1 {
		t.Fatalf("Children len = %d, want 1", len(node.Children))
	}
	child := node.Children[0]
	if child.Kind != KindText || child.Text != "hello" {
		t.Errorf("child = %v %q, want Text hello", child.Kind, child.Text)
	}
}

func TestElementChildSlice(t *testing.T) {
	items := []*VNode{Li("a"), nil, Li("b")}
	node := Ul(items)

	if len(node.Children) != 2 {
		t.Errorf("Children len = %d, want 2", len(node.Children))
	}
}

func TestElementListeners(t *testing.T) {
	h := func(dom.Event) {}
	node := Button(OnClick(h), Text("Go"))

	if len(node.Listeners) != 1 {
		t.Fatalf("Listeners len = %d, want 1", len(node.Listeners))
	}
	if node.Listeners[0].Event != "click" {
		t.Errorf("Event = %v, want click", node.Listeners[0].Event)
	}
}

func TestElementKeyLifted(t *testing.T) {
	node := Li(Key(7), "x")

	if node.Key != "7" {
		t.Errorf("Key = %v, want 7", node.Key)
	}
	if _, ok := node.Attrs.Get("key"); ok {
		t.Error("key stored as a plain attribute")
	}
}

func TestElementRef(t *testing.T) {
	ref := dom.NewNodeRef()
	node := Div(Ref(ref))

	if node.Ref != ref {
		t.Error("Ref not bound to the node")
	}
}

func TestInputValueLifted(t *testing.T) {
	node := Input(Type("text"), Value("hello"))

	if node.Value == nil || *node.Value != "hello" {
		t.Fatalf("Value = %v, want hello", node.Value)
	}
	if _, ok := node.Attrs.Get("value"); ok {
		t.Error("value stored as a plain attribute")
	}
	if v, _ := node.Attrs.Get("type"); v != "text" {
		t.Errorf("type = %v, want text", v)
	}
}

func TestInputCheckedLifted(t *testing.T) {
	node := Input(Type("checkbox"), Checked(true))

	if node.Checked == nil || !*node.Checked {
		t.Fatalf("Checked = %v, want true", node.Checked)
	}
	if _, ok := node.Attrs.Get("checked"); ok {
		t.Error("checked stored as a plain attribute")
	}
}

func TestTextareaValueLifted(t *testing.T) {
	node := Textarea(Rows(4), Value("body"))

	if node.Value == nil || *node.Value != "body" {
		t.Fatalf("Value = %v, want body", node.Value)
	}
}

func TestValueStaysAttrOnPlainTag(t *testing.T) {
	node := Option(Value("a"), "A")

	if node.Value != nil {
		t.Error("option lifted value into controlled state")
	}
	if v, _ := node.Attrs.Get("value"); v != "a" {
		t.Errorf("value attr = %v, want a", v)
	}
}

func TestUncontrolledInputHasNilValue(t *testing.T) {
	node := Input(Type("text"))

	if node.Value != nil {
		t.Error("Value should be nil when not set")
	}
	if node.Checked != nil {
		t.Error("Checked should be nil when not set")
	}
}

func TestVoidElementsDropChildren(t *testing.T) {
	node := Br(Span())

	if len(node.Children) != 0 {
		t.Errorf("Children len = %d, want 0", len(node.Children))
	}
}

func TestInputDropsChildren(t *testing.T) {
	node := Input(Span())

	if len(node.Children) != 0 {
		t.Errorf("Children len = %d, want 0", len(node.Children))
	}
}

func TestIsVoidElement(t *testing.T) {
	tests := []struct {
		tag  string
		want bool
	}{
		{"br", true},
		{"img", true},
		{"input", true},
		{"hr", true},
		{"div", false},
		{"span", false},
	}

	for _, tt := range tests {
		if got := IsVoidElement(tt.tag); got != tt.want {
			t.Errorf("IsVoidElement(%s) = %v, want %v", tt.tag, got, tt.want)
		}
	}
}

func TestComponentArg(t *testing.T) {
	c := Func(func() *VNode { return Span("inner") })
	node := Div(c)

	if len(node.Children) != 1 {
		t.Fatalf("Children len = %d, want 1", len(node.Children))
	}
	child := node.Children[0]
	if child.Kind != KindComponent || child.Comp != c {
		t.Errorf("child = %v, want wrapped component", child.Kind)
	}
}

func TestPortal(t *testing.T) {
	host := memdom.New().CreateElement("div")
	node := Portal(host, Span("x"))

	if node.Kind != KindPortal {
		t.Errorf("Kind = %v, want KindPortal", node.Kind)
	}
	if node.Host != host {
		t.Error("Host not set")
	}
	if len(node.Children) != 1 {
		t.Errorf("Children len = %d, want 1", len(node.Children))
	}
}

func TestCustomElement(t *testing.T) {
	node := CustomElement("x-chart", ID("c"))

	if node.Tag != "x-chart" {
		t.Errorf("Tag = %v, want x-chart", node.Tag)
	}
	if v, _ := node.Attrs.Get("id"); v != "c" {
		t.Errorf("id = %v, want c", v)
	}
}
