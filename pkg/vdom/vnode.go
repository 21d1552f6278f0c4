package vdom

import "github.com/loom-dev/loom/pkg/dom"

// VKind is the node type discriminator.
type VKind uint8

const (
	KindTag       VKind = iota // <div>, <input>, etc.
	KindText                   // Plain text node
	KindList                   // Ordered child collection without wrapper
	KindComponent              // Nested component
	KindPortal                 // Subtree rendered into another host element
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindTag:
		return "Tag"
	case KindText:
		return "Text"
	case KindList:
		return "List"
	case KindComponent:
		return "Component"
	case KindPortal:
		return "Portal"
	default:
		return "Unknown"
	}
}

// TagKind is the tag sub-kind discriminator. Input and textarea
// elements carry live value semantics and are patched differently from
// all other tags.
type TagKind uint8

const (
	TagOther    TagKind = iota // Any tag without special value handling
	TagInput                   // <input>
	TagTextarea                // <textarea>
)

// String returns the string representation of the TagKind.
func (k TagKind) String() string {
	switch k {
	case TagOther:
		return "Other"
	case TagInput:
		return "Input"
	case TagTextarea:
		return "Textarea"
	default:
		return "Unknown"
	}
}

// VNode is the virtual node. It is immutable once built and holds no
// live resources.
type VNode struct {
	Kind      VKind        // Node type
	Tag       string       // Tag name (KindTag, lowercase)
	TagKind   TagKind      // Tag sub-kind (KindTag)
	Attrs     Attrs        // Ordered unique-key attribute list (KindTag)
	Listeners Listeners    // Immutable listener set (KindTag)
	Key       string       // Reconciliation key
	Ref       *dom.NodeRef // Optional external ref sink (KindTag)
	Text      string       // Content (KindText)
	Children  []*VNode     // Child nodes (plain tags and KindList)
	Value     *string      // Controlled value (TagInput, TagTextarea)
	Checked   *bool        // Controlled checked state (TagInput)
	Comp      Component    // Component instance (KindComponent)
	Host      dom.Element  // Host element (KindPortal)
}

// Component is anything that can render to a VNode.
type Component interface {
	Render() *VNode
}

// FuncComponent wraps a render function.
type FuncComponent struct {
	render func() *VNode
}

// Render implements Component.
func (f *FuncComponent) Render() *VNode {
	return f.render()
}

// Func creates a component from a render function.
func Func(render func() *VNode) Component {
	return &FuncComponent{render: render}
}
