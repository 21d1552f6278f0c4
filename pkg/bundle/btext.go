package bundle

import (
	"log/slog"

	"github.com/loom-dev/loom/pkg/dom"
	"github.com/loom-dev/loom/pkg/vdom"
)

// bText mirrors a text virtual node and owns its native text handle.
type bText struct {
	handle dom.Text
	text   string
}

func (b *bText) key() string { return "" }

func (b *bText) firstNode() dom.Node { return b.handle }

func (b *bText) detach(t *Tree, parent dom.Element, parentRemoved bool) {
	if parentRemoved {
		return
	}
	if err := parent.RemoveChild(b.handle); err != nil {
		t.logger.Warn("text node not found to remove", slog.Any("error", err))
	}
	t.noteRemoved()
}

func (b *bText) shift(t *Tree, parent dom.Element, slot Slot) Slot {
	slot.insert(parent, b.handle)
	t.noteMoved()
	return Before(b.handle)
}

func (t *Tree) attachText(v *vdom.VNode, parent dom.Element, slot Slot) (Slot, *bText) {
	h := t.doc.CreateText(v.Text)
	slot.insert(parent, h)
	t.noteCreated()
	return Before(h), &bText{handle: h, text: v.Text}
}

func (t *Tree) patchText(v *vdom.VNode, b *bText) Slot {
	if b.text != v.Text {
		b.handle.SetData(v.Text)
		b.text = v.Text
	}
	return Before(b.handle)
}
