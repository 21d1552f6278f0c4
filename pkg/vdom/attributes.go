package vdom

import (
	"fmt"
	"strconv"
	"strings"
)

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value string
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// Attrs is an ordered attribute list with unique keys. Storage order
// carries no rendering meaning; it only makes construction and
// serialization deterministic.
type Attrs []Attr

// Get returns the value for key and whether it is present.
func (a Attrs) Get(key string) (string, bool) {
	for _, at := range a {
		if at.Key == key {
			return at.Value, true
		}
	}
	return "", false
}

// Set replaces the value for key, or appends the pair if absent.
// It returns the updated list.
func (a Attrs) Set(key, value string) Attrs {
	for i, at := range a {
		if at.Key == key {
			a[i].Value = value
			return a
		}
	}
	return append(a, Attr{Key: key, Value: value})
}

// Without returns the list with key removed.
func (a Attrs) Without(key string) Attrs {
	for i, at := range a {
		if at.Key == key {
			return append(a[:i:i], a[i+1:]...)
		}
	}
	return a
}

// attr creates an Attr with the given key and value.
func attr(key string, value any) Attr {
	return Attr{Key: key, Value: attrString(value)}
}

// attrString converts an attribute value to its string form.
func attrString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case bool:
		if val {
			return "true"
		}
		return "false"
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Identity attributes

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) Attr { return attr("class", strings.Join(classes, " ")) }

// StyleAttr sets the style attribute (named to avoid conflict with Style element).
func StyleAttr(style string) Attr { return attr("style", style) }

// Data creates a data-* attribute.
// Example: Data("id", "123") → data-id="123"
func Data(key, value string) Attr { return attr("data-"+key, value) }

// TitleAttr sets the title attribute (named to avoid conflict with Title element).
func TitleAttr(title string) Attr { return attr("title", title) }

// Lang sets the lang attribute.
func Lang(lang string) Attr { return attr("lang", lang) }

// Xmlns sets the xmlns attribute, overriding namespace selection for
// the element it is applied to.
func Xmlns(ns string) Attr { return attr("xmlns", ns) }

// Accessibility attributes

// Role sets the role attribute.
func Role(role string) Attr { return attr("role", role) }

// AriaLabel sets the aria-label attribute.
func AriaLabel(label string) Attr { return attr("aria-label", label) }

// AriaHidden sets the aria-hidden attribute.
func AriaHidden(hidden bool) Attr { return attr("aria-hidden", hidden) }

// AriaExpanded sets the aria-expanded attribute.
func AriaExpanded(expanded bool) Attr { return attr("aria-expanded", expanded) }

// AriaControls sets the aria-controls attribute.
func AriaControls(id string) Attr { return attr("aria-controls", id) }

// AriaLive sets the aria-live attribute.
func AriaLive(mode string) Attr { return attr("aria-live", mode) }

// TabIndex sets the tabindex attribute.
func TabIndex(index int) Attr { return attr("tabindex", index) }

// Link attributes

// Href sets the href attribute.
func Href(url string) Attr { return attr("href", url) }

// Src sets the src attribute.
func Src(url string) Attr { return attr("src", url) }

// Alt sets the alt attribute.
func Alt(text string) Attr { return attr("alt", text) }

// Target sets the target attribute.
func Target(target string) Attr { return attr("target", target) }

// Rel sets the rel attribute.
func Rel(rel string) Attr { return attr("rel", rel) }

// Form attributes

// Type sets the type attribute.
func Type(t string) Attr { return attr("type", t) }

// Name sets the name attribute.
func Name(name string) Attr { return attr("name", name) }

// Value sets the value. On Input and Textarea this becomes the
// controlled live value; on other elements it is an ordinary attribute.
func Value(value string) Attr { return attr("value", value) }

// Checked sets the checked state. On Input this becomes the controlled
// live checked state; on other elements it is an ordinary attribute.
func Checked(checked bool) Attr { return attr("checked", checked) }

// Placeholder sets the placeholder attribute.
func Placeholder(text string) Attr { return attr("placeholder", text) }

// Disabled sets the disabled attribute.
func Disabled() Attr { return attr("disabled", "disabled") }

// Required sets the required attribute.
func Required() Attr { return attr("required", "required") }

// ReadOnly sets the readonly attribute.
func ReadOnly() Attr { return attr("readonly", "readonly") }

// Multiple sets the multiple attribute.
func Multiple() Attr { return attr("multiple", "multiple") }

// Min sets the min attribute.
func Min(v any) Attr { return attr("min", v) }

// Max sets the max attribute.
func Max(v any) Attr { return attr("max", v) }

// Step sets the step attribute.
func Step(v any) Attr { return attr("step", v) }

// Rows sets the rows attribute.
func Rows(n int) Attr { return attr("rows", n) }

// Cols sets the cols attribute.
func Cols(n int) Attr { return attr("cols", n) }

// For sets the for attribute.
func For(id string) Attr { return attr("for", id) }

// Visibility and behavior attributes

// Hidden sets the hidden attribute.
func Hidden() Attr { return attr("hidden", true) }

// ContentEditable sets the contenteditable attribute.
func ContentEditable(editable bool) Attr { return attr("contenteditable", editable) }

// Draggable sets the draggable attribute.
func Draggable() Attr { return attr("draggable", "true") }

// Spellcheck sets the spellcheck attribute.
func Spellcheck(check bool) Attr { return attr("spellcheck", check) }

// CustomAttr creates an attribute with an arbitrary key.
func CustomAttr(key string, value any) Attr { return attr(key, value) }
