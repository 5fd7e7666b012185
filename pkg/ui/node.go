package ui

import "fmt"

// Kind is the node type discriminator.
type Kind uint8

const (
	KindElement  Kind = iota // <div>, <button>, etc.
	KindText                 // Plain text node
	KindFragment             // Grouping without wrapper
	KindRaw                  // Raw HTML (dangerous)
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindRaw:
		return "Raw"
	default:
		return "Unknown"
	}
}

// Node is a node in the view tree.
type Node struct {
	Kind     Kind    // Node type
	Tag      string  // Element tag name (e.g., "div")
	Attrs    []Attr  // Attributes in declaration order
	Children []*Node // Child nodes
	Text     string  // For KindText and KindRaw
}

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value string
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// Text creates a text node. Content is escaped during rendering.
func Text(content string) *Node {
	return &Node{Kind: KindText, Text: content}
}

// Textf creates a text node with fmt.Sprintf formatting.
func Textf(format string, args ...any) *Node {
	return &Node{Kind: KindText, Text: fmt.Sprintf(format, args...)}
}

// Raw creates a raw HTML node. The content is NOT escaped.
func Raw(html string) *Node {
	return &Node{Kind: KindRaw, Text: html}
}

// Fragment groups children without an enclosing element.
func Fragment(children ...*Node) *Node {
	return &Node{Kind: KindFragment, Children: children}
}

// Nothing returns an empty fragment, for intentionally blank output.
func Nothing() *Node {
	return &Node{Kind: KindFragment}
}

// If returns node when the condition holds, otherwise an empty fragment.
func If(condition bool, node *Node) *Node {
	if condition {
		return node
	}
	return Nothing()
}

// IfElse returns ifTrue when the condition holds, otherwise ifFalse.
func IfElse(condition bool, ifTrue, ifFalse *Node) *Node {
	if condition {
		return ifTrue
	}
	return ifFalse
}

// When lazily builds a node only when the condition holds.
func When(condition bool, fn func() *Node) *Node {
	if condition {
		return fn()
	}
	return Nothing()
}

// Map renders each item of a slice to a node.
func Map[T any](items []T, fn func(item T, index int) *Node) []*Node {
	nodes := make([]*Node, 0, len(items))
	for i, item := range items {
		nodes = append(nodes, fn(item, i))
	}
	return nodes
}
