package ui

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty enables pretty-printed HTML output with indentation.
	// Should only be used in development as it increases output size.
	Pretty bool

	// Indent is the string used for each indentation level in pretty mode.
	// Defaults to two spaces if not specified.
	Indent string
}

// Renderer serializes node trees to HTML.
type Renderer struct {
	config RendererConfig
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// RenderToString renders a node tree to a complete HTML string.
func (r *Renderer) RenderToString(node *Node) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderDocument renders a node tree prefixed with the HTML5 doctype.
func (r *Renderer) RenderDocument(node *Node) (string, error) {
	html, err := r.RenderToString(node)
	if err != nil {
		return "", err
	}
	return "<!DOCTYPE html>\n" + html, nil
}

// RenderToWriter streams a node tree to the given writer.
func (r *Renderer) RenderToWriter(w io.Writer, node *Node) error {
	return r.renderNode(w, node, 0)
}

// renderNode dispatches rendering based on node kind.
func (r *Renderer) renderNode(w io.Writer, node *Node, depth int) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case KindElement:
		return r.renderElement(w, node, depth)
	case KindText:
		_, err := io.WriteString(w, escapeHTML(node.Text))
		return err
	case KindFragment:
		for _, child := range node.Children {
			if err := r.renderNode(w, child, depth); err != nil {
				return err
			}
		}
		return nil
	case KindRaw:
		_, err := io.WriteString(w, node.Text)
		return err
	default:
		return fmt.Errorf("unknown node kind: %d", node.Kind)
	}
}

// renderElement renders an HTML element with its attributes and children.
func (r *Renderer) renderElement(w io.Writer, node *Node, depth int) error {
	if node.Tag == "" {
		return fmt.Errorf("element node with empty tag")
	}

	if r.config.Pretty && depth > 0 {
		if err := r.writeIndent(w, depth); err != nil {
			return err
		}
	}

	if _, err := io.WriteString(w, "<"+node.Tag); err != nil {
		return err
	}

	for _, attr := range node.Attrs {
		if attr.IsEmpty() {
			continue
		}
		if _, err := fmt.Fprintf(w, ` %s="%s"`, attr.Key, escapeAttr(attr.Value)); err != nil {
			return err
		}
	}

	if IsVoidElement(node.Tag) {
		if _, err := io.WriteString(w, ">"); err != nil {
			return err
		}
		if r.config.Pretty {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		return nil
	}

	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}
	if r.config.Pretty && len(node.Children) > 0 {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}

	for _, child := range node.Children {
		if err := r.renderNode(w, child, depth+1); err != nil {
			return err
		}
		if r.config.Pretty && child.Kind == KindText {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
	}

	if r.config.Pretty && len(node.Children) > 0 {
		if err := r.writeIndent(w, depth); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</"+node.Tag+">")
	if err != nil {
		return err
	}
	if r.config.Pretty {
		_, err = io.WriteString(w, "\n")
	}
	return err
}

func (r *Renderer) writeIndent(w io.Writer, depth int) error {
	_, err := io.WriteString(w, strings.Repeat(r.config.Indent, depth))
	return err
}
