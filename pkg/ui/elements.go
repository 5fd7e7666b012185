package ui

// El creates an element node. Arguments may be Attr values, *Node
// children, []*Node child slices, or plain strings (shorthand for text
// nodes). Nil children are skipped.
func El(tag string, args ...any) *Node {
	n := &Node{Kind: KindElement, Tag: tag}
	for _, arg := range args {
		switch v := arg.(type) {
		case Attr:
			if !v.IsEmpty() {
				n.Attrs = append(n.Attrs, v)
			}
		case *Node:
			if v != nil {
				n.Children = append(n.Children, v)
			}
		case []*Node:
			for _, c := range v {
				if c != nil {
					n.Children = append(n.Children, c)
				}
			}
		case string:
			n.Children = append(n.Children, Text(v))
		case nil:
			// Skip
		}
	}
	return n
}

// Document structure

func Html(args ...any) *Node  { return El("html", args...) }
func Head(args ...any) *Node  { return El("head", args...) }
func Body(args ...any) *Node  { return El("body", args...) }
func Title(args ...any) *Node { return El("title", args...) }
func Meta(args ...any) *Node  { return El("meta", args...) }
func Link(args ...any) *Node  { return El("link", args...) }

// Sections

func Header(args ...any) *Node  { return El("header", args...) }
func Footer(args ...any) *Node  { return El("footer", args...) }
func Main(args ...any) *Node    { return El("main", args...) }
func Nav(args ...any) *Node     { return El("nav", args...) }
func Section(args ...any) *Node { return El("section", args...) }
func Article(args ...any) *Node { return El("article", args...) }
func Aside(args ...any) *Node   { return El("aside", args...) }

// Headings and text

func H1(args ...any) *Node     { return El("h1", args...) }
func H2(args ...any) *Node     { return El("h2", args...) }
func H3(args ...any) *Node     { return El("h3", args...) }
func P(args ...any) *Node      { return El("p", args...) }
func Span(args ...any) *Node   { return El("span", args...) }
func Div(args ...any) *Node    { return El("div", args...) }
func Strong(args ...any) *Node { return El("strong", args...) }
func Em(args ...any) *Node     { return El("em", args...) }
func Pre(args ...any) *Node    { return El("pre", args...) }
func Code(args ...any) *Node   { return El("code", args...) }

// Lists

func Ul(args ...any) *Node { return El("ul", args...) }
func Ol(args ...any) *Node { return El("ol", args...) }
func Li(args ...any) *Node { return El("li", args...) }

// Interactive and media

func A(args ...any) *Node      { return El("a", args...) }
func Button(args ...any) *Node { return El("button", args...) }
func Img(args ...any) *Node    { return El("img", args...) }
func Script(args ...any) *Node { return El("script", args...) }
func Style(args ...any) *Node  { return El("style", args...) }

// Common attributes

func Class(value string) Attr   { return Attr{Key: "class", Value: value} }
func ID(value string) Attr      { return Attr{Key: "id", Value: value} }
func Href(value string) Attr    { return Attr{Key: "href", Value: value} }
func Src(value string) Attr     { return Attr{Key: "src", Value: value} }
func Alt(value string) Attr     { return Attr{Key: "alt", Value: value} }
func Rel(value string) Attr     { return Attr{Key: "rel", Value: value} }
func Type(value string) Attr    { return Attr{Key: "type", Value: value} }
func Name(value string) Attr    { return Attr{Key: "name", Value: value} }
func Content(value string) Attr { return Attr{Key: "content", Value: value} }
func Lang(value string) Attr    { return Attr{Key: "lang", Value: value} }
func Charset(value string) Attr { return Attr{Key: "charset", Value: value} }
func DataAttr(suffix, value string) Attr {
	return Attr{Key: "data-" + suffix, Value: value}
}

// voidElements are elements that never have closing tags.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// IsVoidElement reports whether tag is a void (self-closing) element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}
