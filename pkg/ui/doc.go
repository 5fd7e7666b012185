// Package ui provides the node tree and HTML renderer used by Atrium
// pages. It is a deliberately small view layer: nodes are built with
// element constructors, composed into a tree, and serialized to HTML on
// the server. There is no diffing, no hydration, and no client runtime.
//
//	node := ui.Div(ui.Class("hero"),
//	    ui.H1(ui.Text("Ship faster")),
//	    ui.P(ui.Text("A toolkit for landing pages and app shells.")),
//	)
//	html, err := ui.NewRenderer(ui.RendererConfig{}).RenderToString(node)
//
// Text content and attribute values are escaped during rendering. Raw
// inserts unescaped HTML and must only be used with trusted input.
package ui
