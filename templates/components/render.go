package components

import (
	"context"
	"io"
	"iter"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

// Component adapts a gomponents node to templ's component interface so
// handlers render every view the same way.
func Component(node g.Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return node.Render(w)
	})
}

// Each renders one node per element of seq, in order
func Each[T any](seq iter.Seq[T], render func(T) g.Node) g.Group {
	var nodes g.Group
	for item := range seq {
		nodes = append(nodes, render(item))
	}
	return nodes
}

// HX sets an htmx attribute, e.g. HX("post", "/contact") -> hx-post="/contact"
func HX(name, value string) g.Node {
	return g.Attr("hx-"+name, value)
}
