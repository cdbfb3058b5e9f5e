package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"maragu.dev/gomponents"
)

// gomponentComponent wraps a gomponents.Node to satisfy templ.Component, so
// gomponents pages travel through the same rendering pipeline as templ ones.
type gomponentComponent struct {
	node gomponents.Node
}

// Render implements templ.Component. Gomponents has no use for the context.
func (a *gomponentComponent) Render(_ context.Context, w io.Writer) error {
	return a.node.Render(w)
}

// AdaptGomponentToTempl converts a gomponents node into a templ.Component.
func AdaptGomponentToTempl(node gomponents.Node) templ.Component {
	return &gomponentComponent{node: node}
}
