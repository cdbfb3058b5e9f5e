package pages

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/nfrund/specboard/web/templates/components"
)

// ContentID is the element the browser script fills with module data.
const ContentID = "module-content"

// Home is the landing page body: the tab strip, loaded from tabsSrc, and an
// empty content panel.
func Home(tabsSrc string) g.Node {
	return g.Group{
		components.TabsPlaceholder(tabsSrc),
		h.Section(
			h.ID(ContentID),
			h.P(h.Class("empty"), g.Text("Select a module to view its specification.")),
		),
	}
}
