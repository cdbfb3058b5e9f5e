package components

import (
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// TabsID is the element id shared by the tab placeholder and the fragment
// that replaces it.
const TabsID = "tabs"

// Tab is a single module tab.
type Tab struct {
	Module  string
	Label   string
	Enabled bool
}

// TabsPlaceholder asks htmx to fetch the tab strip once the page has loaded.
func TabsPlaceholder(src string) g.Node {
	return h.Nav(
		h.ID(TabsID),
		h.Class("tabs"),
		hx.Get(src),
		hx.Trigger("load"),
		hx.Swap("outerHTML"),
		h.Span(g.Text("Checking modules...")),
	)
}

// Tabs renders the tab strip. Disabled tabs stay visible but cannot be selected.
func Tabs(tabs []Tab) g.Node {
	return h.Nav(
		h.ID(TabsID),
		h.Class("tabs"),
		g.Map(tabs, func(t Tab) g.Node {
			class := "tab enabled"
			if !t.Enabled {
				class = "tab disabled"
			}
			return h.Button(
				h.Type("button"),
				h.Class(class),
				g.Attr("data-module", t.Module),
				g.If(!t.Enabled, g.Attr("disabled")),
				g.Text(t.Label),
			)
		}),
	)
}
