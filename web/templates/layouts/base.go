package layouts

import (
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"
)

const appName = "Specboard"

// htmxSrc is the pinned htmx build loaded by every page.
const htmxSrc = "https://unpkg.com/htmx.org@2.0.4"

// CalculateTitle handles the conditional logic for the page title.
func CalculateTitle(title string) string {
	if title != "" {
		return title + " - " + appName
	}
	return appName
}

// Base wraps page content in the shared HTML document.
func Base(title string, content ...g.Node) g.Node {
	return c.HTML5(c.HTML5Props{
		Title:    CalculateTitle(title),
		Language: "en",
		Head: []g.Node{
			h.Link(h.Rel("stylesheet"), h.Href("/static/app.css")),
			h.Script(h.Src(htmxSrc)),
			h.Script(h.Src("/static/app.js"), g.Attr("defer")),
		},
		Body: []g.Node{
			h.Header(
				h.H1(g.Text(appName)),
				h.P(g.Text("Module specifications served from JSON documents.")),
			),
			h.Main(content...),
		},
	})
}
