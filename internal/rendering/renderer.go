package rendering

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// UniversalRenderer renders templ components and gomponents nodes. It
// implements echo.Renderer, so handlers call c.Render(status, "", component);
// the template name is ignored.
type UniversalRenderer struct{}

// NewUniversalRenderer creates a new UniversalRenderer instance.
func NewUniversalRenderer() *UniversalRenderer {
	return &UniversalRenderer{}
}

// gomponentNode matches gomponents.Node without importing it here.
type gomponentNode interface {
	Render(w io.Writer) error
}

func (r *UniversalRenderer) render(ctx context.Context, component any, w io.Writer) error {
	switch c := component.(type) {
	case templ.Component:
		return c.Render(ctx, w)
	case gomponentNode:
		return c.Render(w)
	default:
		return fmt.Errorf("unsupported component type: %T", component)
	}
}

// RenderComponent renders a component to a byte slice.
func (r *UniversalRenderer) RenderComponent(ctx context.Context, component any) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.render(ctx, component, &buf); err != nil {
		return nil, fmt.Errorf("failed to render component: %w", err)
	}
	return buf.Bytes(), nil
}

// Render implements the echo.Renderer interface.
//
// Echo hands Render a buffer and only writes the status line once Render
// succeeds, so a failing component never produces a partial 200 page; the
// error reaches the HTTP error handler as a 500.
func (r *UniversalRenderer) Render(w io.Writer, _ string, data any, c echo.Context) error {
	if err := r.render(c.Request().Context(), data, w); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to render page").SetInternal(err)
	}
	return nil
}
