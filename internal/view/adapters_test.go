package view

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func TestAdaptGomponentToTempl(t *testing.T) {
	component := AdaptGomponentToTempl(h.Div(h.Class("panel"), g.Text("hello")))

	var buf bytes.Buffer
	require.NoError(t, component.Render(context.Background(), &buf))
	assert.Equal(t, `<div class="panel">hello</div>`, buf.String())
}
