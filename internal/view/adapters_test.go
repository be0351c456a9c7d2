package view_test

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/a-h/templ"
	"github.com/nfrund/hive/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func TestAdapters(t *testing.T) {
	node := h.P(g.Text("売上"))

	var buf bytes.Buffer
	require.NoError(t, view.AdaptGomponentToTempl(node).Render(context.Background(), &buf))
	assert.Equal(t, "<p>売上</p>", buf.String())

	type ctxKey struct{}
	ctx := context.WithValue(context.Background(), ctxKey{}, "from-request")
	component := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, ctx.Value(ctxKey{}).(string))
		return err
	})

	buf.Reset()
	require.NoError(t, h.Div(view.AdaptTemplToGomponent(ctx, component)).Render(&buf))
	assert.Equal(t, "<div>from-request</div>", buf.String())
}

func TestAdaptGomponentToTempl_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := view.AdaptGomponentToTempl(h.P()).Render(ctx, io.Discard)
	assert.ErrorIs(t, err, context.Canceled)
}
