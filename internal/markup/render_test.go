package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	t.Run("renders basic markdown", func(t *testing.T) {
		html, err := Render("# Title\n\nSome **bold** text.")
		require.NoError(t, err)
		assert.Contains(t, html, "<h1>Title</h1>")
		assert.Contains(t, html, "<strong>bold</strong>")
	})

	t.Run("escapes raw html", func(t *testing.T) {
		html, err := Render(`hello <script>alert("xss")</script>`)
		require.NoError(t, err)
		assert.NotContains(t, html, "<script>")
		assert.Contains(t, html, "hello")
	})

	t.Run("strips event handlers from links", func(t *testing.T) {
		html, err := Render(`[click](javascript:alert(1))`)
		require.NoError(t, err)
		assert.NotContains(t, html, "javascript:")
	})

	t.Run("keeps safe links", func(t *testing.T) {
		html, err := Render(`[docs](https://example.com)`)
		require.NoError(t, err)
		assert.Contains(t, html, `href="https://example.com"`)
	})
}
