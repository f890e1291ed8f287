package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTMLSanitized_RendersBasicMarkdown(t *testing.T) {
	svc := NewService()

	out, err := svc.ToHTMLSanitized("# Stage 1\n\n- **intake**\n- exhaust")
	require.NoError(t, err)
	assert.Contains(t, out, "Stage 1")
	assert.Contains(t, out, "<strong>intake</strong>")
	assert.Contains(t, out, "<li>")
}

func TestToHTMLSanitized_StripsScripts(t *testing.T) {
	svc := NewService()

	out, err := svc.ToHTMLSanitized(`hello <script>alert("x")</script> world`)
	require.NoError(t, err)
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "hello")
}
