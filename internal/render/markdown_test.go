package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdown(t *testing.T) {
	out, err := Markdown("## 추천 복지 혜택\n- **기초연금**\n- 노인장기요양보험")
	require.NoError(t, err)
	assert.Contains(t, out, "<h2")
	assert.Contains(t, out, "<strong>기초연금</strong>")
	assert.Contains(t, out, "<li>노인장기요양보험</li>")
}

func TestMarkdown_StripsScripts(t *testing.T) {
	out, err := Markdown("hello <script>alert(1)</script>")
	require.NoError(t, err)
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "hello")
}
