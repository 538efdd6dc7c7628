package export

import (
	"bytes"
	"strings"
	"testing"

	"marketai/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTitleAndFilename(t *testing.T) {
	assert.Equal(t, "MarketAI Export - CAMPAIGN (ID: 12)", Title(model.ModuleCampaign, 12))
	assert.Equal(t, "marketai_lead_7.pdf", Filename(model.ModuleLead, 7))
}

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap("", 10))
	assert.Nil(t, Wrap("   \t ", 10))
	assert.Equal(t, []string{"one two", "three"}, Wrap("one two three", 8))
	assert.Equal(t, []string{"a    b"}, Wrap("a    b", 10))
	assert.Equal(t, []string{"abcdefghij", "klm"}, Wrap("abcdefghijklm", 10))
	assert.Equal(t, []string{"ab cdefghi", "jklmnopqrs", "t"}, Wrap("ab cdefghijklmnopqrst", 10))
}

func TestWrap_KeepsInnerSpacing(t *testing.T) {
	assert.Equal(t, []string{"a    b  c"}, Wrap("a    b\tc", 20))
	assert.Equal(t, []string{"    indented"}, Wrap("    indented", 20))
	assert.Equal(t, []string{"Name:   Acme", "Score:  82"}, Wrap("Name:   Acme    Score:  82", 13))
	assert.Equal(t, []string{"aaaa", "bbbb"}, Wrap("aaaa    bbbb", 6))
	assert.Equal(t, []string{"x y"}, Wrap("x y   ", 10))
}

func TestWrap_RespectsWidth(t *testing.T) {
	line := strings.Repeat("lorem ipsum dolor sit amet ", 40)
	for _, w := range Wrap(line, WrapWidth) {
		assert.LessOrEqual(t, len([]rune(w)), WrapWidth)
	}
}

func TestWrap_CountsRunes(t *testing.T) {
	got := Wrap(strings.Repeat("é", 12), 10)
	assert.Equal(t, []string{strings.Repeat("é", 10), "éé"}, got)
}

func TestRenderPDF_Deterministic(t *testing.T) {
	content := strings.Repeat("Campaign Idea: launch week with daily posts and a giveaway.\n", 120)
	a, err := RenderPDF("MarketAI Export - CAMPAIGN (ID: 1)", content)
	require.NoError(t, err)
	b, err := RenderPDF("MarketAI Export - CAMPAIGN (ID: 1)", content)
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(a, []byte("%PDF-")))
	assert.Equal(t, a, b)
}

func TestRenderPDF_Paginates(t *testing.T) {
	short, err := RenderPDF("t", "one line")
	require.NoError(t, err)
	long, err := RenderPDF("t", strings.Repeat("line\n", 200))
	require.NoError(t, err)

	assert.Equal(t, 1, bytes.Count(short, []byte("/Type /Page\n")))
	assert.Greater(t, bytes.Count(long, []byte("/Type /Page\n")), 1)
}

func TestRenderPDF_EmptyContent(t *testing.T) {
	out, err := RenderPDF("MarketAI Export - PITCH (ID: 3)", "")
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestRenderPDF_DifferentInputDiffers(t *testing.T) {
	a, err := RenderPDF("t", "alpha")
	require.NoError(t, err)
	b, err := RenderPDF("t", "beta")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
