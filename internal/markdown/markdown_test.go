package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender_Empty(t *testing.T) {
	t.Parallel()
	assert.Empty(t, Render("   \n", 40, ""))
}

func TestRender_KeepsText(t *testing.T) {
	t.Parallel()
	out := Render("# Ship\n\nwrite the **release** notes", 40, "notty")

	assert.Contains(t, out, "Ship")
	assert.Contains(t, out, "release")
}

func TestRender_UnknownStyleFallsBackToRaw(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "plain", Render("plain", 40, "no-such-style"))
}

func TestRender_CachesRenderers(t *testing.T) {
	t.Parallel()
	a, err := getRenderer("notty", 33)
	assert.NoError(t, err)
	b, err := getRenderer("notty", 33)
	assert.NoError(t, err)
	assert.Same(t, a, b)
}
