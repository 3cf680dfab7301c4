package diff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerator_Describe_Identical(t *testing.T) {
	gen := NewGenerator(false)
	change := gen.Describe("susan", "susan")

	assert.False(t, change.Changed())
	assert.Empty(t, change.Removed)
	assert.Empty(t, change.Inserted)
	assert.Equal(t, "susan", gen.Render(change))
}

func TestGenerator_Describe_Substitution(t *testing.T) {
	gen := NewGenerator(false)
	change := gen.Describe("agatha", "agaffa")

	assert.True(t, change.Changed())
	assert.Equal(t, "th", strings.Join(change.Removed, ""))
	assert.Equal(t, "ff", strings.Join(change.Inserted, ""))

	rendered := gen.Render(change)
	assert.Contains(t, rendered, "[-th-]")
	assert.Contains(t, rendered, "{+ff+}")
	assert.True(t, strings.HasPrefix(rendered, "aga"))
	assert.True(t, strings.HasSuffix(rendered, "a"))
}

func TestGenerator_Render_Color(t *testing.T) {
	gen := NewGenerator(true)
	rendered := gen.Render(gen.Describe("david", "tavit"))
	assert.Contains(t, rendered, "\x1b[31m")
	assert.Contains(t, rendered, "\x1b[32m")

	plain := NewGenerator(false).Render(NewGenerator(false).Describe("david", "tavit"))
	assert.NotContains(t, plain, "\x1b[")
}
