package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func str(s string) *string {
	return &s
}

func TestOutlineEntryDepth(t *testing.T) {
	assert.Equal(t, 1, OutlineEntry{}.Depth(), "missing level")

	tests := map[string]int{
		"":    1,
		"1":   1,
		"3":   3,
		" 2 ": 2,
		"0":   1,
		"-4":  1,
		"two": 1,
	}
	for level, want := range tests {
		assert.Equal(t, want, OutlineEntry{Level: str(level)}.Depth(), "level %q", level)
	}
}

func TestOutlineTree(t *testing.T) {
	outline := &Outline{Entries: []OutlineEntry{
		{Level: str("1"), Description: str("Chapter 1")},
		{Level: str("2"), Description: str("1.1")},
		{Level: str("3"), Description: str("1.1.1")},
		{Level: str("2"), Description: str("1.2")},
		{Level: str("1"), Description: str("Chapter 2")},
		{Description: str("Appendix")},
		{Level: str("3"), Description: str("deep under appendix")},
	}}

	roots := outline.Tree()
	require.Len(t, roots, 3)

	assert.Equal(t, str("Chapter 1"), roots[0].Entry.Description)
	require.Len(t, roots[0].Children, 2)
	assert.Equal(t, str("1.1"), roots[0].Children[0].Entry.Description)
	require.Len(t, roots[0].Children[0].Children, 1)
	assert.Equal(t, str("1.1.1"), roots[0].Children[0].Children[0].Entry.Description)
	assert.Equal(t, str("1.2"), roots[0].Children[1].Entry.Description)

	assert.Equal(t, str("Chapter 2"), roots[1].Entry.Description)
	assert.Empty(t, roots[1].Children)

	assert.Equal(t, str("Appendix"), roots[2].Entry.Description)
	require.Len(t, roots[2].Children, 1)

	// The flat list is left untouched.
	assert.Len(t, outline.Entries, 7)
}

func TestOutlineTree_Nil(t *testing.T) {
	var o *Outline
	assert.Nil(t, o.Tree())
}
