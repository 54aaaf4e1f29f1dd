package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder logs the nodes it visits. When recurse is false RenderGroup does
// not descend.
type recorder struct {
	recurse bool
	visited []string
	failOn  string
}

func (r *recorder) RenderGroup(g *Group) error {
	r.visited = append(r.visited, "group:"+g.Name)
	if r.failOn == g.Name {
		return errors.New("boom")
	}
	if r.recurse {
		return RenderChildren(r, g.Children())
	}
	return nil
}

func (r *recorder) RenderTextRun(t *TextRun) error {
	r.visited = append(r.visited, "text:"+t.Name)
	return nil
}

func (r *recorder) RenderPath(p *Path) error {
	r.visited = append(r.visited, "path:"+p.Name)
	return nil
}

func sampleTree() *Root {
	inner := &Group{Name: "inner"}
	inner.Append(&TextRun{Name: "t1"})

	outer := &Group{Name: "outer"}
	outer.Append(&Path{Name: "p1"})
	outer.Append(inner)

	root := NewRoot()
	root.Append(outer)
	root.Append(&Path{Name: "p2"})
	return root
}

func TestBranchAppend(t *testing.T) {
	var branches = []Branch{NewRoot(), &Group{}}
	for _, b := range branches {
		b.Append(&Path{})
		b.Append(&Group{})
		assert.Len(t, b.Children(), 2)
	}
}

func TestRender_Recursive(t *testing.T) {
	r := &recorder{recurse: true}
	require.NoError(t, Render(r, sampleTree()))

	assert.Equal(t, []string{"group:outer", "path:p1", "group:inner", "text:t1", "path:p2"}, r.visited)
}

func TestRender_GroupWithoutRecursionSkipsSubtree(t *testing.T) {
	r := &recorder{recurse: false}
	require.NoError(t, Render(r, sampleTree()))

	assert.Equal(t, []string{"group:outer", "path:p2"}, r.visited)
}

func TestRender_StopsAtFirstError(t *testing.T) {
	r := &recorder{recurse: true, failOn: "inner"}
	err := Render(r, sampleTree())

	require.EqualError(t, err, "boom")
	assert.Equal(t, []string{"group:outer", "path:p1", "group:inner"}, r.visited)
}

func TestRender_NilRoot(t *testing.T) {
	assert.NoError(t, Render(&recorder{}, nil))
}

func TestPageRender(t *testing.T) {
	page := NewPage(100, 200, sampleTree())
	w, h := page.Size()
	assert.Equal(t, 100.0, w)
	assert.Equal(t, 200.0, h)

	r := &recorder{recurse: true}
	require.NoError(t, page.Render(r))
	assert.Len(t, r.visited, 5)

	empty := NewPage(0, 0, nil)
	r = &recorder{}
	require.NoError(t, empty.Render(r))
	assert.Empty(t, r.visited)
}

func TestDocumentPages(t *testing.T) {
	doc := NewDocument()
	p1 := NewPage(10, 10, nil)
	p1.Links = []string{"intro"}
	p2 := NewPage(10, 10, nil)
	p2.Links = []string{"chapter1", "fig1"}
	doc.AddPage(p1)
	doc.AddPage(p2)

	assert.Equal(t, 2, doc.PageCount())
	assert.Equal(t, 2, p2.Number)
	assert.Same(t, p1, doc.GetPage(1))
	assert.Nil(t, doc.GetPage(0))
	assert.Nil(t, doc.GetPage(3))
	assert.Same(t, p2, doc.FindLinkTarget("fig1"))
	assert.Nil(t, doc.FindLinkTarget("missing"))
}
