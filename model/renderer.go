package model

// Renderer consumes a render tree. Render dispatches the root's children to
// the per-kind methods; RenderGroup implementations decide whether and when
// to visit the group's children, normally by calling RenderChildren. A
// RenderGroup that does not recurse skips the whole subtree.
type Renderer interface {
	RenderGroup(g *Group) error
	RenderTextRun(t *TextRun) error
	RenderPath(p *Path) error
}

// Render walks the top level of a render tree.
func Render(r Renderer, root *Root) error {
	if root == nil {
		return nil
	}
	return RenderChildren(r, root.children)
}

// RenderChildren dispatches each node to r, stopping at the first error.
func RenderChildren(r Renderer, children []Child) error {
	for _, c := range children {
		var err error
		switch n := c.(type) {
		case *Group:
			err = r.RenderGroup(n)
		case *Path:
			err = r.RenderPath(n)
		case *TextRun:
			err = r.RenderTextRun(n)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
