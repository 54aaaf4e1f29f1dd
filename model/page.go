package model

// Page represents a single fixed page of a document
type Page struct {
	Number int     // 1-indexed page number
	Width  float64 // Page width in 1/96 inch
	Height float64 // Page height in 1/96 inch
	Name   *string // nil when the FixedPage has no Name
	Lang   string
	Links  []string // Named link targets on the page

	ContentBox *Rect
	BleedBox   *Rect

	root *Root
}

// NewPage creates a new page with given dimensions and render tree
func NewPage(width, height float64, root *Root) *Page {
	if root == nil {
		root = NewRoot()
	}
	return &Page{
		Width:  width,
		Height: height,
		root:   root,
	}
}

// Size returns the page width and height.
func (p *Page) Size() (float64, float64) {
	return p.Width, p.Height
}

// Render passes the page content to r.
func (p *Page) Render(r Renderer) error {
	return Render(r, p.root)
}
