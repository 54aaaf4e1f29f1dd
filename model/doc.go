// Package model provides the in-memory representation of a decoded XPS
// package.
//
// # Document Structure
//
// A [Document] holds ordered [Page] values and an optional [Outline]:
//
//	doc := model.NewDocument()
//	doc.AddPage(model.NewPage(816, 1056, root))
//
// # Render Tree
//
// A page's visual content is a tree rooted at [Root]. Nodes come in two
// categories:
//
//   - [Branch] nodes accept children: [Root] and [Group]
//   - leaf nodes do not: [Path] and [TextRun]
//
// Every node that can be nested implements [Child]. The tree of a page is
// not exposed directly; it is visited through a [Renderer]:
//
//	err := page.Render(myRenderer)
//
// [Render] visits only the top level. A renderer's RenderGroup decides how to
// descend, usually with [RenderChildren].
//
// # Visual Properties
//
//   - [Matrix] - 2D affine transform (xx, yx, xy, yy, x0, y0)
//   - [Brush] - solid color, gradients, image and visual brushes
//   - [Geometry] - path data in abbreviated syntax
//   - [Color] - sRGB color with alpha
//
// # Outline
//
// [Outline] keeps the flat, leveled list found in the package. [Outline.Tree]
// rebuilds the nesting for consumers that want it.
package model
