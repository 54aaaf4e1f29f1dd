// Package render holds renderers that do not paint: a textual tree dump and
// node statistics. Both implement model.Renderer and descend into groups
// with model.RenderChildren.
package render
