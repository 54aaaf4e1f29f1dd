// Package markup decodes the XML parts of an XPS package.
//
// A [Decoder] turns the text of a part into intermediate records
// (document sequence, page stubs, outline, core properties) or, for
// FixedPage parts, into a render tree built from [model] nodes.
//
// Decoding is permissive. Elements in the XPS 1.0 namespace and in the
// OpenXPS namespace are treated as the same vocabulary; unknown elements
// are skipped; missing or malformed attributes resolve to defaults or are
// left unset. Only two conditions abort a part:
//
//   - the part is not well-formed XML ([ErrMalformed])
//   - a Fill, Stroke or OpacityMask property element holds no brush
//     ([ErrMissingBrush])
//
// When a property is given both as an attribute and as a property element
// (Path.Fill, Canvas.RenderTransform, ...) the attribute wins and the
// element is not decoded.
package markup
