// Package xpsdoc decodes XPS and OpenXPS documents into an in-memory model
// that any rendering backend can consume.
//
// Basic usage:
//
//	pkg, err := xpsdoc.Open("report.xps")
//	if err != nil {
//	    // handle error
//	}
//	for _, doc := range pkg.Documents() {
//	    for _, page := range doc.Pages {
//	        w, h := page.Size()
//	        fmt.Printf("page %d: %gx%g\n", page.Number, w, h)
//	        page.Render(myRenderer)
//	    }
//	}
//
// With options:
//
//	pkg, err := xpsdoc.Open("report.oxps",
//	    xpsdoc.WithLogger(logger),
//	    xpsdoc.WithCaseFolding(),
//	)
//
// A load is a single eager pass over the package: every document, outline
// and page is decoded before Open returns, and the container is closed. The
// render tree of a page is reached through page.Render with a
// model.Renderer; the render package has two ready-made renderers.
//
// Failures are reported as *Error values whose Kind tells I/O, text
// decoding, container, markup and missing-brush failures apart. Problems
// that do not stop the load are collected in Package.Warnings.
package xpsdoc
