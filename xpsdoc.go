package xpsdoc

import (
	"io"

	"github.com/tsawler/xpsdoc/archive"
	"github.com/tsawler/xpsdoc/format"
	"github.com/tsawler/xpsdoc/model"
)

// Package is a loaded XPS or OpenXPS package.
type Package struct {
	// Format is the flavour declared by the fixed-representation
	// relationship.
	Format format.Format

	// Metadata holds the core properties, or nil when the package has
	// none or they could not be read.
	Metadata *model.Metadata

	// ThumbnailPart is the name of the thumbnail part, if any. Thumbnail
	// holds its raw bytes unless WithoutThumbnail was given.
	ThumbnailPart string
	Thumbnail     []byte

	// Warnings lists problems that were skipped over during the load.
	Warnings []Warning

	documents []*model.Document
}

// Documents returns the documents of the package in sequence order.
func (p *Package) Documents() []*model.Document {
	return p.documents
}

// DocumentCount returns the number of documents.
func (p *Package) DocumentCount() int {
	return len(p.documents)
}

// PageCount returns the total number of pages across all documents.
func (p *Package) PageCount() int {
	n := 0
	for _, d := range p.documents {
		n += d.PageCount()
	}
	return n
}

// Open loads the package stored in filename.
//
// Example:
//
//	pkg, err := xpsdoc.Open("document.xps")
func Open(filename string, opts ...Option) (*Package, error) {
	o := buildOptions(opts)

	store, err := archive.Open(filename, o.storeOptions()...)
	if err != nil {
		return nil, wrapError("", err)
	}
	defer store.Close()

	o.logger.Debug().Str("file", filename).Msg("Loading package")
	return load(store, o)
}

// OpenReader loads a package from an io.ReaderAt. The reader is not used
// after OpenReader returns.
func OpenReader(r io.ReaderAt, size int64, opts ...Option) (*Package, error) {
	o := buildOptions(opts)

	store, err := archive.NewStore(r, size, o.storeOptions()...)
	if err != nil {
		return nil, wrapError("", err)
	}
	defer store.Close()

	return load(store, o)
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	pkg := xpsdoc.Must(xpsdoc.Open("document.xps"))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) storeOptions() []archive.Option {
	res := []archive.Option{archive.WithLogger(o.logger)}
	if o.caseFolding {
		res = append(res, archive.WithCaseFolding())
	}
	return res
}
