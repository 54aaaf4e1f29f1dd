package markup

import (
	"errors"

	"github.com/beevik/etree"
	"github.com/rs/zerolog"

	"github.com/tsawler/xpsdoc/internal/xmlutil"
)

// Decoding errors.
var (
	// ErrMalformed is returned for parts that are not well-formed XML.
	ErrMalformed = xmlutil.ErrMalformed

	// ErrMissingBrush is returned when a brush property element contains
	// none of the known brush elements.
	ErrMissingBrush = errors.New("markup: missing brush")
)

// PartReader gives the decoder access to other parts of the package. It is
// used for remote resource dictionaries.
type PartReader interface {
	ReadText(name string) (string, error)
}

// Decoder decodes XPS markup. A Decoder holds no per-part state and may be
// reused for every part of a package.
type Decoder struct {
	log   zerolog.Logger
	parts PartReader
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithLogger sets the logger used for skipped elements and attribute
// fallbacks.
func WithLogger(l zerolog.Logger) Option {
	return func(d *Decoder) {
		d.log = l
	}
}

// WithPartReader lets the decoder load remote resource dictionaries. Without
// one, remote dictionaries are skipped.
func WithPartReader(r PartReader) Option {
	return func(d *Decoder) {
		d.parts = r
	}
}

// NewDecoder creates a Decoder.
func NewDecoder(opts ...Option) *Decoder {
	d := &Decoder{
		log: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// root parses text and returns its root element.
func (d *Decoder) root(text string) (*etree.Element, error) {
	doc, err := xmlutil.ParseDocument(text)
	if err != nil {
		return nil, err
	}
	return doc.Root(), nil
}
