package xpsdoc

import (
	"github.com/rs/zerolog"

	"github.com/tsawler/xpsdoc/archive"
	"github.com/tsawler/xpsdoc/format"
	"github.com/tsawler/xpsdoc/markup"
	"github.com/tsawler/xpsdoc/model"
	"github.com/tsawler/xpsdoc/opc"
)

// loader performs one load: package relationships, then the document
// sequence, then every document and its pages, in that order.
type loader struct {
	store *archive.Store
	dec   *markup.Decoder
	opts  options
	log   zerolog.Logger
	pkg   *Package
}

func load(store *archive.Store, o options) (*Package, error) {
	l := &loader{
		store: store,
		opts:  o,
		log:   o.logger,
		pkg:   &Package{},
	}
	l.dec = markup.NewDecoder(
		markup.WithLogger(o.logger),
		markup.WithPartReader(store),
	)

	if err := l.run(); err != nil {
		return nil, err
	}
	return l.pkg, nil
}

func (l *loader) run() error {
	part := opc.PackageRelationshipsPart
	text, err := l.store.ReadText(part)
	if err != nil {
		return wrapError(part, err)
	}

	rels, err := opc.ParsePackageRelationships(text)
	if err != nil {
		return wrapError(part, err)
	}
	l.log.Debug().
		Str("fixed_representation", rels.FixedRepresentation).
		Str("core_properties", rels.CoreProperties).
		Str("thumbnail", rels.Thumbnail).
		Msg("Package relationships")

	l.pkg.Format = format.FromRelationshipType(rels.FixedRepresentationType)

	if rels.CoreProperties != "" {
		l.coreProperties(opc.ResolvePackage(rels.CoreProperties))
	}
	if rels.Thumbnail != "" {
		l.thumbnail(opc.ResolvePackage(rels.Thumbnail))
	}

	if rels.FixedRepresentation == "" {
		l.warn("", "package has no fixed representation", nil)
		return nil
	}
	return l.sequence(opc.ResolvePackage(rels.FixedRepresentation))
}

// coreProperties reads the optional metadata part. Failures are warnings.
func (l *loader) coreProperties(part string) {
	text, err := l.store.ReadText(part)
	if err != nil {
		l.warn(part, "skipping core properties", err)
		return
	}

	meta, err := l.dec.DecodeCoreProperties(text)
	if err != nil {
		l.warn(part, "skipping core properties", err)
		return
	}
	l.pkg.Metadata = meta
}

func (l *loader) thumbnail(part string) {
	l.pkg.ThumbnailPart = part
	if !l.opts.thumbnail {
		return
	}

	data, err := l.store.Read(part)
	if err != nil {
		l.warn(part, "skipping thumbnail", err)
		return
	}
	l.pkg.Thumbnail = data
}

func (l *loader) sequence(part string) error {
	text, err := l.store.ReadText(part)
	if err != nil {
		return wrapError(part, err)
	}

	seq, err := l.dec.DecodeSequence(text)
	if err != nil {
		return wrapError(part, err)
	}

	for _, ref := range seq.Documents {
		doc, err := l.document(opc.Resolve(part, ref))
		if err != nil {
			return err
		}
		l.pkg.documents = append(l.pkg.documents, doc)
	}
	return nil
}

func (l *loader) document(part string) (*model.Document, error) {
	l.log.Debug().Str("part", part).Msg("Loading document")
	doc := model.NewDocument()

	relsPart := opc.RelationshipsPart(part)
	text, err := l.store.ReadText(relsPart)
	if err != nil {
		return nil, wrapError(relsPart, err)
	}
	rels, err := opc.ParseDocumentRelationships(text)
	if err != nil {
		return nil, wrapError(relsPart, err)
	}

	if rels.Structure != "" {
		structPart := opc.Resolve(part, rels.Structure)
		text, err := l.store.ReadText(structPart)
		if err != nil {
			return nil, wrapError(structPart, err)
		}
		if doc.Outline, err = l.dec.DecodeStructure(text); err != nil {
			return nil, wrapError(structPart, err)
		}
	}

	text, err = l.store.ReadText(part)
	if err != nil {
		return nil, wrapError(part, err)
	}
	stubs, err := l.dec.DecodeDocument(text)
	if err != nil {
		return nil, wrapError(part, err)
	}

	for i, stub := range stubs {
		if stub.Source == "" {
			l.warn(part, "skipping page content without source", nil)
			l.log.Debug().Int("index", i).Msg("Page content without source")
			continue
		}

		page, err := l.page(opc.Resolve(part, stub.Source), stub)
		if err != nil {
			return nil, err
		}
		doc.AddPage(page)
	}
	return doc, nil
}

func (l *loader) page(part string, stub markup.PageStub) (*model.Page, error) {
	text, err := l.store.ReadText(part)
	if err != nil {
		return nil, wrapError(part, err)
	}

	fp, err := l.dec.DecodePage(part, text)
	if err != nil {
		return nil, wrapError(part, err)
	}

	width, height := stub.Width, stub.Height
	if fp.Width != nil {
		width = *fp.Width
	}
	if fp.Height != nil {
		height = *fp.Height
	}

	page := model.NewPage(width, height, fp.Root)
	page.Name = fp.Name
	page.Lang = fp.Lang
	page.Links = stub.LinkTargets
	page.ContentBox = fp.ContentBox
	page.BleedBox = fp.BleedBox
	return page, nil
}

func (l *loader) warn(part, msg string, err error) {
	l.log.Warn().Err(err).Str("part", part).Msg(msg)
	l.pkg.Warnings = append(l.pkg.Warnings, Warning{Part: part, Message: msg, Err: err})
}
