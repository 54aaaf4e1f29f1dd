package markup

// Sequence is a decoded FixedDocumentSequence: the document part references
// in package order.
type Sequence struct {
	Documents []string
}

// PageStub is a PageContent entry of a FixedDocument. Source is the page
// reference as written in the markup and is empty when the attribute is
// missing.
type PageStub struct {
	Source      string
	Width       float64
	Height      float64
	LinkTargets []string
}

// DecodeSequence decodes a FixedDocumentSequence part. DocumentReference
// elements without a Source are skipped.
func (d *Decoder) DecodeSequence(text string) (*Sequence, error) {
	root, err := d.root(text)
	if err != nil {
		return nil, err
	}

	seq := &Sequence{}
	if !isXPS(root, "FixedDocumentSequence") {
		d.log.Debug().Str("root", root.FullTag()).Msg("Not a document sequence")
		return seq, nil
	}

	for _, ref := range childrenXPS(root, "DocumentReference") {
		if src, ok := attr(ref, "Source"); ok {
			seq.Documents = append(seq.Documents, src)
		}
	}
	return seq, nil
}

// DecodeDocument decodes a FixedDocument part into its page stubs.
func (d *Decoder) DecodeDocument(text string) ([]PageStub, error) {
	root, err := d.root(text)
	if err != nil {
		return nil, err
	}

	if !isXPS(root, "FixedDocument") {
		d.log.Debug().Str("root", root.FullTag()).Msg("Not a fixed document")
		return nil, nil
	}

	var stubs []PageStub
	for _, pc := range childrenXPS(root, "PageContent") {
		stub := PageStub{
			Source: attrString(pc, "Source"),
		}
		if v, ok := attr(pc, "Width"); ok {
			stub.Width = parseSize(v)
		}
		if v, ok := attr(pc, "Height"); ok {
			stub.Height = parseSize(v)
		}

		for _, targets := range childrenXPS(pc, "PageContent.LinkTargets") {
			for _, lt := range childrenXPS(targets, "LinkTarget") {
				if name, ok := attr(lt, "Name"); ok {
					stub.LinkTargets = append(stub.LinkTargets, name)
				}
			}
		}

		stubs = append(stubs, stub)
	}
	return stubs, nil
}
