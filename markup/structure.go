package markup

import "github.com/tsawler/xpsdoc/model"

// DecodeStructure decodes a DocumentStructure part. It returns nil when the
// part declares no DocumentOutline; when it declares several, the last one
// is kept.
func (d *Decoder) DecodeStructure(text string) (*model.Outline, error) {
	root, err := d.root(text)
	if err != nil {
		return nil, err
	}

	if !isStructure(root, "DocumentStructure") {
		d.log.Debug().Str("root", root.FullTag()).Msg("Not a document structure")
		return nil, nil
	}

	var outline *model.Outline
	for _, o := range root.ChildElements() {
		if !isStructure(o, "DocumentStructure.Outline") {
			continue
		}
		for _, do := range o.ChildElements() {
			if !isStructure(do, "DocumentOutline") {
				continue
			}

			outline = &model.Outline{}
			for _, e := range do.ChildElements() {
				if !isStructure(e, "OutlineEntry") {
					continue
				}
				outline.Entries = append(outline.Entries, model.OutlineEntry{
					Level:       optionalAttr(e, "OutlineLevel"),
					Description: optionalAttr(e, "Description"),
					Target:      optionalAttr(e, "OutlineTarget"),
				})
			}
		}
	}
	return outline, nil
}
