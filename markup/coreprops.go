package markup

import (
	"strings"
	"time"

	"github.com/tsawler/xpsdoc/internal/xmlutil"
	"github.com/tsawler/xpsdoc/model"
)

// corePropertiesXML represents the core properties part (Dublin Core
// metadata).
type corePropertiesXML struct {
	Title          string `xml:"title"`
	Subject        string `xml:"subject"`
	Creator        string `xml:"creator"`
	Keywords       string `xml:"keywords"`
	Description    string `xml:"description"`
	LastModifiedBy string `xml:"lastModifiedBy"`
	Revision       string `xml:"revision"`
	Category       string `xml:"category"`
	Created        string `xml:"created"`
	Modified       string `xml:"modified"`
}

// DecodeCoreProperties decodes a core properties part. Dates that are not
// W3CDTF timestamps are left zero.
func (d *Decoder) DecodeCoreProperties(text string) (*model.Metadata, error) {
	var props corePropertiesXML
	if err := xmlutil.Unmarshal(text, &props); err != nil {
		return nil, err
	}

	meta := &model.Metadata{
		Title:          strings.TrimSpace(props.Title),
		Author:         strings.TrimSpace(props.Creator),
		Subject:        strings.TrimSpace(props.Subject),
		Description:    strings.TrimSpace(props.Description),
		Category:       strings.TrimSpace(props.Category),
		LastModifiedBy: strings.TrimSpace(props.LastModifiedBy),
		Revision:       strings.TrimSpace(props.Revision),
		Created:        d.parseW3CDTF("created", props.Created),
		Modified:       d.parseW3CDTF("modified", props.Modified),
	}

	if props.Keywords != "" {
		meta.Keywords = strings.Split(props.Keywords, ",")
		for i, kw := range meta.Keywords {
			meta.Keywords[i] = strings.TrimSpace(kw)
		}
	}
	return meta, nil
}

var w3cdtfLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"2006-01",
	"2006",
}

func (d *Decoder) parseW3CDTF(field, s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range w3cdtfLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	d.log.Trace().Str("field", field).Str("value", s).Msg("Ignoring unparsable date")
	return time.Time{}
}
