// Package xmlutil reads XML parts that have already been decoded to Go
// strings.
//
// Parts stored as UTF-16 keep their original declaration
// (encoding="utf-16") after archive.DecodeText has converted them, so the
// charset reader installed here passes Unicode labels through untouched and
// hands anything else to golang.org/x/net/html/charset.
package xmlutil

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
	"golang.org/x/net/html/charset"
)

// ErrMalformed is returned for markup that is not well-formed XML.
var ErrMalformed = errors.New("xml: malformed markup")

// ParseDocument parses text into an etree document.
func ParseDocument(text string) (*etree.Document, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = CharsetReader

	if err := doc.ReadFromString(trimBOM(text)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if doc.Root() == nil {
		return nil, fmt.Errorf("%w: no root element", ErrMalformed)
	}

	roots := 0
	for _, tok := range doc.Child {
		switch t := tok.(type) {
		case *etree.Element:
			roots++
		case *etree.CharData:
			if !t.IsWhitespace() {
				return nil, fmt.Errorf("%w: text outside the root element", ErrMalformed)
			}
		}
	}
	if roots > 1 {
		return nil, fmt.Errorf("%w: more than one root element", ErrMalformed)
	}
	return doc, nil
}

// Unmarshal decodes text into v with encoding/xml.
func Unmarshal(text string, v any) error {
	d := xml.NewDecoder(strings.NewReader(trimBOM(text)))
	d.CharsetReader = CharsetReader

	if err := d.Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if err := checkTrailer(d); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return nil
}

// checkTrailer reads what follows the root element. Only comments,
// processing instructions and whitespace may appear there.
func checkTrailer(d *xml.Decoder) error {
	for {
		tok, err := d.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			return fmt.Errorf("unexpected element <%s> after the root element", t.Name.Local)
		case xml.CharData:
			if len(bytes.TrimSpace(t)) > 0 {
				return errors.New("unexpected text after the root element")
			}
		}
	}
}

// CharsetReader is an encoding/xml compatible charset hook for input that is
// already UTF-8.
func CharsetReader(label string, input io.Reader) (io.Reader, error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "utf-8", "utf8", "utf-16", "utf-16le", "utf-16be", "utf16", "unicode", "ucs-2":
		return input, nil
	}
	return charset.NewReaderLabel(label, input)
}

func trimBOM(text string) string {
	return strings.TrimPrefix(text, "\uFEFF")
}
