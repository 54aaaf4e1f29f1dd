package model

import "time"

// Document is one FixedDocument of a package: its pages in order and an
// optional outline.
type Document struct {
	Outline *Outline
	Pages   []*Page
}

// Metadata contains package-level core properties.
type Metadata struct {
	Title          string
	Author         string
	Subject        string
	Keywords       []string
	Description    string
	Category       string
	LastModifiedBy string
	Revision       string
	Created        time.Time
	Modified       time.Time
}

// NewDocument creates a new empty document
func NewDocument() *Document {
	return &Document{
		Pages: make([]*Page, 0),
	}
}

// AddPage adds a page to the document
func (d *Document) AddPage(page *Page) {
	page.Number = len(d.Pages) + 1
	d.Pages = append(d.Pages, page)
}

// GetPage returns a page by number (1-indexed)
func (d *Document) GetPage(number int) *Page {
	if number < 1 || number > len(d.Pages) {
		return nil
	}
	return d.Pages[number-1]
}

// PageCount returns the total number of pages
func (d *Document) PageCount() int {
	return len(d.Pages)
}

// FindLinkTarget returns the page that declares the named link target, or
// nil.
func (d *Document) FindLinkTarget(name string) *Page {
	for _, page := range d.Pages {
		for _, link := range page.Links {
			if link == name {
				return page
			}
		}
	}
	return nil
}
