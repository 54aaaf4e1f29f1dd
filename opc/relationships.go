// Package opc implements the parts of the Open Packaging Conventions an XPS
// decoder needs: relationship parts and part-name resolution.
package opc

import (
	"encoding/xml"

	"github.com/tsawler/xpsdoc/internal/xmlutil"
)

// NamespaceRelationships is the namespace of relationship parts.
const NamespaceRelationships = "http://schemas.openxmlformats.org/package/2006/relationships"

// Relationship types recognized by the decoder.
const (
	TypeCoreProperties          = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	TypeThumbnail               = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/thumbnail"
	TypeFixedRepresentation     = "http://schemas.microsoft.com/xps/2005/06/fixedrepresentation"
	TypeOXPSFixedRepresentation = "http://schemas.openxps.org/oxps/v1.0/fixedrepresentation"
	TypeDocumentStructure       = "http://schemas.microsoft.com/xps/2005/06/documentstructure"
)

// PackageRelationships holds the targets of the package-level relationships.
// Empty strings mean the relationship is absent.
type PackageRelationships struct {
	CoreProperties      string
	Thumbnail           string
	FixedRepresentation string

	// FixedRepresentationType is the relationship type the fixed
	// representation target was declared with.
	FixedRepresentationType string
}

// DocumentRelationships holds the targets of a FixedDocument's relationships.
type DocumentRelationships struct {
	Structure string
}

// relationshipsXML represents _rels/*.rels files. XMLName carries no tag so
// that a root in another namespace yields an empty result instead of an error.
type relationshipsXML struct {
	XMLName       xml.Name
	Relationships []relationshipXML `xml:"http://schemas.openxmlformats.org/package/2006/relationships Relationship"`
}

// relationshipXML represents a single relationship.
type relationshipXML struct {
	ID         string `xml:"Id,attr"`
	Type       string `xml:"Type,attr"`
	Target     string `xml:"Target,attr"`
	TargetMode string `xml:"TargetMode,attr"`
}

// ParsePackageRelationships parses the package relationship part
// (_rels/.rels). Unrecognized relationship types are ignored and the last
// relationship of a recognized type wins.
func ParsePackageRelationships(text string) (*PackageRelationships, error) {
	rels, err := parseRelationships(text)
	if err != nil {
		return nil, err
	}

	res := &PackageRelationships{}
	for _, rel := range rels {
		switch rel.Type {
		case TypeCoreProperties:
			res.CoreProperties = rel.Target
		case TypeThumbnail:
			res.Thumbnail = rel.Target
		case TypeFixedRepresentation, TypeOXPSFixedRepresentation:
			res.FixedRepresentation = rel.Target
			res.FixedRepresentationType = rel.Type
		}
	}
	return res, nil
}

// ParseDocumentRelationships parses the relationship part of a FixedDocument.
func ParseDocumentRelationships(text string) (*DocumentRelationships, error) {
	rels, err := parseRelationships(text)
	if err != nil {
		return nil, err
	}

	res := &DocumentRelationships{}
	for _, rel := range rels {
		if rel.Type == TypeDocumentStructure {
			res.Structure = rel.Target
		}
	}
	return res, nil
}

func parseRelationships(text string) ([]relationshipXML, error) {
	var doc relationshipsXML
	if err := xmlutil.Unmarshal(text, &doc); err != nil {
		return nil, err
	}

	if doc.XMLName.Space != NamespaceRelationships || doc.XMLName.Local != "Relationships" {
		return nil, nil
	}
	return doc.Relationships, nil
}
