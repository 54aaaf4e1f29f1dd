// Package format tells XPS packages from OpenXPS packages.
package format

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"

	"github.com/tsawler/xpsdoc/archive"
	"github.com/tsawler/xpsdoc/opc"
)

// Format is the flavour of a fixed-layout package.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// XPS indicates a Microsoft XML Paper Specification package.
	XPS
	// OXPS indicates an OpenXPS (ECMA-388) package.
	OXPS
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case XPS:
		return "XPS"
	case OXPS:
		return "OXPS"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case XPS:
		return ".xps"
	case OXPS:
		return ".oxps"
	default:
		return ""
	}
}

// Detect determines the format from a filename extension.
func Detect(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xps":
		return XPS
	case ".oxps":
		return OXPS
	default:
		return Unknown
	}
}

// FromRelationshipType maps a fixed-representation relationship type to the
// format that declares it.
func FromRelationshipType(relType string) Format {
	switch relType {
	case opc.TypeFixedRepresentation:
		return XPS
	case opc.TypeOXPSFixedRepresentation:
		return OXPS
	default:
		return Unknown
	}
}

var zipMagic = []byte{0x50, 0x4B, 0x03, 0x04}

// IsZIP reports whether data starts with the ZIP local file header magic.
func IsZIP(data []byte) bool {
	return bytes.HasPrefix(data, zipMagic)
}

// DetectFromReader inspects the content to determine the format. It reads
// the package relationships, so unlike Detect it is not fooled by a renamed
// file.
func DetectFromReader(r io.ReaderAt, size int64) (Format, error) {
	magic := make([]byte, len(zipMagic))
	n, err := r.ReadAt(magic, 0)
	if err != nil && err != io.EOF {
		return Unknown, err
	}
	if !IsZIP(magic[:n]) {
		return Unknown, nil
	}

	store, err := archive.NewStore(r, size)
	if err != nil {
		return Unknown, err
	}
	defer store.Close()

	return detectPackage(store)
}

// detectPackage classifies an opened container by its fixed-representation
// relationship.
func detectPackage(store *archive.Store) (Format, error) {
	if !store.Has(opc.PackageRelationshipsPart) {
		return Unknown, nil
	}

	text, err := store.ReadText(opc.PackageRelationshipsPart)
	if err != nil {
		return Unknown, err
	}

	rels, err := opc.ParsePackageRelationships(text)
	if err != nil {
		return Unknown, err
	}
	return FromRelationshipType(rels.FixedRepresentationType), nil
}
