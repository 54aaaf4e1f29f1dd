package markup

import (
	"strings"

	"github.com/beevik/etree"
)

// Namespaces of the markup vocabulary.
const (
	NamespaceXPS  = "http://schemas.microsoft.com/xps/2005/06"
	NamespaceOXPS = "http://schemas.openxps.org/oxps/v1.0"

	NamespaceStructure     = "http://schemas.microsoft.com/xps/2005/06/documentstructure"
	NamespaceOXPSStructure = "http://schemas.openxps.org/oxps/v1.0/documentstructure"

	NamespaceResourceKey     = "http://schemas.microsoft.com/xps/2005/06/resourcedictionary-key"
	NamespaceOXPSResourceKey = "http://schemas.openxps.org/oxps/v1.0/resourcedictionary-key"

	namespaceXML = "http://www.w3.org/XML/1998/namespace"
)

// isXPS reports whether e is the named element of the fixed-page vocabulary
// in either namespace.
func isXPS(e *etree.Element, tag string) bool {
	if e.Tag != tag {
		return false
	}
	ns := e.NamespaceURI()
	return ns == NamespaceXPS || ns == NamespaceOXPS
}

// isStructure is isXPS for the document structure vocabulary.
func isStructure(e *etree.Element, tag string) bool {
	if e.Tag != tag {
		return false
	}
	ns := e.NamespaceURI()
	return ns == NamespaceStructure || ns == NamespaceOXPSStructure
}

// childrenXPS returns the children of e that are the named XPS element.
func childrenXPS(e *etree.Element, tag string) []*etree.Element {
	var res []*etree.Element
	for _, c := range e.ChildElements() {
		if isXPS(c, tag) {
			res = append(res, c)
		}
	}
	return res
}

// propertyElement returns the first <owner>.<prop> child of e, or nil.
func propertyElement(e *etree.Element, prop string) *etree.Element {
	return firstXPS(e, e.Tag+"."+prop)
}

// isPropertyElement reports whether c is a property element of its parent
// (its tag contains a dot).
func isPropertyElement(c *etree.Element) bool {
	return strings.Contains(c.Tag, ".")
}

// attr returns the value of the unprefixed attribute key.
func attr(e *etree.Element, key string) (string, bool) {
	for _, a := range e.Attr {
		if a.Space == "" && a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// attrString returns the value of the unprefixed attribute key, or "".
func attrString(e *etree.Element, key string) string {
	v, _ := attr(e, key)
	return v
}

// optionalAttr returns the unprefixed attribute key, or nil when it is
// absent. A present but empty attribute yields a pointer to "".
func optionalAttr(e *etree.Element, key string) *string {
	v, ok := attr(e, key)
	if !ok {
		return nil
	}
	return &v
}

// lang returns the xml:lang attribute of e.
func lang(e *etree.Element) string {
	for _, a := range e.Attr {
		if a.Key == "lang" && (a.Space == "xml" || a.NamespaceURI() == namespaceXML) {
			return a.Value
		}
	}
	return ""
}

// resourceKey returns the x:Key attribute of a resource dictionary entry.
func resourceKey(e *etree.Element) (string, bool) {
	for _, a := range e.Attr {
		if a.Key != "Key" || a.Space == "" {
			continue
		}
		switch a.NamespaceURI() {
		case NamespaceResourceKey, NamespaceOXPSResourceKey:
			return a.Value, true
		}
	}
	return "", false
}

// firstXPS returns the first child of e that is the named XPS element.
func firstXPS(e *etree.Element, tag string) *etree.Element {
	for _, c := range e.ChildElements() {
		if isXPS(c, tag) {
			return c
		}
	}
	return nil
}
