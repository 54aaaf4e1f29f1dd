package markup

import (
	"maps"

	"github.com/beevik/etree"

	"github.com/tsawler/xpsdoc/model"
	"github.com/tsawler/xpsdoc/opc"
)

// resource is one keyed entry of a resource dictionary. Exactly one of
// brush, geometry, matrix and visual is set.
//
// Brushes, geometries and matrices are shared by every reference to the
// entry and must not be modified. Visuals are render tree nodes, so only the
// element is kept and each reference decodes its own copy against the
// scope the entry was declared in.
type resource struct {
	brush    model.Brush
	geometry *model.Geometry
	matrix   *model.Matrix

	visual      *etree.Element
	visualScope *scope
}

// scope is the resource dictionary of one FixedPage or Canvas, linked to
// the dictionary of the enclosing element.
type scope struct {
	parent  *scope
	entries map[string]resource
}

// lookup finds key in s or the enclosing scopes, innermost first.
func (s *scope) lookup(key string) (resource, bool) {
	for ; s != nil; s = s.parent {
		if r, ok := s.entries[key]; ok {
			return r, true
		}
	}
	return resource{}, false
}

// resources decodes the <owner>.Resources property element of e. It returns
// parent unchanged when e declares no dictionary.
func (pd *pageDecoder) resources(e *etree.Element, parent *scope) (*scope, error) {
	prop := propertyElement(e, "Resources")
	if prop == nil {
		return parent, nil
	}

	dict := firstXPS(prop, "ResourceDictionary")
	if dict == nil {
		return parent, nil
	}

	sc := &scope{parent: parent, entries: make(map[string]resource)}

	if src, ok := attr(dict, "Source"); ok {
		remote := pd.remoteDictionary(src)
		if remote == nil {
			return parent, nil
		}
		dict = remote
	}

	for _, c := range dict.ChildElements() {
		key, ok := resourceKey(c)
		if !ok {
			pd.log.Debug().Str("element", c.Tag).Msg("Skipping resource without key")
			continue
		}

		res, err := pd.resource(c, sc)
		if err != nil {
			return nil, err
		}
		if res == nil {
			pd.log.Debug().Str("element", c.Tag).Str("key", key).Msg("Skipping unsupported resource")
			continue
		}
		sc.entries[key] = *res
	}
	return sc, nil
}

// remoteDictionary loads the ResourceDictionary root of the part src refers
// to. Failures are logged and yield nil.
func (pd *pageDecoder) remoteDictionary(src string) *etree.Element {
	if pd.parts == nil {
		pd.log.Debug().Str("source", src).Msg("No part reader, skipping remote resource dictionary")
		return nil
	}

	name := opc.Resolve(pd.part, src)
	text, err := pd.parts.ReadText(name)
	if err != nil {
		pd.log.Debug().Err(err).Str("part", name).Msg("Skipping unreadable resource dictionary")
		return nil
	}

	root, err := pd.root(text)
	if err != nil {
		pd.log.Debug().Err(err).Str("part", name).Msg("Skipping malformed resource dictionary")
		return nil
	}
	if !isXPS(root, "ResourceDictionary") {
		pd.log.Debug().Str("part", name).Str("root", root.FullTag()).Msg("Not a resource dictionary")
		return nil
	}
	return root
}

// resource decodes a dictionary entry. Entries may refer to entries declared
// before them.
func (pd *pageDecoder) resource(e *etree.Element, sc *scope) (*resource, error) {
	switch {
	case isBrushElement(e):
		b, err := pd.brushElement(e, sc)
		if err != nil {
			return nil, err
		}
		return &resource{brush: b}, nil
	case isXPS(e, "PathGeometry"):
		return &resource{geometry: pd.pathGeometry(e, sc)}, nil
	case isXPS(e, "MatrixTransform"):
		m, ok := pd.matrixTransform(e, sc)
		if !ok {
			return nil, nil
		}
		return &resource{matrix: m}, nil
	}

	// Decode once so that errors surface with the dictionary.
	node, err := pd.node(e, sc)
	if err != nil || node == nil {
		return nil, err
	}

	declared := &scope{parent: sc.parent, entries: maps.Clone(sc.entries)}
	return &resource{visual: e, visualScope: declared}, nil
}

// instantiate decodes a fresh render tree node for a visual resource.
func (pd *pageDecoder) instantiate(r resource) (model.Child, error) {
	return pd.node(r.visual, r.visualScope)
}
