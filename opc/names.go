package opc

import (
	"path"
	"strings"
)

// PackageRelationshipsPart is the part holding the package relationships.
const PackageRelationshipsPart = "_rels/.rels"

// Resolve turns a part reference found inside base into a container entry
// name. References starting with the package root marker "/" are taken from
// the package root; everything else is relative to the directory of base.
// The result never has a leading slash.
func Resolve(base, target string) string {
	if strings.HasPrefix(target, "/") {
		return clean(target)
	}

	dir := path.Dir(strings.TrimPrefix(base, "/"))
	if dir == "." {
		return clean(target)
	}
	return clean(path.Join(dir, target))
}

// ResolvePackage resolves a target of the package relationships part.
// Those relationships belong to the package root, so relative targets are
// taken from the root rather than from the _rels directory.
func ResolvePackage(target string) string {
	return Resolve("", target)
}

// RelationshipsPart returns the name of the relationship part that belongs
// to part: <dir>/_rels/<file>.rels.
func RelationshipsPart(part string) string {
	part = strings.TrimPrefix(part, "/")
	dir, file := path.Split(part)
	return dir + "_rels/" + file + ".rels"
}

// clean normalizes a part name. Dot segments that would climb out of the
// package root are dropped.
func clean(name string) string {
	name = path.Clean("/" + name)
	return strings.TrimPrefix(name, "/")
}
