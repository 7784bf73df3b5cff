package resolver

import (
	"github.com/specialistvlad/formdsl/internal/catalog"
	"github.com/specialistvlad/formdsl/internal/model"
	"github.com/specialistvlad/formdsl/internal/semerr"
)

// Scope is the set of field type names visible from one document.
type Scope struct {
	catalog *catalog.Catalog
	local   *Namespace
	imports []*Namespace
}

// NewScope builds a scope over the catalog, the document's own declarations
// and the namespaces supplied by the import collaborator.
func NewScope(cat *catalog.Catalog, local *Namespace, imports ...*Namespace) *Scope {
	return &Scope{
		catalog: cat,
		local:   local,
		imports: append([]*Namespace{}, imports...),
	}
}

// FieldType resolves a field type name. Built-ins are consulted first, then
// the local declarations, then each import in order.
func (s *Scope) FieldType(name string, src model.SourceInfo) (*model.FieldType, error) {
	if ft, ok := s.catalog.Lookup(name); ok {
		return ft, nil
	}
	if ft, ok := s.local.Lookup(name); ok {
		return ft, nil
	}
	if ft, ok := LookupImported(name, s.imports); ok {
		return ft, nil
	}
	return nil, &semerr.Error{
		Kind:    semerr.UnresolvedReference,
		RefKind: "field type",
		Name:    name,
		Source:  src,
	}
}

// LookupImported performs a plain-name lookup across imported namespaces. The
// first namespace declaring the name wins.
func LookupImported(name string, imports []*Namespace) (*model.FieldType, bool) {
	for _, ns := range imports {
		if ft, ok := ns.Lookup(name); ok {
			return ft, true
		}
	}
	return nil, false
}

// Attribute resolves an attribute name relative to the field type of the
// enclosing field.
func Attribute(ft *model.FieldType, name string, src model.SourceInfo) (*model.Attribute, error) {
	if attr, ok := ft.Attribute(name); ok {
		return attr, nil
	}
	owner := ""
	if ft != nil {
		owner = ft.Name
	}
	return nil, &semerr.Error{
		Kind:    semerr.UnresolvedReference,
		RefKind: "attribute",
		Name:    name,
		Owner:   owner,
		Source:  src,
	}
}
