package resolver

import (
	"github.com/specialistvlad/formdsl/internal/model"
	"github.com/specialistvlad/formdsl/internal/semerr"
)

// Namespace is a table of field type declarations from one source unit. It is
// read-only after construction and may be shared between builds.
type Namespace struct {
	name  string
	types map[string]*model.FieldType
	order []string
}

// NewNamespace collects declarations into a table. Declaring the same name
// twice in one unit is a DuplicateFieldTypeName error.
func NewNamespace(name string, types []*model.FieldType) (*Namespace, error) {
	ns := &Namespace{
		name:  name,
		types: make(map[string]*model.FieldType, len(types)),
	}
	for _, ft := range types {
		if _, exists := ns.types[ft.Name]; exists {
			return nil, &semerr.Error{
				Kind:   semerr.DuplicateFieldTypeName,
				Name:   ft.Name,
				Source: ft.Source,
			}
		}
		ns.types[ft.Name] = ft
		ns.order = append(ns.order, ft.Name)
	}
	return ns, nil
}

// Name identifies the unit the declarations came from.
func (n *Namespace) Name() string {
	if n == nil {
		return ""
	}
	return n.name
}

// Lookup returns the declaration with the given name.
func (n *Namespace) Lookup(name string) (*model.FieldType, bool) {
	if n == nil {
		return nil, false
	}
	ft, ok := n.types[name]
	return ft, ok
}

// Types returns the declarations in the order they were collected.
func (n *Namespace) Types() []*model.FieldType {
	if n == nil {
		return nil
	}
	out := make([]*model.FieldType, 0, len(n.order))
	for _, name := range n.order {
		out = append(out, n.types[name])
	}
	return out
}

// Len returns the number of declarations.
func (n *Namespace) Len() int {
	if n == nil {
		return 0
	}
	return len(n.order)
}
