// Package catalog provides the table of built-in field types that every form
// can use without declaring them.
//
// A Catalog is immutable once constructed. Builders receive it by injection
// and only ever read from it, so a single instance can be shared by any number
// of concurrent builds.
package catalog

import (
	"sync"

	"github.com/specialistvlad/formdsl/internal/model"
)

// Names of the built-in field types.
const (
	TextField     = "TextField"
	ChoiceField   = "ChoiceField"
	DropDownField = "DropDownField"
	DateField     = "DateField"
	TimeField     = "TimeField"
	NumberField   = "NumberField"
)

// Catalog is a read-only set of built-in field types keyed by name.
type Catalog struct {
	types map[string]*model.FieldType
	order []string
}

// New constructs a fresh catalog holding the six built-in field types.
func New() *Catalog {
	c := &Catalog{types: make(map[string]*model.FieldType)}
	for _, ft := range builtinTypes() {
		c.types[ft.Name] = ft
		c.order = append(c.order, ft.Name)
	}
	return c
}

var builtin = sync.OnceValue(New)

// Builtin returns the process-wide catalog. Every call returns the same
// instance, so built-in field types compare equal by identity across builds.
func Builtin() *Catalog {
	return builtin()
}

// Lookup returns the built-in field type with the given name.
func (c *Catalog) Lookup(name string) (*model.FieldType, bool) {
	if c == nil {
		return nil, false
	}
	ft, ok := c.types[name]
	return ft, ok
}

// Has reports whether name is a built-in field type name.
func (c *Catalog) Has(name string) bool {
	_, ok := c.Lookup(name)
	return ok
}

// Names returns the built-in type names in catalog order.
func (c *Catalog) Names() []string {
	if c == nil {
		return nil
	}
	return append([]string{}, c.order...)
}

// Types returns the built-in field types in catalog order.
func (c *Catalog) Types() []*model.FieldType {
	if c == nil {
		return nil
	}
	out := make([]*model.FieldType, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.types[name])
	}
	return out
}
