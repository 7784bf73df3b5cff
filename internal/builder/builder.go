package builder

import (
	"github.com/specialistvlad/formdsl/internal/catalog"
	"github.com/specialistvlad/formdsl/internal/resolver"
)

// Builder builds validated models from syntax trees.
type Builder struct {
	catalog *catalog.Catalog
	imports []*resolver.Namespace
}

// Option configures a Builder.
type Option func(*Builder)

// WithCatalog injects the built-in catalog. The default is catalog.Builtin().
func WithCatalog(cat *catalog.Catalog) Option {
	return func(b *Builder) {
		if cat != nil {
			b.catalog = cat
		}
	}
}

// WithImports makes the field types of the given namespaces visible to every
// document the Builder builds, after the document's own declarations. Earlier
// namespaces take precedence.
func WithImports(imports ...*resolver.Namespace) Option {
	return func(b *Builder) {
		b.imports = append(b.imports, imports...)
	}
}

// New creates a Builder.
func New(opts ...Option) *Builder {
	b := &Builder{catalog: catalog.Builtin()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}
