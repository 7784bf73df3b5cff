package hcl

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/formdsl/internal/builder"
	"github.com/specialistvlad/formdsl/internal/ctxlog"
	"github.com/specialistvlad/formdsl/internal/fsutil"
	"github.com/specialistvlad/formdsl/internal/model"
	"github.com/specialistvlad/formdsl/internal/resolver"
	"github.com/specialistvlad/formdsl/internal/syntax"
)

// ErrImportCycle is returned when a file imports itself, directly or through
// other files.
var ErrImportCycle = errors.New("import cycle")

// Loader reads form documents and their imports from disk.
type Loader struct {
	builder *builder.Builder
}

// Result is a loaded, validated form.
type Result struct {
	Form *model.Form
	// Imports are the imported namespaces in resolution order.
	Imports []*resolver.Namespace
	// Files lists every file read, in the order it was read.
	Files []string
}

// NewLoader creates a Loader that builds models with b. A nil builder uses
// builder.New().
func NewLoader(b *builder.Builder) *Loader {
	if b == nil {
		b = builder.New()
	}
	return &Loader{builder: b}
}

// Load reads the form at path, loads its imports recursively and builds the
// form. Import paths are relative to the importing file.
func (l *Loader) Load(ctx context.Context, path string) (*Result, error) {
	ctx = ctxlog.With(ctx, "form", path)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading form.")

	s := l.newSession(ctx)
	doc, err := s.parse(path)
	if err != nil {
		return nil, err
	}

	key := fileKey(path)
	s.push(key)
	imports, err := s.resolveImports(doc, path)
	s.pop()
	if err != nil {
		return nil, err
	}

	form, err := l.builder.Build(doc, imports...)
	if err != nil {
		return nil, fmt.Errorf("invalid form %s: %w", path, err)
	}

	logger.Debug("Form loaded.", "sections", len(form.Sections), "fields", len(form.Fields()), "imports", len(imports))
	return &Result{Form: form, Imports: imports, Files: s.files}, nil
}

// LoadFieldTypes reads a field-type unit and its imports and returns the
// unit's validated declarations.
func (l *Loader) LoadFieldTypes(ctx context.Context, path string) (*resolver.Namespace, error) {
	s := l.newSession(ctx)
	return s.loadUnit(path)
}

// LoadAll loads every .hcl file under root as a form. Files that only declare
// field types load as forms without sections, which validates them.
func (l *Loader) LoadAll(ctx context.Context, root string) ([]*Result, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := fsutil.FindFiles(root, ".hcl")
	if err != nil {
		return nil, fmt.Errorf("failed to find form files in %s: %w", root, err)
	}
	if len(files) == 0 {
		logger.Warn("No .hcl files found in path.", "path", root)
		return nil, nil
	}

	results := make([]*Result, 0, len(files))
	for _, file := range files {
		res, err := l.Load(ctx, file)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

// session holds the state of one Load call. Each file is parsed and built at
// most once per session.
type session struct {
	ctx     context.Context
	builder *builder.Builder
	parser  *hclparse.Parser
	units   map[string]*unit
	stack   []string
	files   []string
}

// unit is a loaded field-type unit together with everything it imports,
// flattened in resolution order.
type unit struct {
	ns      *resolver.Namespace
	imports []*resolver.Namespace
}

func (l *Loader) newSession(ctx context.Context) *session {
	return &session{
		ctx:     ctx,
		builder: l.builder,
		parser:  hclparse.NewParser(),
		units:   make(map[string]*unit),
	}
}

func (s *session) parse(path string) (*syntax.Document, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	file, diags := s.parser.ParseHCL(src, path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	doc, diags := decodeDocument(file, path, src)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	s.files = append(s.files, path)
	ctxlog.FromContext(s.ctx).Debug("Parsed file.", "path", path, "field_types", len(doc.FieldTypes), "sections", len(doc.Sections), "imports", len(doc.Imports))
	return doc, nil
}

// resolveImports loads the imports of doc depth first. Each imported unit is
// followed by its own imports; a namespace reachable twice keeps its first
// position.
func (s *session) resolveImports(doc *syntax.Document, from string) ([]*resolver.Namespace, error) {
	var out []*resolver.Namespace
	seen := make(map[*resolver.Namespace]struct{})
	add := func(ns *resolver.Namespace) {
		if _, ok := seen[ns]; ok {
			return
		}
		seen[ns] = struct{}{}
		out = append(out, ns)
	}

	for _, imp := range doc.Imports {
		path := importPath(from, imp)
		if _, err := s.loadUnit(path); err != nil {
			return nil, err
		}
		u := s.units[fileKey(path)]
		add(u.ns)
		for _, ns := range u.imports {
			add(ns)
		}
	}
	return out, nil
}

func (s *session) loadUnit(path string) (*resolver.Namespace, error) {
	key := fileKey(path)
	if u, ok := s.units[key]; ok {
		return u.ns, nil
	}
	for _, active := range s.stack {
		if active == key {
			chain := append(append([]string{}, s.stack...), key)
			return nil, fmt.Errorf("%w: %s", ErrImportCycle, strings.Join(chain, " -> "))
		}
	}

	doc, err := s.parse(path)
	if err != nil {
		return nil, err
	}
	if len(doc.Sections) > 0 {
		ctxlog.FromContext(s.ctx).Warn("Imported file declares sections; they are ignored.", "path", path, "sections", len(doc.Sections))
	}

	s.push(key)
	imports, err := s.resolveImports(doc, path)
	s.pop()
	if err != nil {
		return nil, err
	}

	ns, err := s.builder.BuildFieldTypes(doc)
	if err != nil {
		return nil, fmt.Errorf("invalid field types in %s: %w", path, err)
	}

	s.units[key] = &unit{ns: ns, imports: imports}
	ctxlog.FromContext(s.ctx).Debug("Field types loaded.", "path", path, "count", ns.Len())
	return ns, nil
}

func (s *session) push(key string) { s.stack = append(s.stack, key) }

func (s *session) pop() { s.stack = s.stack[:len(s.stack)-1] }

// importPath resolves an import relative to the directory of the importing
// file.
func importPath(from, imp string) string {
	if filepath.IsAbs(imp) {
		return filepath.Clean(imp)
	}
	return filepath.Join(filepath.Dir(from), imp)
}

func fileKey(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}
