// Package resolver turns names in value positions into the declarations they
// refer to.
//
// Resolution is two-phase. Declarations are first collected into Namespace
// tables; every reference is then looked up against those tables, yielding
// either the declaration or an UnresolvedReference error. Nothing is resolved
// lazily during validation.
//
// Two kinds of reference exist:
//
//   - Field type names, looked up in a Scope: the built-in catalog, then the
//     document's own declarations, then imported namespaces in import order.
//     The first match wins.
//
//   - Attribute names, looked up relative to the field type of the enclosing
//     field. An attribute declared on some other field type is not visible.
package resolver
