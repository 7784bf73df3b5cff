/*
Package builder turns a syntax tree into a validated form model. It is the
bridge between whatever parsed the source (see the 'syntax' package) and the
consumers of the finished model, such as renderers.

Construction is a strictly forward, multi-phase process:

 1. Declaration: every field type declared in the document is instantiated,
    its attribute type names parsed once into model.AttrType values, and the
    declarations are collected into a resolver.Namespace. The field type
    rules run on them right away; they need no resolution.

 2. Instantiation and resolution: sections, then fields within each section,
    then attribute assignments within each field are instantiated in document
    order. Each field type name is resolved through a resolver.Scope and each
    attribute name relative to the field's type. A failed resolution aborts
    the build.

 3. Validation: the remaining validator rules run bottom-up. First the
    attribute value and field rules, which collapse each field's
    assignments into its name to value mapping, and finally the form rule.

The first error stops the build and nothing partially built is returned. A
build is a pure function of its input: it performs no I/O, keeps no state
between calls and only reads from the injected catalog, so one Builder may be
used from many goroutines at once.
*/
package builder
