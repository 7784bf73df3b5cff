// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package model provides the in-memory entity graph of a form description.
// It is what the rest of the toolchain reasons about once a parser has turned
// source text into a syntax tree.
//
// # Core Concepts
//
//   - FieldType: a reusable, named kind of input with a fixed attribute schema.
//     Built-in types come from the catalog; user types come from field-type
//     units and carry a template path used by renderers.
//
//   - Attribute: a named, typed configuration slot declared on a FieldType.
//     Its type is an AttrType, either a scalar or a list of a scalar kind.
//
//   - UnvalidatedField: a field as written by the author, holding the ordered
//     list of attribute assignments.
//
//   - Field: a field that passed validation. Its assignments are collapsed into
//     a name to value mapping ready for lookup by attribute name.
//
//   - Section and Form: ordered containers of fields.
//
// The package holds no validation policy. Rules live in the validator package
// so they can evolve independently of the structures they check.
package model
