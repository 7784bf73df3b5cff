// Package semerr defines the semantic errors raised while a form model is
// built. Every inconsistency is fatal; there is no warning tier.
package semerr

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/formdsl/internal/model"
)

// Kind identifies the rule that was violated.
type Kind string

const (
	EmptyTemplatePath            Kind = "EmptyTemplatePath"
	DuplicateBuiltinType         Kind = "DuplicateBuiltinType"
	DuplicateAttributeName       Kind = "DuplicateAttributeName"
	MissingRequiredAttribute     Kind = "MissingRequiredAttribute"
	DuplicateAttributeAssignment Kind = "DuplicateAttributeAssignment"
	TypeMismatch                 Kind = "TypeMismatch"
	DuplicateFieldName           Kind = "DuplicateFieldName"
	UnresolvedReference          Kind = "UnresolvedReference"
	DuplicateFieldTypeName       Kind = "DuplicateFieldTypeName"
	UnknownAttributeType         Kind = "UnknownAttributeType"
)

// Error lets a Kind be used as an errors.Is target:
//
//	errors.Is(err, semerr.TypeMismatch)
func (k Kind) Error() string { return string(k) }

// Error is a semantic error. Which context fields are set depends on the kind.
type Error struct {
	Kind Kind

	// Name is the offending entity: a field type, attribute or field name.
	Name string
	// Owner is the field type the entity belongs to, when relevant.
	Owner string
	// Container is the field or form that holds the entity, when relevant.
	Container string
	// RefKind says what an unresolved reference was looking for.
	RefKind string

	Expected string
	Actual   string

	Source model.SourceInfo
}

// Error renders a human-readable message prefixed with the source position.
func (e *Error) Error() string {
	msg := e.message()
	if pos := e.Source.String(); pos != "" {
		return pos + ": " + msg
	}
	return msg
}

func (e *Error) message() string {
	switch e.Kind {
	case EmptyTemplatePath:
		return fmt.Sprintf("template path for field type %s can not be empty", e.Name)
	case DuplicateBuiltinType:
		return fmt.Sprintf("a predefined field type %s already exists", e.Name)
	case DuplicateAttributeName:
		return fmt.Sprintf("attribute %s already exists in field type %s; attribute names in a field type must be unique", e.Name, e.Owner)
	case MissingRequiredAttribute:
		return fmt.Sprintf("required attribute %s of field type %s is missing from field %s", e.Name, e.Owner, e.Container)
	case DuplicateAttributeAssignment:
		return fmt.Sprintf("attribute %s of field type %s is assigned more than once in field %s", e.Name, e.Owner, e.Container)
	case TypeMismatch:
		msg := fmt.Sprintf("the type of attribute %s of field type %s must be %s", e.Name, e.Owner, e.Expected)
		if e.Actual != "" {
			msg += fmt.Sprintf(", got %s", e.Actual)
		}
		return msg
	case DuplicateFieldName:
		return fmt.Sprintf("field %s already exists; field names must be unique", e.Name)
	case UnresolvedReference:
		ref := e.RefKind
		if ref == "" {
			ref = "name"
		}
		msg := fmt.Sprintf("unresolved %s reference %s", ref, e.Name)
		if e.Owner != "" {
			msg += fmt.Sprintf(" in field type %s", e.Owner)
		}
		return msg
	case DuplicateFieldTypeName:
		return fmt.Sprintf("field type %s is declared more than once", e.Name)
	case UnknownAttributeType:
		return fmt.Sprintf("attribute %s of field type %s has unknown type %s", e.Name, e.Owner, e.Actual)
	default:
		return fmt.Sprintf("%s: %s", e.Kind, e.Name)
	}
}

// Is matches a Kind target, or another *Error of the same kind.
func (e *Error) Is(target error) bool {
	switch t := target.(type) {
	case Kind:
		return e.Kind == t
	case *Error:
		return t != nil && e.Kind == t.Kind
	}
	return false
}

// KindOf extracts the Kind of the first semantic error in err's chain.
func KindOf(err error) (Kind, bool) {
	var semErr *Error
	if errors.As(err, &semErr) {
		return semErr.Kind, true
	}
	return "", false
}

// List is an ordered collection of semantic errors gathered by one rule.
type List []*Error

// Add appends e.
func (l *List) Add(e *Error) { *l = append(*l, e) }

// First returns the first collected error, or nil when the list is empty. Rules
// report only this one; the remaining entries are kept for callers that want
// the full picture.
func (l List) First() error {
	if len(l) == 0 {
		return nil
	}
	return l[0]
}
