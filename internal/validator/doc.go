// Package validator holds the consistency rules a model must satisfy before
// it is accepted.
//
// Each rule looks at one entity kind and reports a *semerr.Error on violation.
// A rule scans its whole collection, gathering every violation, and returns
// the first one it found. No rule repairs data.
//
// Callers run field type rules before field rules, since a field cannot be
// checked against a field type that is itself invalid.
package validator
