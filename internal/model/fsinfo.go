// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines SourceInfo, which links an entity back to the place in a
// source document where it was declared. Semantic errors carry it so a caller
// can point the author at the offending line.
package model

import "fmt"

// SourceInfo is the position of a declaration in its source document. The
// zero value means the position is unknown.
type SourceInfo struct {
	File   string
	Line   int
	Column int
}

// IsZero reports whether no position information is available.
func (s SourceInfo) IsZero() bool {
	return s.File == "" && s.Line == 0 && s.Column == 0
}

// String renders the position as file:line:column, omitting unknown parts.
func (s SourceInfo) String() string {
	switch {
	case s.IsZero():
		return ""
	case s.Line == 0:
		return s.File
	case s.File == "":
		return fmt.Sprintf("%d:%d", s.Line, s.Column)
	default:
		return fmt.Sprintf("%s:%d:%d", s.File, s.Line, s.Column)
	}
}
