package compiler

import (
	"fmt"

	"github.com/rubiojr/shapegen/ast"
)

// UnsupportedFeatureError is returned when a type reference carries type
// arguments that cannot be expressed as a validator.
type UnsupportedFeatureError struct {
	Pos  ast.Position
	Text string
}

func (e *UnsupportedFeatureError) Error() string {
	return fmt.Sprintf("%s: unsupported type arguments in %q", e.Pos, e.Text)
}

// UnsupportedNodeError is returned when a node with no compilation rule is
// found below the top level of a file.
type UnsupportedNodeError struct {
	Kind ast.Kind
	Pos  ast.Position
	Text string
}

func (e *UnsupportedNodeError) Error() string {
	return fmt.Sprintf("%s: unsupported %s %q", e.Pos, e.Kind, e.Text)
}

// DuplicateExportError is returned when two declarations of one file
// resolve to the same exported name.
type DuplicateExportError struct {
	Name     string
	Pos      ast.Position
	Previous ast.Position
}

func (e *DuplicateExportError) Error() string {
	return fmt.Sprintf("%s: duplicate export %q (previously declared at %s)", e.Pos, e.Name, e.Previous)
}
