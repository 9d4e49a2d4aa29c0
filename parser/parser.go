// Package parser turns TypeScript declaration source into an ast.SourceFile.
//
// Only the type-level subset is modelled in detail: interfaces, type
// aliases and every type expression they can contain. Other statements are
// kept as opaque ast.Statement nodes so callers can recognise and skip them.
package parser

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/rubiojr/shapegen/ast"
	"github.com/rubiojr/shapegen/scanner"
)

// Error is a syntax error with the position where parsing stopped.
type Error struct {
	Pos ast.Position
	Msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

// Parse parses src. name is recorded in node positions and errors.
func Parse(name, src string) (*ast.SourceFile, error) {
	blank, err := scanner.BlankComments(src)
	if err != nil {
		var ue *scanner.UnterminatedError
		if errors.As(err, &ue) {
			return nil, &Error{Pos: offsetPosition(name, src, ue.Offset), Msg: "unterminated " + ue.What}
		}
		return nil, err
	}

	tree, err := declParser.ParseString(name, blank)
	if err != nil {
		return nil, syntaxError(name, err)
	}

	l := &lowerer{src: src}
	return l.file(name, tree), nil
}

// ParseFile reads and parses the file at path.
func ParseFile(path string) (*ast.SourceFile, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Parse(path, string(src))
}

func syntaxError(name string, err error) error {
	var perr participle.Error
	if errors.As(err, &perr) {
		return &Error{Pos: position(perr.Position()), Msg: perr.Message()}
	}
	return &Error{Pos: ast.Position{Filename: name}, Msg: err.Error()}
}

func offsetPosition(name, src string, offset int) ast.Position {
	before := src[:offset]
	line := strings.Count(before, "\n") + 1
	col := offset - strings.LastIndex(before, "\n")
	return ast.Position{Filename: name, Offset: offset, Line: line, Column: col}
}
