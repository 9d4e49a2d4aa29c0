// Package binder resolves declaration and member names for a parsed file.
//
// A Session indexes the top-level interfaces and type aliases of one
// ast.SourceFile. Declarations sharing a name (interface merging) are bound
// to the same symbol. Sessions are read-only once built and safe for
// concurrent use.
package binder

import (
	"math"
	"strconv"
	"strings"

	"github.com/rubiojr/shapegen/ast"
)

// Session is the symbol table for one source file.
type Session struct {
	file    *ast.SourceFile
	symbols map[string][]ast.Node
	order   []string
}

// New indexes the top-level type declarations of file.
func New(file *ast.SourceFile) *Session {
	s := &Session{file: file, symbols: make(map[string][]ast.Node)}
	for _, stmt := range file.Statements {
		var name *ast.Identifier
		switch d := stmt.(type) {
		case *ast.InterfaceDeclaration:
			name = d.Name
		case *ast.TypeAliasDeclaration:
			name = d.Name
		}
		if name == nil {
			continue
		}
		if _, seen := s.symbols[name.Name]; !seen {
			s.order = append(s.order, name.Name)
		}
		s.symbols[name.Name] = append(s.symbols[name.Name], stmt)
	}
	return s
}

// File returns the file the session was built from.
func (s *Session) File() *ast.SourceFile { return s.file }

// ResolveName returns the declared name of a name node. Identifiers
// resolve to their text, string literals to their value and numeric
// literals to their canonical number text. Computed names, binding
// patterns and any other node do not resolve.
func (s *Session) ResolveName(n ast.Node) (string, bool) {
	switch v := n.(type) {
	case *ast.Identifier:
		if v == nil || v.Name == "" {
			return "", false
		}
		return v.Name, true
	case *ast.StringLiteral:
		if v == nil {
			return "", false
		}
		return v.Value, true
	case *ast.NumericLiteral:
		if v == nil {
			return "", false
		}
		return CanonicalNumber(v.Value)
	}
	return "", false
}

// Lookup returns the declarations bound to a top-level name, in source
// order.
func (s *Session) Lookup(name string) []ast.Node {
	return s.symbols[name]
}

// Names lists the top-level symbols in order of first declaration.
func (s *Session) Names() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// CanonicalNumber converts a numeric literal to the text a JavaScript
// engine would use for the same property key: 0x10 is "16", 1.50 is
// "1.5" and 1e21 is "1e+21".
func CanonicalNumber(lit string) (string, bool) {
	lit = strings.ReplaceAll(lit, "_", "")
	if strings.HasSuffix(lit, "n") {
		n, err := strconv.ParseInt(strings.TrimSuffix(lit, "n"), 0, 64)
		if err != nil {
			return "", false
		}
		return strconv.FormatInt(n, 10), true
	}

	var f float64
	if len(lit) > 1 && lit[0] == '0' && strings.ContainsAny(lit[1:2], "xXoObB") {
		n, err := strconv.ParseUint(lit, 0, 64)
		if err != nil {
			return "", false
		}
		f = float64(n)
	} else {
		var err error
		f, err = strconv.ParseFloat(lit, 64)
		if err != nil {
			return "", false
		}
	}

	abs := math.Abs(f)
	if abs != 0 && (abs >= 1e21 || abs < 1e-6) {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		s = strings.Replace(s, "e+0", "e+", 1)
		s = strings.Replace(s, "e-0", "e-", 1)
		return s, true
	}
	return strconv.FormatFloat(f, 'f', -1, 64), true
}
