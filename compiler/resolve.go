package compiler

import "github.com/rubiojr/shapegen/ast"

// unknownName is used for any name the resolver cannot find.
const unknownName = "unknown"

// SymbolResolver maps a name-bearing node to its declared name.
// *binder.Session implements it.
type SymbolResolver interface {
	ResolveName(n ast.Node) (string, bool)
}

func resolveName(r SymbolResolver, n ast.Node) string {
	if r == nil || n == nil {
		return unknownName
	}
	if name, ok := r.ResolveName(n); ok {
		return name
	}
	return unknownName
}
