package compiler

import "github.com/rubiojr/shapegen/ast"

// Export is one named declaration of a compiled file.
type Export struct {
	Name string
	Expr Expr
	Pos  ast.Position
}

// Manifest collects the exports of one file in document order. A fresh
// Manifest is used for every compilation.
type Manifest struct {
	exports []Export
	index   map[string]int
}

// Add appends an export. A name already present is rejected.
func (m *Manifest) Add(name string, e Expr, pos ast.Position) error {
	if m.index == nil {
		m.index = make(map[string]int)
	}
	if i, dup := m.index[name]; dup {
		return &DuplicateExportError{Name: name, Pos: pos, Previous: m.exports[i].Pos}
	}
	m.index[name] = len(m.exports)
	m.exports = append(m.exports, Export{Name: name, Expr: e, Pos: pos})
	return nil
}

// Exports returns the collected exports in the order they were added.
func (m *Manifest) Exports() []Export {
	out := make([]Export, len(m.exports))
	copy(out, m.exports)
	return out
}

// Len reports the number of exports.
func (m *Manifest) Len() int { return len(m.exports) }
