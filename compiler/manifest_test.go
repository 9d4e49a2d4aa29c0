package compiler

import (
	"testing"

	"github.com/rubiojr/shapegen/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManifestOrder(t *testing.T) {
	var m Manifest
	require.NoError(t, m.Add("B", Ref{Name: "string"}, ast.Position{Line: 1}))
	require.NoError(t, m.Add("A", Ref{Name: "number"}, ast.Position{Line: 2}))
	require.NoError(t, m.Add("C", Ref{Name: "any"}, ast.Position{Line: 3}))

	var names []string
	for _, e := range m.Exports() {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"B", "A", "C"}, names)
	assert.Equal(t, 3, m.Len())
}

func TestManifestRejectsDuplicates(t *testing.T) {
	var m Manifest
	require.NoError(t, m.Add("A", Ref{Name: "string"}, ast.Position{Line: 1, Column: 1}))
	err := m.Add("A", Ref{Name: "number"}, ast.Position{Filename: "x.ts", Line: 4, Column: 1})

	var de *DuplicateExportError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, 1, de.Previous.Line)
	assert.EqualError(t, err, `x.ts:4:1: duplicate export "A" (previously declared at 1:1)`)
	assert.Equal(t, 1, m.Len())
}

func TestManifestExportsIsACopy(t *testing.T) {
	var m Manifest
	require.NoError(t, m.Add("A", Ref{Name: "string"}, ast.Position{}))
	out := m.Exports()
	out[0].Name = "changed"
	assert.Equal(t, "A", m.Exports()[0].Name)
}
