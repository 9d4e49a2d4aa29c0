package compiler

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rubiojr/shapegen/ast"
	"github.com/rubiojr/shapegen/binder"
	"github.com/rubiojr/shapegen/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to parse and compile source with a fresh session.
func compile(t *testing.T, src string) *Module {
	t.Helper()
	m, err := compileWith(t, New(), src)
	require.NoError(t, err)
	return m
}

func compileWith(t *testing.T, c *Compiler, src string) (*Module, error) {
	t.Helper()
	f, err := parser.Parse("test.ts", src)
	require.NoError(t, err)
	return c.Compile(f, binder.New(f))
}

// exprOf compiles src and returns the expression of the single export.
func exprOf(t *testing.T, src string) Expr {
	t.Helper()
	m := compile(t, src)
	require.Len(t, m.Exports, 1)
	return m.Exports[0].Expr
}

func ref(name string) Ref { return Ref{Name: name} }

func TestEndToEndInterface(t *testing.T) {
	m := compile(t, `export interface Point {
  x: number;
  y: number;
  label?: string;
}`)
	require.Len(t, m.Exports, 1)
	assert.Equal(t, "Point", m.Exports[0].Name)
	assert.Equal(t, Iface{
		Extends: []Expr{},
		Members: []Member{
			{Name: "x", Type: ref("number")},
			{Name: "y", Type: ref("number")},
			{Name: "label", Type: Opt{Inner: ref("string")}},
		},
	}, m.Exports[0].Expr)

	out := Print(m)
	assert.Contains(t, out, "const exportedTypeSuite: t.ITypeSuite = {\n  Point,\n};\n")
}

func TestEndToEndDeferredAlias(t *testing.T) {
	m := compile(t, `type Later = Promise<string>;`)
	require.Len(t, m.Exports, 1)
	assert.Equal(t, "Later", m.Exports[0].Name)
	assert.Equal(t, ref("string"), m.Exports[0].Expr)
}

func TestEndToEndHeritage(t *testing.T) {
	e := exprOf(t, `interface C extends A, B {}`)
	assert.Equal(t, Iface{Extends: []Expr{ref("A"), ref("B")}, Members: []Member{}}, e)
}

func TestOptionalWrapsOnce(t *testing.T) {
	e := exprOf(t, `interface O {
  a?: string | undefined;
  b?: Promise<number>;
  c?: (string);
  d?: { e?: boolean };
  f?;
}`)
	members := e.(Iface).Members
	require.Len(t, members, 5)
	assert.Equal(t, Opt{Inner: Union{Members: []Expr{ref("string"), ref("undefined")}}}, members[0].Type)
	assert.Equal(t, Opt{Inner: ref("number")}, members[1].Type)
	assert.Equal(t, Opt{Inner: ref("string")}, members[2].Type)
	assert.Equal(t, Opt{Inner: Iface{
		Extends: []Expr{},
		Members: []Member{{Name: "e", Type: Opt{Inner: ref("boolean")}}},
	}}, members[3].Type)
	assert.Equal(t, Opt{Inner: ref("any")}, members[4].Type)
}

func TestDeferredWrapperIsTransparent(t *testing.T) {
	srcs := map[string]string{
		"string[]":            "Promise<string[]>",
		"{ a: number }":       "Promise<{ a: number }>",
		"boolean":             "Promise<Promise<boolean>>",
		"(x: string) => void": "Promise<(x: string) => void>",
	}
	for direct, wrapped := range srcs {
		assert.Equal(t, exprOf(t, "type T = "+direct+";"), exprOf(t, "type T = "+wrapped+";"), wrapped)
	}
}

func TestCustomDeferredWrapper(t *testing.T) {
	c := &Compiler{Options: Options{DeferredWrapper: "Deferred"}}
	m, err := compileWith(t, c, `type A = Deferred<string>;`)
	require.NoError(t, err)
	assert.Equal(t, ref("string"), m.Exports[0].Expr)

	_, err = compileWith(t, c, `type B = Promise<string>;`)
	var fe *UnsupportedFeatureError
	assert.ErrorAs(t, err, &fe)

	c = &Compiler{}
	_, err = compileWith(t, c, `type C = Promise<string>;`)
	assert.ErrorAs(t, err, &fe)
}

func TestTypeArgumentsUnsupported(t *testing.T) {
	tests := []struct {
		src  string
		text string
	}{
		{`type A = Array<string>;`, "Array<string>"},
		{`type B = Promise<string, number>;`, "Promise<string, number>"},
		{`interface C { m: Map<string, number> }`, "Map<string, number>"},
		{`type D = { f(): Set<number> };`, "Set<number>"},
		{`type E = ns.Box<string>;`, "ns.Box<string>"},
	}
	for _, tt := range tests {
		_, err := compileWith(t, New(), tt.src)
		var fe *UnsupportedFeatureError
		if assert.ErrorAs(t, err, &fe, tt.src) {
			assert.Equal(t, tt.text, fe.Text)
			assert.Equal(t, 1, fe.Pos.Line)
		}
	}
}

func TestOrderPreserved(t *testing.T) {
	e := exprOf(t, `interface I { c: string; a: string; b: string }`)
	var names []string
	for _, m := range e.(Iface).Members {
		names = append(names, m.Name)
	}
	assert.Equal(t, []string{"c", "a", "b"}, names)

	e = exprOf(t, `type U = Z | X | Y | X;`)
	assert.Equal(t, Union{Members: []Expr{ref("Z"), ref("X"), ref("Y"), ref("X")}}, e)

	e = exprOf(t, `type T = [Z, X, Y];`)
	assert.Equal(t, Tuple{Elems: []Expr{ref("Z"), ref("X"), ref("Y")}}, e)
}

func TestHeritageTypeArgumentsIgnored(t *testing.T) {
	plain := compile(t, `interface A extends B, ns.C { x: string }`)
	generic := compile(t, `interface A extends B<string>, ns.C<Map<K, V>> { x: string }`)
	assert.Equal(t, plain.Exports[0].Expr, generic.Exports[0].Expr)
	assert.Equal(t, []Expr{ref("B"), ref("ns.C")}, generic.Exports[0].Expr.(Iface).Extends)
}

func TestTopLevelUnsupportedSkipped(t *testing.T) {
	bare := compile(t, `interface A { a: string }
type B = number;
`)
	mixed := compile(t, `import { x } from "./x";
interface A { a: string }
export enum Color { Red, Green }
declare function f(a: string): void;
export class K { m(): void {} }
type B = number;
export const c = 1;
namespace N { export type Hidden = string; }
export default A;
`)
	assert.Equal(t, bare.Exports[0].Expr, mixed.Exports[0].Expr)
	assert.Equal(t, bare.Exports[1].Expr, mixed.Exports[1].Expr)
	require.Len(t, mixed.Exports, 2)
	assert.Equal(t, "A", mixed.Exports[0].Name)
	assert.Equal(t, "B", mixed.Exports[1].Name)
	assert.Equal(t, 0, bare.Skipped)
	assert.Equal(t, 7, mixed.Skipped)
}

func TestRegexLiteralsSkipped(t *testing.T) {
	for _, src := range []string{
		"const re = /'/;\nexport interface A { x: number }",
		"const re = /\\/\\//g;\nexport interface A { x: number }",
	} {
		res, err := New().CompileSource(src, "regex.ts")
		require.NoError(t, err, src)
		require.Len(t, res.Module.Exports, 1)
		assert.Equal(t, "A", res.Module.Exports[0].Name)
		assert.Equal(t, 1, res.Module.Skipped)
	}
}

func TestUnsupportedNested(t *testing.T) {
	tests := []struct {
		src  string
		kind ast.Kind
		text string
	}{
		{`type K = keyof T;`, ast.KindTypeOperator, "keyof T"},
		{`type I = A & B;`, ast.KindIntersectionType, "A & B"},
		{`interface X { [k: string]: number }`, ast.KindIndexSignature, "[k: string]: number"},
		{`interface X { (a: string): void }`, ast.KindCallSignature, "(a: string): void"},
		{`type U = unknown;`, ast.KindUnknownKeyword, "unknown"},
		{`type Q = typeof x;`, ast.KindTypeQuery, "typeof x"},
		{`type A = T["k"];`, ast.KindIndexedAccessType, `T["k"]`},
		{`type N = new () => X;`, ast.KindConstructorType, "new () => X"},
		{"type L = `a${B}`;", ast.KindTemplateLiteralType, "`a${B}`"},
		{`type M = { [K in Keys]: string };`, ast.KindMappedType, "{ [K in Keys]: string }"},
		{`type T = [a: string];`, ast.KindNamedTupleMember, "a: string"},
	}
	for _, tt := range tests {
		_, err := compileWith(t, New(), tt.src)
		var ne *UnsupportedNodeError
		if assert.ErrorAs(t, err, &ne, tt.src) {
			assert.Equal(t, tt.kind, ne.Kind, tt.src)
			assert.Equal(t, tt.text, ne.Text, tt.src)
		}
	}
}

func TestFailureDiscardsOutput(t *testing.T) {
	res, err := New().CompileSource(`interface Ok { a: string }
type Bad = Array<string>;
interface AlsoOk { b: string }
`, "bad.ts")
	assert.Nil(t, res)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.ts:2:")
}

func TestDuplicateExport(t *testing.T) {
	_, err := compileWith(t, New(), `interface A { a: string }
type A = string;
`)
	var de *DuplicateExportError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "A", de.Name)
	assert.Equal(t, 2, de.Pos.Line)
	assert.Equal(t, 1, de.Previous.Line)
}

func TestMethods(t *testing.T) {
	e := exprOf(t, `interface S {
  get(key: string, fallback?: number): boolean;
  untyped(x);
  rest(...xs: string[]): void;
}`)
	members := e.(Iface).Members
	require.Len(t, members, 3)
	assert.Equal(t, Member{Name: "get", Type: Func{
		Result: ref("boolean"),
		Params: []Param{
			{Name: "key", Type: ref("string")},
			{Name: "fallback", Type: ref("number"), Optional: true},
		},
	}}, members[0])
	assert.Equal(t, Func{Result: ref("any"), Params: []Param{{Name: "x", Type: ref("any")}}}, members[1].Type)
	assert.Equal(t, Func{Result: ref("void"), Params: []Param{{Name: "xs", Type: Array{Elem: ref("string")}}}}, members[2].Type)
}

func TestFunctionType(t *testing.T) {
	e := exprOf(t, `type F = (a: number, { b }: Opts) => Promise<void>;`)
	assert.Equal(t, Func{
		Result: ref("void"),
		Params: []Param{
			{Name: "a", Type: ref("number")},
			{Name: "unknown", Type: ref("Opts")},
		},
	}, e)
}

func TestLiterals(t *testing.T) {
	e := exprOf(t, `type L = "a" | 'b\'' | 42 | -1 | 0x1F | true | false;`)
	assert.Equal(t, Union{Members: []Expr{
		Literal{Raw: `"a"`},
		Literal{Raw: `'b\''`},
		Literal{Raw: "42"},
		Literal{Raw: "-1"},
		Literal{Raw: "0x1F"},
		Literal{Raw: "true"},
		Literal{Raw: "false"},
	}}, e)
}

func TestArraysAndTuples(t *testing.T) {
	e := exprOf(t, `type T = [string, number[][], (A | B)[]];`)
	assert.Equal(t, Tuple{Elems: []Expr{
		ref("string"),
		Array{Elem: Array{Elem: ref("number")}},
		Array{Elem: Union{Members: []Expr{ref("A"), ref("B")}}},
	}}, e)
}

func TestKeywords(t *testing.T) {
	names := []string{"any", "number", "object", "boolean", "string", "symbol", "this", "void", "undefined", "null", "never"}
	for _, name := range names {
		assert.Equal(t, ref(name), exprOf(t, "type K = "+name+";"), name)
	}
}

func TestReferences(t *testing.T) {
	assert.Equal(t, ref("Other"), exprOf(t, `type A = Other;`))
	assert.Equal(t, ref("ns.inner.Other"), exprOf(t, `type A = ns . inner.Other;`))
	assert.Equal(t, ref("Other"), exprOf(t, `type A = ((Other));`))
}

func TestMemberNames(t *testing.T) {
	e := exprOf(t, `interface N {
  "a-b": string;
  'c': string;
  0x10: string;
  [Symbol.iterator]: string;
}`)
	var names []string
	for _, m := range e.(Iface).Members {
		names = append(names, m.Name)
	}
	assert.Equal(t, []string{"a-b", "c", "16", "unknown"}, names)
}

type stubResolver map[string]string

func (s stubResolver) ResolveName(n ast.Node) (string, bool) {
	name, ok := s[n.Text()]
	return name, ok
}

func TestResolverFallback(t *testing.T) {
	f, err := parser.Parse("test.ts", `interface A { b: string }`)
	require.NoError(t, err)

	m, err := New().Compile(f, nil)
	require.NoError(t, err)
	assert.Equal(t, "unknown", m.Exports[0].Name)
	assert.Equal(t, "unknown", m.Exports[0].Expr.(Iface).Members[0].Name)

	m, err = New().Compile(f, stubResolver{"A": "Renamed"})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", m.Exports[0].Name)
	assert.Equal(t, "unknown", m.Exports[0].Expr.(Iface).Members[0].Name)
}

func TestDeterministic(t *testing.T) {
	src := `interface A extends B { x: number; y?: { z: string[] } }
type C = "a" | "b" | Promise<A>;
`
	first, err := New().CompileSource(src, "a.ts")
	require.NoError(t, err)
	second, err := New().CompileSource(src, "a.ts")
	require.NoError(t, err)
	assert.Equal(t, first.Source, second.Source)
	assert.Equal(t, first.Module, second.Module)
}

func TestCompileFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "point.ts")
	require.NoError(t, os.WriteFile(path, []byte("export interface Point { x: number }\n"), 0o644))

	res, err := New().CompileFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, res.SourceFile)
	assert.Equal(t, path, res.Module.FileName)
	assert.Contains(t, res.Source, `export const Point = t.iface([], {`)

	out, err := New().Emit(path)
	require.NoError(t, err)
	assert.Equal(t, res.Source, out)

	_, err = New().Emit(filepath.Join(dir, "missing.ts"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Contains(t, err.Error(), "reading ")
}

func TestCompileSourceParseError(t *testing.T) {
	_, err := New().CompileSource("interface {", "broken.ts")
	var pe *parser.Error
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "broken.ts", pe.Pos.Filename)
}

func TestExamplesCompile(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("..", "examples", "*.ts"))
	require.NoError(t, err)
	require.NotEmpty(t, paths)
	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			res, err := New().CompileFile(path)
			require.NoError(t, err)
			assert.NotEmpty(t, res.Module.Exports)
		})
	}
}
