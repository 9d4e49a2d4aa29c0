// Package compiler turns parsed TypeScript declarations into
// ts-interface-checker validator expressions and renders them as a
// TypeScript module.
package compiler

import (
	"fmt"
	"os"

	"github.com/rubiojr/shapegen/ast"
	"github.com/rubiojr/shapegen/binder"
	"github.com/rubiojr/shapegen/parser"
)

// DefaultDeferredWrapper is the generic type unwrapped by default:
// Promise<T> validates as T.
const DefaultDeferredWrapper = "Promise"

// Options control compilation.
type Options struct {
	// DeferredWrapper names the single-argument generic that is replaced
	// by its argument. Empty disables unwrapping.
	DeferredWrapper string
}

// Compiler orchestrates the parse, bind, compile and print pipeline.
// A Compiler holds no per-file state and may be shared between goroutines.
type Compiler struct {
	Options Options
}

// New returns a Compiler using the default options.
func New() *Compiler {
	return &Compiler{Options: Options{DeferredWrapper: DefaultDeferredWrapper}}
}

// Module is the compiled form of one source file.
type Module struct {
	FileName string
	Exports  []Export
	// Skipped counts top-level statements that produced no export.
	Skipped int
}

// CompileResult holds the output of a compilation.
type CompileResult struct {
	Source     string
	Module     *Module
	Tree       *ast.SourceFile
	SourceFile string // original .ts filename
}

// Compile compiles a parsed file. The resolver supplies declaration and
// member names; a nil resolver names everything "unknown". On error no
// module is returned.
func (c *Compiler) Compile(file *ast.SourceFile, r SymbolResolver) (*Module, error) {
	nc := &nodeCompiler{resolver: r, wrapper: c.Options.DeferredWrapper}
	if err := nc.file(file); err != nil {
		return nil, err
	}
	return &Module{
		FileName: file.FileName,
		Exports:  nc.manifest.Exports(),
		Skipped:  nc.skipped,
	}, nil
}

// CompileSource parses, binds and compiles src. name is used in positions
// and error messages.
func (c *Compiler) CompileSource(src, name string) (*CompileResult, error) {
	file, err := parser.Parse(name, src)
	if err != nil {
		return nil, err
	}
	mod, err := c.Compile(file, binder.New(file))
	if err != nil {
		return nil, err
	}
	return &CompileResult{Source: Print(mod), Module: mod, Tree: file, SourceFile: name}, nil
}

// CompileFile reads and compiles a .ts file.
func (c *Compiler) CompileFile(path string) (*CompileResult, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return c.CompileSource(string(src), path)
}

// Emit compiles a .ts file and returns the rendered module.
func (c *Compiler) Emit(path string) (string, error) {
	res, err := c.CompileFile(path)
	if err != nil {
		return "", err
	}
	return res.Source, nil
}
