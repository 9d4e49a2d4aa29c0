package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/rubiojr/shapegen/ast"
	"github.com/rubiojr/shapegen/compiler"
)

// driver compiles a batch of files, each with its own compilation, and
// writes one output file per input.
type driver struct {
	compiler    *compiler.Compiler
	suffix      string
	outDir      string
	changedOnly bool
	jobs        int
	log         zerolog.Logger
}

type fileResult struct {
	Input   string
	Output  string
	Skipped bool
	Err     error
}

// run compiles paths with at most d.jobs files in flight. A failing file
// does not stop the others; its error is kept in its result. The returned
// error is only set when ctx is cancelled.
func (d *driver) run(ctx context.Context, paths []string) ([]fileResult, error) {
	results := make([]fileResult, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(d.jobs, 1))
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = d.compileFile(path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func (d *driver) compileFile(path string) fileResult {
	res := fileResult{Input: path, Output: outputPath(path, d.outDir, d.suffix)}
	log := d.log.With().Str("file", path).Logger()

	if d.changedOnly {
		fresh, err := upToDate(path, res.Output)
		if err != nil {
			res.Err = err
			return res
		}
		if fresh {
			log.Info().Str("output", res.Output).Msg("unchanged, skipping")
			res.Skipped = true
			return res
		}
	}

	start := time.Now()
	out, err := d.compiler.CompileFile(path)
	if err != nil {
		log.Debug().Err(err).Msg("compile failed")
		res.Err = err
		return res
	}
	nodes := 0
	ast.Inspect(out.Tree, func(ast.Node) bool {
		nodes++
		return true
	})
	log.Debug().
		Int("nodes", nodes).
		Int("exports", len(out.Module.Exports)).
		Int("skipped", out.Module.Skipped).
		Dur("took", time.Since(start)).
		Msg("compiled")

	if d.outDir != "" {
		if err := os.MkdirAll(d.outDir, 0o755); err != nil {
			res.Err = fmt.Errorf("creating output directory: %w", err)
			return res
		}
	}
	if err := os.WriteFile(res.Output, []byte(out.Source), 0o644); err != nil {
		res.Err = fmt.Errorf("writing %s: %w", res.Output, err)
		return res
	}
	log.Info().Str("output", res.Output).Msg("generated")
	return res
}

// outputPath returns where the generated module for input is written:
// the input's base name without its extension, plus suffix and ".ts", in
// outDir or next to the input.
func outputPath(input, outDir, suffix string) string {
	base := filepath.Base(input)
	name := strings.TrimSuffix(base, filepath.Ext(base)) + suffix + ".ts"
	if outDir == "" {
		outDir = filepath.Dir(input)
	}
	return filepath.Join(outDir, name)
}

// upToDate reports whether output exists and is newer than input.
func upToDate(input, output string) (bool, error) {
	in, err := os.Stat(input)
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", input, err)
	}
	out, err := os.Stat(output)
	if err != nil {
		return false, nil
	}
	return out.ModTime().After(in.ModTime()), nil
}

// report prints one line per failed file and returns an error when any
// file failed.
func report(w io.Writer, results []fileResult) error {
	failed := 0
	for _, r := range results {
		if r.Err == nil {
			continue
		}
		failed++
		fmt.Fprintf(w, "error: %s: %v\n", r.Input, r.Err)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(results))
	}
	return nil
}
