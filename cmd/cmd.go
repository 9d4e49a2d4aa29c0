package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/urfave/cli/v3"

	"github.com/rubiojr/shapegen/ast"
	"github.com/rubiojr/shapegen/compiler"
	"github.com/rubiojr/shapegen/config"
	"github.com/rubiojr/shapegen/parser"
)

// errNoInput is returned when the root command is run without files.
var errNoInput = errors.New("no input files")

func init() {
	// -v is --verbose.
	cli.VersionFlag = &cli.BoolFlag{
		Name:        "version",
		Usage:       "print the version",
		HideDefault: true,
		Local:       true,
	}
}

// Execute runs the shapegen CLI with the given version string.
func Execute(version string) {
	cmd := newCommand(version)
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newCommand(version string) *cli.Command {
	return &cli.Command{
		Name:                   "shapegen",
		Usage:                  "Generate ts-interface-checker validators from TypeScript declarations",
		ArgsUsage:              "<file.ts>...",
		Version:                version,
		UseShortOptionHandling: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "suffix",
				Aliases: []string{"s"},
				Usage:   "Suffix appended to generated file names",
				Value:   config.DefaultSuffix,
			},
			&cli.StringFlag{
				Name:    "outDir",
				Aliases: []string{"o"},
				Usage:   "Directory for generated files (default: beside each source file)",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Log each compiled file",
			},
			&cli.BoolFlag{
				Name:    "changed-only",
				Aliases: []string{"c"},
				Usage:   "Skip files whose output is newer than the source",
			},
			&cli.IntFlag{
				Name:    "jobs",
				Aliases: []string{"j"},
				Usage:   "Files compiled in parallel",
				Value:   1,
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "Path to a YAML config file (default: ./" + config.FileName + ")",
			},
		},
		Action: generateAction,
		Commands: []*cli.Command{
			{
				Name:      "emit",
				Usage:     "Print the generated module for a file",
				ArgsUsage: "<file.ts>",
				Action:    emitAction,
			},
			{
				Name:      "dump",
				Usage:     "Print the parsed declaration tree of a file",
				ArgsUsage: "<file.ts>",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "raw",
						Usage: "Dump every node field instead of an outline",
					},
				},
				Action: dumpAction,
			},
		},
	}
}

// loadConfig reads the config file and applies any flags given on the
// command line on top of it.
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, err
	}
	if cmd.IsSet("suffix") {
		cfg.Suffix = cmd.String("suffix")
	}
	if cmd.IsSet("outDir") {
		cfg.OutDir = cmd.String("outDir")
	}
	if cmd.IsSet("verbose") {
		cfg.Verbose = cmd.Bool("verbose")
	}
	if cmd.IsSet("changed-only") {
		cfg.ChangedOnly = cmd.Bool("changed-only")
	}
	if cmd.IsSet("jobs") {
		cfg.Jobs = cmd.Int("jobs")
	}
	if cfg.Jobs < 1 {
		cfg.Jobs = 1
	}
	return cfg, nil
}

func generateAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() == 0 {
		if err := cli.ShowRootCommandHelp(cmd); err != nil {
			return err
		}
		return errNoInput
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	d := &driver{
		compiler:    &compiler.Compiler{Options: cfg.Options()},
		suffix:      cfg.Suffix,
		outDir:      cfg.OutDir,
		changedOnly: cfg.ChangedOnly,
		jobs:        cfg.Jobs,
		log:         newLogger(errWriter(cmd), cfg.Verbose),
	}
	results, err := d.run(ctx, cmd.Args().Slice())
	if err != nil {
		return err
	}
	return report(errWriter(cmd), results)
}

func emitAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() < 1 {
		return fmt.Errorf("usage: shapegen emit <file.ts>")
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	comp := &compiler.Compiler{Options: cfg.Options()}
	src, err := comp.Emit(cmd.Args().First())
	if err != nil {
		return err
	}
	_, err = io.WriteString(writer(cmd), src)
	return err
}

func dumpAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() < 1 {
		return fmt.Errorf("usage: shapegen dump <file.ts>")
	}
	file, err := parser.ParseFile(cmd.Args().First())
	if err != nil {
		return err
	}
	if cmd.Bool("raw") {
		cs := spew.ConfigState{
			Indent:                  "  ",
			DisablePointerAddresses: true,
			DisableCapacities:       true,
		}
		cs.Fdump(writer(cmd), file)
		return nil
	}
	printOutline(writer(cmd), file, 0)
	return nil
}

// printOutline writes one line per node: kind, position and a short
// excerpt of its source, indented by depth.
func printOutline(w io.Writer, n ast.Node, depth int) {
	text := n.Text()
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[:i] + "..."
	}
	if len(text) > 60 {
		text = text[:57] + "..."
	}
	fmt.Fprintf(w, "%s%s %d:%d %q\n", strings.Repeat("  ", depth), n.Kind(), n.Pos().Line, n.Pos().Column, text)
	for _, c := range ast.Children(n) {
		printOutline(w, c, depth+1)
	}
}

func writer(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

func errWriter(cmd *cli.Command) io.Writer {
	if w := cmd.Root().ErrWriter; w != nil {
		return w
	}
	return os.Stderr
}
