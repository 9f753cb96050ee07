package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rubiojr/jsexport/config"
	"github.com/rubiojr/jsexport/conversion"
	"github.com/rubiojr/jsexport/exports"
	"github.com/rubiojr/jsexport/jsinterop"
	"github.com/rubiojr/jsexport/model"
	"github.com/rubiojr/jsexport/writer"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// Execute runs the jsexport CLI with the given version string.
func Execute(version string) {
	cmd := &cli.Command{
		Name:                   "jsexport",
		Usage:                  "Generate JS interop bridges for exported compiled classes",
		Version:                version,
		UseShortOptionHandling: true,
		// Allow `jsexport program.yaml` as shorthand for `jsexport emit program.yaml`
		Flags: emitFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() > 0 {
				return emitAction(ctx, cmd)
			}
			return cli.DefaultShowRootCommandHelp(cmd)
		},
		Commands: []*cli.Command{
			{
				Name:      "emit",
				Usage:     "Generate the bridge script for a compiled program",
				ArgsUsage: "<program.yaml|program.json|program.cbor>",
				Flags:     emitFlags(),
				Action:    emitAction,
			},
			{
				Name:      "tree",
				Usage:     "Print the JS namespace tree of exported classes",
				ArgsUsage: "<program>",
				Flags:     commonFlags(),
				Action:    treeAction,
			},
			{
				Name:      "list",
				Usage:     "List exported classes and how each member is attached",
				ArgsUsage: "<program>",
				Flags:     commonFlags(),
				Action:    listAction,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", errorPrefix(), err)
		os.Exit(1)
	}
}

func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Configuration file (default: ./" + config.FileName + " if present)",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "Log generation details to stderr",
		},
	}
}

func emitFlags() []cli.Flag {
	return append(commonFlags(),
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output file (default: stdout)",
		},
		&cli.BoolFlag{
			Name:    "minify",
			Aliases: []string{"m"},
			Usage:   "Drop optional whitespace and line breaks",
		},
	)
}

// errorPrefix colours the prefix only when stderr is a terminal.
func errorPrefix() string {
	if os.Getenv("NO_COLOR") != "" || !term.IsTerminal(int(os.Stderr.Fd())) {
		return "error:"
	}
	return "\033[31merror:\033[0m"
}

// setup loads the configuration and program named on the command line.
func setup(cmd *cli.Command) (*model.Program, *config.Config, error) {
	if cmd.NArg() < 1 {
		return nil, nil, fmt.Errorf("usage: jsexport %s <program>", cmd.Name)
	}
	if cmd.Bool("verbose") {
		l, err := zap.NewDevelopment()
		if err != nil {
			return nil, nil, fmt.Errorf("creating logger: %w", err)
		}
		jsinterop.SetLogger(l)
	}

	var cfg *config.Config
	var err error
	if path := cmd.String("config"); path != "" {
		cfg, err = config.Load(path)
	} else {
		cfg, err = config.FindAndLoad(".")
	}
	if err != nil {
		return nil, nil, err
	}

	prog, err := model.LoadFile(cmd.Args().First())
	if err != nil {
		return nil, nil, err
	}
	return prog, cfg, nil
}

func emitAction(ctx context.Context, cmd *cli.Command) error {
	prog, cfg, err := setup(cmd)
	if err != nil {
		return err
	}
	if cmd.Bool("minify") {
		cfg.Output.Minify = true
	}
	if out := cmd.String("output"); out != "" {
		cfg.Output.Path = out
	}

	w, report, err := generate(prog, cfg)
	if err != nil {
		return err
	}
	if len(report.Skipped) > 0 {
		fmt.Fprintf(os.Stderr, "warning: skipped %d class(es) without a descriptor: %s\n",
			len(report.Skipped), strings.Join(report.Skipped, ", "))
	}
	if cfg.Output.Path == "" {
		_, err = w.WriteTo(os.Stdout)
		return err
	}
	return writeFile(cfg.Output.Path, w)
}

// generate runs one pass over prog with the writer and runtime helpers
// described by cfg.
func generate(prog *model.Program, cfg *config.Config) (*writer.Writer, jsinterop.Report, error) {
	w := writer.New(nil, writer.Options{Minified: cfg.Output.Minify, Indent: cfg.Output.Indent})
	pp := &jsinterop.PostProcessor{
		NewConverter: func(w *writer.Writer) jsinterop.Converter {
			return conversion.New(w, cfg.Runtime)
		},
	}
	pp.Begin(prog, w)
	report, err := pp.Complete()
	if err != nil {
		return nil, report, err
	}
	return w, report, nil
}

func writeFile(path string, w *writer.Writer) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if _, err := w.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

func treeAction(ctx context.Context, cmd *cli.Command) error {
	prog, _, err := setup(cmd)
	if err != nil {
		return err
	}
	classes, _ := jsinterop.Collect(prog, exports.New(prog))
	fmt.Print(jsinterop.BuildNamespaces(classes).String())
	return nil
}

func listAction(ctx context.Context, cmd *cli.Command) error {
	prog, cfg, err := setup(cmd)
	if err != nil {
		return err
	}
	return list(os.Stdout, prog, cfg)
}

// list prints every exported class followed by its constructor and members.
func list(out io.Writer, prog *model.Program, cfg *config.Config) error {
	classes, _ := jsinterop.Collect(prog, exports.New(prog))
	// ShouldWrap only inspects signatures; nothing is written.
	conv := conversion.New(writer.New(nil, writer.Options{}), cfg.Runtime)
	for _, cls := range classes {
		if _, err := fmt.Fprintf(out, "%s (%s)\n", cls.FQN(), cls.Name); err != nil {
			return err
		}
		if cls.Constructor != nil {
			fmt.Fprintf(out, "  constructor/%d\n", cls.Constructor.ParameterCount())
		}
		for _, m := range cls.Members {
			kind := "instance"
			if m.Static {
				kind = "static"
			}
			fmt.Fprintf(out, "  %s %s/%d: %s\n", kind, m.JSName, m.ParameterCount(), jsinterop.StrategyFor(m, conv))
		}
	}
	return nil
}
