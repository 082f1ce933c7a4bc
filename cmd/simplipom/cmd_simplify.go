package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	"golang.org/x/sync/errgroup"

	"github.com/dhamidi/simplipom/pom"
	"github.com/dhamidi/simplipom/project"
	"github.com/dhamidi/simplipom/simplify"
)

type runOptions struct {
	settingsFlags
	recursive bool
	stdout    bool

	// afterOnly regenerates the descriptor with the afterSimplify phase
	// only.
	afterOnly bool
}

// outcome is the result of processing one build unit.
type outcome struct {
	module  *project.Module
	output  string
	report  *simplify.Report
	written bool
	skipped bool
}

func newSimplifyCmd() *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "simplify [pom.xml|dir]",
		Short: "Write the simplified descriptor of a build unit",
		Long: `Rewrite pom.xml into a minimal standalone descriptor, next to the input
as .simplified-pom.xml by default.

The simplify mode is picked from the packaging and the artifactId unless
given with --mode. Settings are read, in increasing precedence, from the
easyj-maven-plugin configuration in the descriptor, from .simplipom.yaml
and from the command line.

Examples:
  simplipom simplify
  simplipom simplify --mode bom --expand-import path/to/bom
  simplipom simplify --recursive --tabs

Environment variables:
  MAVEN_REPO_URL - Repository for remote parents and imported BOMs (default: https://repo1.maven.org/maven2)
  SIMPLIPOM_MODE - Default simplify mode`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimplify(cmd.Context(), opts, args)
		},
	}

	opts.bindRun(cmd)
	return cmd
}

func newCreatePOMFileCmd() *cobra.Command {
	opts := &runOptions{afterOnly: true}

	cmd := &cobra.Command{
		Use:   "create-pom-file [pom.xml|dir]",
		Short: "Write the descriptor with resolved revisions and coordinates only",
		Long: `Regenerate pom.xml without simplifying it: the parent revision is
replaced, identity duplicated from the parent is removed and dependency
coordinates are resolved.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimplify(cmd.Context(), opts, args)
		},
	}

	opts.bindRun(cmd)
	return cmd
}

func (o *runOptions) bindRun(cmd *cobra.Command) {
	o.bind(cmd.Flags())
	cmd.Flags().BoolVarP(&o.recursive, "recursive", "r", false, "process every module listed under <modules>")
	cmd.Flags().BoolVar(&o.stdout, "stdout", false, "print the descriptor instead of writing it")
}

func runSimplify(ctx context.Context, opts *runOptions, args []string) error {
	if opts.recursive && opts.stdout {
		return errors.New("--stdout cannot be combined with --recursive")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	path, err := pomPath(args)
	if err != nil {
		return err
	}
	modules, err := modulesOf(path, opts.recursive)
	if err != nil {
		return err
	}

	results := make([]outcome, len(modules))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, m := range modules {
		i, m := i, m
		g.Go(func() error {
			res, err := opts.process(ctx, m)
			if err != nil {
				return fmt.Errorf("%s: %w", m.POMFile, err)
			}
			results[i] = res
			return nil
		})
	}
	err = g.Wait()

	if opts.stdout {
		return err
	}
	for _, res := range results {
		if res.module != nil {
			printOutcome(res)
		}
	}
	return err
}

func (o *runOptions) process(ctx context.Context, m *project.Module) (outcome, error) {
	log := commonlog.GetLogger("simplipom.cmd")
	res := outcome{module: m}

	r, s, err := o.load(ctx, m.POMFile)
	if err != nil {
		return res, err
	}
	if s.Skip {
		log.Infof("Skip %s.", m.POMFile)
		res.skipped = true
		return res, nil
	}
	if r.Original.ModelEncoding == "" {
		log.Warningf("%s declares no encoding, writing it as %s.", m.POMFile, pom.DefaultEncoding)
	}

	if o.afterOnly {
		res.report, err = simplify.AfterSimplifyOnly(r, nil)
	} else {
		res.report, err = simplify.Simplify(r, s.SimplifyConfig(), nil)
	}
	if err != nil {
		return res, err
	}

	w := s.Writer()
	if o.stdout {
		data, err := w.Marshal(r.Original)
		if err != nil {
			return res, err
		}
		_, err = os.Stdout.Write(data)
		return res, err
	}

	res.output = outputPath(m, s)
	res.written, err = w.WriteFile(res.output, r.Original)
	if err != nil {
		return res, fmt.Errorf("write %s: %w", res.output, err)
	}
	if !res.written {
		log.Debugf("%s is up to date.", res.output)
	}
	return res, nil
}

func printOutcome(res outcome) {
	name := res.module.Name
	switch {
	case res.skipped:
		fmt.Printf("%s: skipped\n", name)
		return
	case res.written:
		fmt.Printf("%s: %s -> %s\n", name, res.report.Mode, res.output)
	default:
		fmt.Printf("%s: %s -> %s (unchanged)\n", name, res.report.Mode, res.output)
	}
	for _, w := range res.report.Warnings {
		fmt.Printf("  warning: %s\n", w)
	}
}
