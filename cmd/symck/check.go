package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/spf13/cobra"

	"symck/internal/ast"
	"symck/internal/check"
	"symck/internal/diag"
	"symck/internal/diagfmt"
	"symck/internal/fixture"
	"symck/internal/loadset"
	"symck/internal/source"
	"symck/internal/symtab"
	"symck/internal/symtype"
)

var checkCmd = &cobra.Command{
	Use:   "check <fixture-file>...",
	Short: "Type-check one or more .smv-shaped fixture files",
	Long: `check loads each fixture file into its own symbol table and
runs CheckLayer, CheckConstraints, and CheckProperty over it, printing
any resulting diagnostics. Multiple files are checked concurrently,
each against its own private table (spec.md §5).`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().Bool("backward-compat", false, "demote back-compat-type and duplicate-constant violations to warnings")
}

func propertyKind(kw string) (check.PropertyKind, bool) {
	switch kw {
	case "spec":
		return check.PropertyCTL, true
	case "ltlspec":
		return check.PropertyLTL, true
	case "pslspec":
		return check.PropertyPSL, true
	case "invarspec":
		return check.PropertyInvar, true
	case "compute":
		return check.PropertyCompute, true
	default:
		return 0, false
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	opts, err := loadOptions(cmd)
	if err != nil {
		return fmt.Errorf("check: %w", err)
	}
	if cmd.Flags().Changed("backward-compat") {
		opts.BackwardCompat, err = cmd.Flags().GetBool("backward-compat")
		if err != nil {
			return err
		}
	}
	jobs, err := cmd.Root().PersistentFlags().GetInt("jobs")
	if err != nil {
		return err
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}

	var fileSets sync.Map // path -> *source.FileSet

	load := func(_ context.Context, path string) (*diag.Bag, error) {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		fs := source.NewFileSet()
		fs.Add(path, content, 0)
		fileSets.Store(path, fs)

		strs := source.NewInterner()
		types := symtype.NewInterner()
		table := symtab.NewTable(types)
		layer := table.NewLayer(path, symtab.PolicyDefault)
		pool := ast.NewPool(0)

		bag := diag.NewBag(maxDiagnostics)
		checker := check.NewChecker(pool, table, strs, diag.BagReporter{Bag: bag})
		checker.BackwardCompat = opts.BackwardCompat

		doc, err := fixture.Load(bytes.NewReader(content), layer, types, pool, strs)
		if err != nil {
			return nil, fmt.Errorf("parsing fixture: %w", err)
		}

		checker.CheckLayer(layer)
		checker.CheckConstraints(doc.Sections.Init, doc.Sections.Trans, doc.Sections.Invar,
			doc.Sections.Assign, doc.Sections.Justice, doc.Sections.Compassion)
		for _, p := range doc.Properties {
			kind, ok := propertyKind(p.Kind)
			if !ok {
				continue
			}
			checker.CheckProperty(kind, p.Body)
		}
		if !opts.TypeCheckWarningEnabled || opts.Verbosity == 0 {
			bag.Filter(func(d *diag.Diagnostic) bool { return d.Severity >= diag.SevError })
		}
		bag.Sort()
		return bag, nil
	}

	results := loadset.Load(cmd.Context(), args, jobs, load)

	color, err := useColor(cmd)
	if err != nil {
		return err
	}
	prettyOpts := diagfmt.PrettyOpts{Color: color, Context: 2, PathMode: diagfmt.PathModeAuto, ShowNotes: true}

	failed := false
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(os.Stderr, "symck: %s: %v\n", r.Path, r.Err)
			failed = true
			continue
		}
		if r.Bag.Len() == 0 {
			continue
		}
		fsVal, _ := fileSets.Load(r.Path)
		diagfmt.Pretty(os.Stdout, r.Bag, fsVal.(*source.FileSet), prettyOpts)
		fmt.Fprintln(os.Stdout)
		if r.Bag.HasErrors() {
			failed = true
		}
	}
	if failed {
		return fmt.Errorf("type checking failed")
	}
	return nil
}
