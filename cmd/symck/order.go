package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"symck/internal/diag"
	"symck/internal/ordering"
	"symck/internal/source"
)

var orderCmd = &cobra.Command{
	Use:   "order <ordering-file>",
	Short: "Parse an ordering or id-list file and report its derived groups",
	Long: `order parses a newline-separated list of qualified names (an
ordering file, or an id-list with --id-list) and assigns each name to
its own group, the way an encoder would before refining groups by
type. With --dump-ordering, the resulting OrdGroups are written as a
msgpack snapshot instead of printed.`,
	Args: cobra.ExactArgs(1),
	RunE: runOrder,
}

func init() {
	orderCmd.Flags().Bool("id-list", false, "treat the input as an id-list (duplicates kept without warning)")
	orderCmd.Flags().String("dump-ordering", "", "write the derived groups as a msgpack snapshot to this file")
}

func runOrder(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("order: %w", err)
	}
	defer f.Close()

	idList, err := cmd.Flags().GetBool("id-list")
	if err != nil {
		return err
	}

	strs := source.NewInterner()
	var names ordering.NodeList
	if idList {
		names = ordering.ParseIdList(f, strs)
	} else {
		bag := diag.NewBag(100)
		names = ordering.ParseOrderFile(f, strs, diag.BagReporter{Bag: bag})
		for _, d := range bag.Items() {
			fmt.Fprintf(os.Stderr, "symck: %s: %s\n", d.Severity, d.Message)
		}
	}

	groups := ordering.NewOrdGroups()
	for _, n := range names {
		g := groups.CreateGroup()
		groups.AddVariable(g, n.Text)
	}

	dumpPath, err := cmd.Flags().GetString("dump-ordering")
	if err != nil {
		return err
	}
	if dumpPath != "" {
		out, err := os.Create(dumpPath)
		if err != nil {
			return fmt.Errorf("order: %w", err)
		}
		defer out.Close()
		if err := groups.Dump(out, strs); err != nil {
			return fmt.Errorf("order: dumping groups: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %d group(s) to %s\n", groups.Size(), dumpPath)
		return nil
	}

	for i := 0; i < groups.Size(); i++ {
		members := groups.GetVarsInGroup(i)
		labels := make([]string, len(members))
		for j, id := range members {
			labels[j], _ = strs.Lookup(id)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "group %d: %s\n", i, strings.Join(labels, ", "))
	}
	return nil
}
