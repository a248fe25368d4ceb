package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/five82/datepicker/internal/datepicker"
)

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Print the derivation graph",
	Long:  "List every edge of the recompute pipeline (watched fields and fired action) and check it for cycles",
	Args:  cobra.NoArgs,
	RunE:  runGraph,
}

func init() {
	rootCmd.AddCommand(graphCmd)
}

func runGraph(cmd *cobra.Command, args []string) error {
	g := datepicker.DefaultGraph()
	out := cmd.OutOrStdout()

	fmt.Fprint(out, g.String())
	if err := g.Validate(); err != nil {
		return fmt.Errorf("invalid graph: %w", err)
	}
	fmt.Fprintf(out, "%d edges, acyclic\n", len(g.Edges))
	return nil
}
