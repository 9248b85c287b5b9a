package main

import (
	"fmt"
	"text/tabwriter"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/sghaida/solid/catalog"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the principles",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	principles := catalog.Default().All()
	out := cmd.OutOrStdout()

	if cfg != nil && cfg.Format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(principles)
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, p := range principles {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", p.Key, p.Name, p.Summary)
	}
	return tw.Flush()
}
