package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gyaneshwarpardhi/sdlevents/internal/feature"
)

func init() {
	rootCmd.AddCommand(featuresCmd)
}

var featuresCmd = &cobra.Command{
	Use:   "features [level]",
	Short: "Print the capability table for a feature level",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lvl := feature.Latest()
		if len(args) == 1 {
			var err error
			if lvl, err = feature.ParseLevel(args[0]); err != nil {
				return err
			}
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintf(tw, "level %s\n\n", lvl)
		fmt.Fprintln(tw, "CAPABILITY\tINTRODUCED\tENABLED")
		for _, c := range feature.All() {
			introduced := c.Introduced()
			fmt.Fprintf(tw, "%s\t%s\t%t\n", c, introduced.String(), lvl.Set.Has(c))
		}
		return tw.Flush()
	},
}
