package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sant0-9/reformulator/internal/history"
	"github.com/sant0-9/reformulator/internal/tui"
)

func newHistoryCmd(c *cli) *cobra.Command {
	var (
		limit  int
		asJSON bool
		wipe   bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show or clear past reformulations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := history.Open(c.cfg.History)
			if err != nil {
				return err
			}
			defer store.Close()

			out := cmd.OutOrStdout()
			if wipe {
				if err := store.Clear(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(out, "History cleared.")
				return nil
			}

			entries, err := store.List(cmd.Context(), limit)
			if err != nil {
				return err
			}

			switch {
			case asJSON:
				return writeJSON(out, entries)
			case c.styled():
				fmt.Fprint(out, tui.RenderHistory(entries))
			default:
				for _, e := range entries {
					fmt.Fprintf(out, "%s\t%s/%s/%s\n%s\n\n", e.Timestamp,
						e.Parameters.Tone, e.Parameters.Format, e.Parameters.Length, e.Reformulated)
				}
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.IntVarP(&limit, "limit", "n", 10, "number of entries to show, 0 for all")
	f.BoolVar(&asJSON, "json", false, "print entries as JSON")
	f.BoolVar(&wipe, "clear", false, "delete the whole history")

	return cmd
}
