package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sant0-9/reformulator/internal/tui"
)

func newTranslateCmd(c *cli) *cobra.Command {
	var (
		language string
		file     string
	)

	cmd := &cobra.Command{
		Use:     "translate [text...]",
		Short:   "Translate text, detecting the source language",
		Example: `  reformulator translate --to Français "Hello there"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args, file)
			if err != nil {
				return err
			}

			svc, _, err := c.service(false, nil)
			if err != nil {
				return err
			}

			task := func(ctx context.Context) (string, error) {
				res, err := svc.Translate(ctx, text, language, "")
				if err != nil {
					return "", err
				}
				return res.Text, nil
			}

			var out string
			if c.interactive() {
				out, err = tui.Run(cmd.Context(), "Translating", "", task)
			} else {
				out, err = tui.RunPlain(cmd.Context(), task)
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&language, "to", "", "target language (default: first configured language)")
	cmd.Flags().StringVar(&file, "file", "", `read the text from a file, "-" for stdin`)

	return cmd
}
