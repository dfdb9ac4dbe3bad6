package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sant0-9/reformulator/internal/llm"
	"github.com/sant0-9/reformulator/internal/tui"
)

func newModelsCmd(c *cli) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "models",
		Short: "List the models installed on the Ollama server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, _, err := c.service(false, nil)
			if err != nil {
				return err
			}

			models := svc.Models(cmd.Context())
			out := cmd.OutOrStdout()

			switch {
			case asJSON:
				return writeJSON(out, models)
			case c.styled():
				fmt.Fprint(out, tui.RenderModels(models, c.cfg.Ollama.Model))
			default:
				for _, name := range llm.ModelNames(models) {
					fmt.Fprintln(out, name)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print models as JSON")
	return cmd
}
