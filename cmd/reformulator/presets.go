package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/sant0-9/reformulator/internal/preset"
	"github.com/sant0-9/reformulator/internal/tui"
)

func newPresetsCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List the system prompt presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			idx, err := preset.NewIndex(c.presetDir())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if c.styled() {
				fmt.Fprint(out, tui.RenderPresets(idx, c.cfg.Prompt.Preset))
				return nil
			}
			for _, meta := range idx.All() {
				fmt.Fprintf(out, "%s\t%s\n", meta.Name, meta.Description)
			}
			return nil
		},
	}

	var description, file string
	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a preset from a file holding the system prompt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				return errors.New("--file is required")
			}
			body, err := os.ReadFile(file)
			if err != nil {
				return errors.Wrapf(err, "read %s", file)
			}

			path, err := preset.Save(c.presetDir(), &preset.Preset{
				Metadata:     preset.Metadata{Name: args[0], Description: description},
				SystemPrompt: string(body),
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved %s\n", path)
			return nil
		},
	}
	add.Flags().StringVar(&description, "description", "", "one-line description")
	add.Flags().StringVar(&file, "file", "", "file holding the system prompt")

	cmd.AddCommand(add)
	return cmd
}
