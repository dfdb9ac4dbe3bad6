package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sant0-9/reformulator/internal/config"
	"github.com/sant0-9/reformulator/internal/tui"
)

func newTagsCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tags",
		Short: "Manage the tone, format, length and language labels",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List configured labels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if c.styled() {
				fmt.Fprint(out, tui.RenderTags(c.cfg.Tags))
				return nil
			}
			for _, kind := range config.Kinds {
				for _, label := range c.cfg.Tags.Set(kind).Labels {
					fmt.Fprintf(out, "%s\t%s\n", kind, label)
				}
			}
			return nil
		},
	}

	add := &cobra.Command{
		Use:   "add <tone|format|length|language> <label>",
		Short: "Add a label to a group",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := config.ParseKind(args[0])
			if err != nil {
				return err
			}
			if !c.cfg.Tags.Add(kind, args[1]) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %q already present\n", kind, args[1])
				return nil
			}
			return c.saveTags(cmd, "added", kind, args[1])
		},
	}

	remove := &cobra.Command{
		Use:     "remove <tone|format|length|language> <label>",
		Aliases: []string{"rm"},
		Short:   "Remove a label from a group",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := config.ParseKind(args[0])
			if err != nil {
				return err
			}
			if err := c.cfg.Tags.Remove(kind, args[1]); err != nil {
				return err
			}
			return c.saveTags(cmd, "removed", kind, args[1])
		},
	}

	cmd.AddCommand(list, add, remove)
	return cmd
}

func (c *cli) saveTags(cmd *cobra.Command, verb string, kind config.Kind, label string) error {
	// Reload so that flag and env overrides are not written back.
	onDisk, err := config.Load(c.cfgPath)
	if err != nil {
		return err
	}
	onDisk.Tags.Tones = c.cfg.Tags.Tones
	onDisk.Tags.Formats = c.cfg.Tags.Formats
	onDisk.Tags.Lengths = c.cfg.Tags.Lengths
	onDisk.Tags.Languages = c.cfg.Tags.Languages

	if err := onDisk.Save(c.cfgPath); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s %q\n", verb, kind, label)
	return nil
}
