package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sant0-9/reformulator/internal/reformulate"
	"github.com/sant0-9/reformulator/internal/tui"
)

type rewriteOutput struct {
	Result string `json:"result"`
	Model  string `json:"model"`
	Tone   string `json:"tone"`
	Format string `json:"format"`
	Length string `json:"length"`
}

func newRewriteCmd(c *cli) *cobra.Command {
	var (
		tone, format, length string
		file                 string
		noHistory, asJSON    bool
	)

	cmd := &cobra.Command{
		Use:     "rewrite [text...]",
		Aliases: []string{"r"},
		Short:   "Reformulate text with a tone, a format and a length",
		Example: `  reformulator rewrite -t Professionnel -f Mail -l Court "salut, on se voit demain ?"
  cat notes.txt | reformulator rewrite --format Idées`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args, file)
			if err != nil {
				return err
			}

			svc, store, err := c.service(!noHistory, nil)
			if err != nil {
				return err
			}
			if store != nil {
				defer store.Close()
			}

			if w := tui.ContextWarning(c.cfg.Ollama.Model, text); w != "" {
				fmt.Fprintln(cmd.ErrOrStderr(), w)
			}

			var res *reformulate.Result
			task := func(ctx context.Context) (string, error) {
				r, err := svc.Rewrite(ctx, reformulate.Request{
					Text:   text,
					Tone:   tone,
					Format: format,
					Length: length,
				})
				if err != nil {
					return "", err
				}
				res = r
				return r.Text, nil
			}

			if c.interactive() {
				_, err = tui.Run(cmd.Context(), "Reformulating", "model "+c.cfg.Ollama.Model, task)
			} else {
				_, err = tui.RunPlain(cmd.Context(), task)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch {
			case asJSON:
				return writeJSON(out, rewriteOutput{
					Result: res.Text,
					Model:  res.Model,
					Tone:   res.Parameters.Tone,
					Format: res.Parameters.Format,
					Length: res.Parameters.Length,
				})
			case c.styled():
				fmt.Fprint(out, tui.RenderResult(tui.ResultView{
					Text:       res.Text,
					Model:      res.Model,
					Duration:   res.Duration,
					Parameters: res.Parameters,
				}))
			default:
				fmt.Fprintln(out, res.Text)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&tone, "tone", "t", "", "tone label (default: first configured tone)")
	f.StringVarP(&format, "format", "f", "", "format label (default: first configured format)")
	f.StringVarP(&length, "length", "l", "", "length label (default: first configured length)")
	f.StringVar(&file, "file", "", `read the text from a file, "-" for stdin`)
	f.String("system-prompt", "", "replace the system prompt for this call")
	f.String("preset", "", "use a named preset as system prompt")
	f.BoolVar(&noHistory, "no-history", false, "do not record this reformulation")
	f.BoolVar(&asJSON, "json", false, "print the result as JSON")

	mustBind(c, "prompt.system", cmd, "system-prompt")
	mustBind(c, "prompt.preset", cmd, "preset")

	return cmd
}

func mustBind(c *cli, key string, cmd *cobra.Command, flag string) {
	if err := c.v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
		panic(err)
	}
}
