package main

import (
	"time"

	"github.com/soopatree/balloon/internal/tui"
	"github.com/spf13/cobra"
)

func browseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse <export.csv>",
		Short: "Explore the results interactively",
		Long: `Open an interactive view of the ranking and outcome tables.

Number keys switch the date preset and re-aggregate on the spot; in the
outcome view, ←/→ pick a column and < / > move it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l, err := loadExport(ctx, cmd, args[0], time.Now())
			if err != nil {
				return err
			}

			return tui.Run(tui.Config{
				Context:  ctx,
				Session:  l.session,
				Filter:   l.settings.Filter,
				Resolved: l.resolved,
			})
		},
	}
}
