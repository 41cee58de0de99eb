package cli

import (
	"github.com/spf13/cobra"
)

func newLookupCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <identifier|code>",
		Short: "Show one catalogue entry",
		Example: `  errcat lookup ERROR_QUERY_PARSE
  errcat lookup 1510 -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.resolve(args[0])
			if err != nil {
				return err
			}
			e := newEntry(d)
			return render(cmd.OutOrStdout(), a.cfg.Output, e, entryRows([]entry{e}))
		},
	}
}
