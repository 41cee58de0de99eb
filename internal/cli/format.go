package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newFormatCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "format <identifier|code> [args...]",
		Short: "Render an entry's message template",
		Long: `Render the message template of a catalogue entry, substituting args for
its %s placeholders from left to right. Missing arguments leave the
placeholder in place; extra arguments are ignored.`,
		Example: `  errcat format ERROR_QUERY_COLLECTION_NAME_INVALID foo
  errcat format 1560 users`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.resolve(args[0])
			if err != nil {
				return err
			}
			rest := make([]any, 0, len(args)-1)
			for _, s := range args[1:] {
				rest = append(rest, s)
			}
			if n := d.Placeholders(); len(rest) != n {
				a.logger.Warn("argument count does not match placeholders",
					"identifier", d.Identifier,
					"placeholders", n,
					"args", len(rest),
				)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), d.Format(rest...))
			return err
		},
	}
}
