package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/StricklySoft/errcatalog/pkg/registry"
)

func newListCmd(a *app) *cobra.Command {
	var band string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalogue entries",
		Long:  "List every catalogue entry in declaration order, optionally restricted to one band.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var filter *registry.Band
			if band != "" {
				b, ok := registry.LookupBand(band, registry.DefaultBands)
				if !ok {
					return fmt.Errorf("unknown band %q", band)
				}
				filter = &b
			}

			entries := make([]entry, 0, a.reg.Len())
			for d := range a.reg.All() {
				if filter != nil && !filter.Contains(d.Code) {
					continue
				}
				entries = append(entries, newEntry(d))
			}
			a.logger.Debug("listing definitions", "count", len(entries), "band", band)
			return render(cmd.OutOrStdout(), a.cfg.Output, entries, entryRows(entries))
		},
	}

	cmd.Flags().StringVar(&band, "band", "", "only list codes in this band (storage, io, document, query, cursor)")
	return cmd
}
